package handlers

import (
	"net/http"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// inventoryHandler serves one running-balance stream. The same handler is
// mounted for firewood and for packing materials.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func registerInventoryRoutes(rg *gin.RouterGroup, path string, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	stream := rg.Group(path)
	{
		stream.POST("/transactions", h.createInventoryTransaction)
		stream.GET("/transactions", h.listInventoryTransactions)
		stream.GET("/summary", h.inventorySummary)
	}
}

// createInventoryTransaction godoc
// @Summary Record a stock movement
// @Description Appends an inflow or outflow; the running balance is computed server side
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   stream path string true "firewood or packing-materials"
// @Param   transaction body dto.CreateInventoryTransactionRequest true "Movement"
// @Success 201 {object} domain.InventoryTransaction
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /{stream}/transactions [post]
func (h *inventoryHandler) createInventoryTransaction(c *gin.Context) {
	var req dto.CreateInventoryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.inventoryService.CreateInventoryTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "record inventory transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listInventoryTransactions godoc
// @Summary List stock movements
// @Description Newest first; defaults to the current month
// @Tags inventory
// @Produce  json
// @Param   stream path string true "firewood or packing-materials"
// @Param   dateFrom query string false "YYYY-MM-DD"
// @Param   dateTo query string false "YYYY-MM-DD"
// @Success 200 {array} domain.InventoryTransaction
// @Security BearerAuth
// @Router /{stream}/transactions [get]
func (h *inventoryHandler) listInventoryTransactions(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	txns, err := h.inventoryService.ListInventoryTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list inventory transactions")
		return
	}
	if txns == nil {
		txns = []domain.InventoryTransaction{}
	}
	c.JSON(http.StatusOK, txns)
}

// inventorySummary godoc
// @Summary Stock level and consumption
// @Tags inventory
// @Produce  json
// @Param   stream path string true "firewood or packing-materials"
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.InventorySummary
// @Security BearerAuth
// @Router /{stream}/summary [get]
func (h *inventoryHandler) inventorySummary(c *gin.Context) {
	date, ok := asOfDate(c)
	if !ok {
		return
	}
	summary, err := h.inventoryService.InventorySummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "summarise inventory")
		return
	}
	c.JSON(http.StatusOK, summary)
}
