package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/SscSPs/tea_factory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productionHandler covers the leaf-to-shipment flow: green leaf intake,
// production batches, made tea stock and dispatch.
type productionHandler struct {
	greenLeafService  portssvc.GreenLeafSvcFacade
	productionService portssvc.ProductionSvcFacade
	madeTeaService    portssvc.MadeTeaSvcFacade
}

func registerProductionRoutes(
	rg *gin.RouterGroup,
	greenLeafService portssvc.GreenLeafSvcFacade,
	productionService portssvc.ProductionSvcFacade,
	madeTeaService portssvc.MadeTeaSvcFacade,
) {
	h := &productionHandler{
		greenLeafService:  greenLeafService,
		productionService: productionService,
		madeTeaService:    madeTeaService,
	}

	greenLeaf := rg.Group("/green-leaf")
	{
		greenLeaf.POST("/intakes", h.createGreenLeafIntake)
		greenLeaf.GET("/intakes", h.listGreenLeafIntakes)
		greenLeaf.GET("/summary", h.greenLeafSummary)
	}

	production := rg.Group("/production")
	{
		production.POST("/batches", h.createProductionBatch)
		production.GET("/batches", h.listProductionBatches)
	}

	dispatches := rg.Group("/dispatches")
	{
		dispatches.POST("", h.createDispatch)
		dispatches.GET("", h.listDispatches)
	}

	madeTea := rg.Group("/made-tea")
	{
		madeTea.GET("/stock", h.madeTeaStock)
		madeTea.GET("/transactions", h.listMadeTeaTransactions)
		madeTea.GET("/summary", h.madeTeaSummary)
	}
}

// createGreenLeafIntake godoc
// @Summary Record a green leaf delivery
// @Description Net weight is gross minus tare
// @Tags green-leaf
// @Accept  json
// @Produce  json
// @Param   intake body dto.CreateGreenLeafIntakeRequest true "Delivery"
// @Success 201 {object} domain.GreenLeafIntake
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /green-leaf/intakes [post]
func (h *productionHandler) createGreenLeafIntake(c *gin.Context) {
	var req dto.CreateGreenLeafIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	intake, err := h.greenLeafService.CreateGreenLeafIntake(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "record green leaf intake")
		return
	}
	c.JSON(http.StatusCreated, intake)
}

// listGreenLeafIntakes godoc
// @Summary List green leaf deliveries
// @Tags green-leaf
// @Produce  json
// @Param   dateFrom query string false "YYYY-MM-DD"
// @Param   dateTo query string false "YYYY-MM-DD"
// @Success 200 {array} domain.GreenLeafIntake
// @Security BearerAuth
// @Router /green-leaf/intakes [get]
func (h *productionHandler) listGreenLeafIntakes(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	intakes, err := h.greenLeafService.ListGreenLeafIntakes(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list green leaf intakes")
		return
	}
	if intakes == nil {
		intakes = []domain.GreenLeafIntake{}
	}
	c.JSON(http.StatusOK, intakes)
}

// greenLeafSummary godoc
// @Summary Green leaf intake and processing summary
// @Tags green-leaf
// @Produce  json
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.GreenLeafSummary
// @Security BearerAuth
// @Router /green-leaf/summary [get]
func (h *productionHandler) greenLeafSummary(c *gin.Context) {
	date, ok := asOfDate(c)
	if !ok {
		return
	}
	summary, err := h.greenLeafService.GreenLeafSummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "summarise green leaf")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// createProductionBatch godoc
// @Summary Record a production batch
// @Description Computes the yield and adds every grade output to made tea stock
// @Tags production
// @Accept  json
// @Produce  json
// @Param   batch body dto.CreateProductionBatchRequest true "Batch"
// @Success 201 {object} domain.ProductionBatch
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Batch number already exists"
// @Security BearerAuth
// @Router /production/batches [post]
func (h *productionHandler) createProductionBatch(c *gin.Context) {
	var req dto.CreateProductionBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	batch, err := h.productionService.CreateProductionBatch(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "record production batch")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Production batch recorded",
		slog.String("batch_number", batch.BatchNumber), slog.String("yield", batch.YieldPercentage.String()))
	c.JSON(http.StatusCreated, batch)
}

// listProductionBatches godoc
// @Summary List production batches
// @Tags production
// @Produce  json
// @Param   dateFrom query string false "YYYY-MM-DD"
// @Param   dateTo query string false "YYYY-MM-DD"
// @Success 200 {array} domain.ProductionBatch
// @Security BearerAuth
// @Router /production/batches [get]
func (h *productionHandler) listProductionBatches(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	batches, err := h.productionService.ListProductionBatches(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list production batches")
		return
	}
	if batches == nil {
		batches = []domain.ProductionBatch{}
	}
	c.JSON(http.StatusOK, batches)
}

// createDispatch godoc
// @Summary Dispatch made tea
// @Description Deducts the quantity from the grade's stock. Stock may go negative.
// @Tags made-tea
// @Accept  json
// @Produce  json
// @Param   dispatch body dto.CreateDispatchRequest true "Dispatch"
// @Success 201 {object} domain.DispatchRecord
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Dispatch number already exists"
// @Security BearerAuth
// @Router /dispatches [post]
func (h *productionHandler) createDispatch(c *gin.Context) {
	var req dto.CreateDispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	dispatch, err := h.madeTeaService.CreateDispatchRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "record dispatch")
		return
	}
	c.JSON(http.StatusCreated, dispatch)
}

// listDispatches godoc
// @Summary List dispatches
// @Tags made-tea
// @Produce  json
// @Param   dateFrom query string false "YYYY-MM-DD"
// @Param   dateTo query string false "YYYY-MM-DD"
// @Success 200 {array} domain.DispatchRecord
// @Security BearerAuth
// @Router /dispatches [get]
func (h *productionHandler) listDispatches(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	records, err := h.madeTeaService.ListDispatchRecords(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list dispatches")
		return
	}
	if records == nil {
		records = []domain.DispatchRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// madeTeaStock godoc
// @Summary Made tea stock per grade
// @Tags made-tea
// @Produce  json
// @Success 200 {array} domain.MadeTeaStock
// @Security BearerAuth
// @Router /made-tea/stock [get]
func (h *productionHandler) madeTeaStock(c *gin.Context) {
	stock, err := h.madeTeaService.MadeTeaStock(c.Request.Context())
	if err != nil {
		respondError(c, err, "load made tea stock")
		return
	}
	if stock == nil {
		stock = []domain.MadeTeaStock{}
	}
	c.JSON(http.StatusOK, stock)
}

// listMadeTeaTransactions godoc
// @Summary List made tea movements
// @Tags made-tea
// @Produce  json
// @Param   dateFrom query string false "YYYY-MM-DD"
// @Param   dateTo query string false "YYYY-MM-DD"
// @Param   grade query string false "Grade code"
// @Success 200 {array} domain.MadeTeaTransaction
// @Security BearerAuth
// @Router /made-tea/transactions [get]
func (h *productionHandler) listMadeTeaTransactions(c *gin.Context) {
	var params dto.ListMadeTeaTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	txns, err := h.madeTeaService.ListMadeTeaTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list made tea transactions")
		return
	}
	if txns == nil {
		txns = []domain.MadeTeaTransaction{}
	}
	c.JSON(http.StatusOK, txns)
}

// madeTeaSummary godoc
// @Summary Made tea stock value and movement totals
// @Tags made-tea
// @Produce  json
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.MadeTeaSummary
// @Security BearerAuth
// @Router /made-tea/summary [get]
func (h *productionHandler) madeTeaSummary(c *gin.Context) {
	date, ok := asOfDate(c)
	if !ok {
		return
	}
	summary, err := h.madeTeaService.MadeTeaSummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "summarise made tea")
		return
	}
	c.JSON(http.StatusOK, summary)
}
