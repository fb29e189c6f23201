package handlers

import (
	"net/http"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the P&L statement, dashboard and activity feed.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	dashboardService portssvc.DashboardService
	activityService  portssvc.ActivitySvcFacade
}

func newReportingHandler(rs portssvc.ReportingService, ds portssvc.DashboardService, as portssvc.ActivitySvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, dashboardService: ds, activityService: as}
}

func registerReportingRoutes(
	rg *gin.RouterGroup,
	reportingService portssvc.ReportingService,
	dashboardService portssvc.DashboardService,
	activityService portssvc.ActivitySvcFacade,
) {
	h := newReportingHandler(reportingService, dashboardService, activityService)

	rg.GET("/reports/profit-and-loss", h.getProfitAndLoss)
	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/dashboard/alerts", h.getAlerts)
	rg.GET("/activity", h.getRecentActivity)
}

// getProfitAndLoss godoc
// @Summary Profit and loss statement
// @Description Fixed-structure statement over an inclusive date range
// @Tags reports
// @Produce  json
// @Param   dateFrom query string true "YYYY-MM-DD"
// @Param   dateTo query string true "YYYY-MM-DD"
// @Success 200 {object} domain.ProfitLossStatement
// @Failure 400 {object} ErrorResponse "Missing or invalid range"
// @Failure 500 {object} ErrorResponse "Failed to build statement"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	var params dto.ProfitLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	from, err := domain.ParseDate("dateFrom", params.DateFrom)
	if err != nil {
		respondError(c, err, "build profit and loss statement")
		return
	}
	to, err := domain.ParseDate("dateTo", params.DateTo)
	if err != nil {
		respondError(c, err, "build profit and loss statement")
		return
	}

	statement, err := h.reportingService.ProfitLossStatement(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "build profit and loss statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// getDashboard godoc
// @Summary Dashboard snapshot
// @Tags dashboard
// @Produce  json
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.DashboardKPIs
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	date, ok := asOfDate(c)
	if !ok {
		return
	}
	kpis, err := h.dashboardService.DashboardKPIs(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// getAlerts godoc
// @Summary Dashboard alerts only
// @Tags dashboard
// @Produce  json
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} domain.Alert
// @Security BearerAuth
// @Router /dashboard/alerts [get]
func (h *reportingHandler) getAlerts(c *gin.Context) {
	date, ok := asOfDate(c)
	if !ok {
		return
	}
	alerts, err := h.dashboardService.Alerts(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "evaluate alerts")
		return
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}

// getRecentActivity godoc
// @Summary Recent activity
// @Tags activity
// @Produce  json
// @Param   limit query int false "Number of entries" default(10)
// @Success 200 {array} domain.ActivityLog
// @Security BearerAuth
// @Router /activity [get]
func (h *reportingHandler) getRecentActivity(c *gin.Context) {
	var params dto.ActivityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	entries, err := h.activityService.RecentActivity(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err, "list activity")
		return
	}
	if entries == nil {
		entries = []domain.ActivityLog{}
	}
	c.JSON(http.StatusOK, entries)
}
