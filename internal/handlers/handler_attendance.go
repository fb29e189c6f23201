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

type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := &attendanceHandler{attendanceService: attendanceService}

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.createAttendance)
		attendance.POST("/bulk", h.createBulkAttendance)
		attendance.GET("", h.listAttendance)
		attendance.GET("/summary", h.attendanceSummary)
		attendance.PUT("/:id", h.updateAttendance)
	}
}

// createAttendance godoc
// @Summary Mark attendance
// @Description Upserts the record for (employee, date, shift) and computes the wage
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateAttendanceRequest true "Attendance"
// @Success 201 {object} domain.AttendanceRecord
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) createAttendance(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.CreateAttendanceRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "save attendance")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// createBulkAttendance godoc
// @Summary Mark attendance for many employees
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   sheet body dto.BulkAttendanceRequest true "Attendance sheet"
// @Success 201 {array} domain.AttendanceRecord
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /attendance/bulk [post]
func (h *attendanceHandler) createBulkAttendance(c *gin.Context) {
	var req dto.BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.CreateBulkAttendance(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "save attendance sheet")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Attendance sheet saved", slog.Int("count", len(records)))
	c.JSON(http.StatusCreated, records)
}

// updateAttendance godoc
// @Summary Edit an attendance record
// @Description The wage is recomputed from the current employee rates
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   id path string true "Attendance ID"
// @Param   record body dto.UpdateAttendanceRequest true "Fields to change"
// @Success 200 {object} domain.AttendanceRecord
// @Failure 404 {object} ErrorResponse "Record not found"
// @Security BearerAuth
// @Router /attendance/{id} [put]
func (h *attendanceHandler) updateAttendance(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.attendanceService.UpdateAttendanceRecord(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "update attendance")
		return
	}
	c.JSON(http.StatusOK, record)
}

// listAttendance godoc
// @Summary List attendance
// @Tags attendance
// @Produce  json
// @Param   date query string false "YYYY-MM-DD"
// @Param   shift query string false "DAY or NIGHT"
// @Param   employeeID query string false "Employee ID"
// @Success 200 {array} domain.AttendanceRecord
// @Security BearerAuth
// @Router /attendance [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) {
	var params dto.ListAttendanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list attendance")
		return
	}
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// attendanceSummary godoc
// @Summary Attendance summary for a day
// @Tags attendance
// @Produce  json
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.AttendanceSummary
// @Security BearerAuth
// @Router /attendance/summary [get]
func (h *attendanceHandler) attendanceSummary(c *gin.Context) {
	date, ok := asOfDate(c)
	if !ok {
		return
	}
	summary, err := h.attendanceService.AttendanceSummary(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "summarise attendance")
		return
	}
	c.JSON(http.StatusOK, summary)
}
