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

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.PUT("/:key", h.upsertSetting)
	}
}

// listSettings godoc
// @Summary List stored system settings
// @Tags settings
// @Produce  json
// @Success 200 {array} domain.SystemSetting
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) listSettings(c *gin.Context) {
	settings, err := h.settingsService.ListSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "list settings")
		return
	}
	if settings == nil {
		settings = []domain.SystemSetting{}
	}
	c.JSON(http.StatusOK, settings)
}

// upsertSetting godoc
// @Summary Set a system setting
// @Description Numeric settings (thresholds, ratio, unit value) must parse as numbers
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   key path string true "Setting key"
// @Param   setting body dto.UpsertSettingRequest true "Value"
// @Success 200 {object} domain.SystemSetting
// @Failure 400 {object} ErrorResponse "Invalid value"
// @Security BearerAuth
// @Router /settings/{key} [put]
func (h *settingsHandler) upsertSetting(c *gin.Context) {
	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	key := c.Param("key")
	setting, err := h.settingsService.UpsertSetting(c.Request.Context(), key, req, userID)
	if err != nil {
		respondError(c, err, "save setting")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Setting saved", slog.String("key", key))
	c.JSON(http.StatusOK, setting)
}
