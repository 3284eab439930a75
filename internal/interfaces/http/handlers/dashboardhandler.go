package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

// DashboardHandler serves the front-desk dashboard: stats, the expiry feed
// and the management report.
type DashboardHandler struct {
	getStatsUC         getDashboardStatsUseCase
	getNotificationsUC getNotificationsUseCase
	exportReportUC     csvExportUseCase
	clock              biztime.Clock
	logger             logger.Interface
}

func NewDashboardHandler(
	getStatsUC getDashboardStatsUseCase,
	getNotificationsUC getNotificationsUseCase,
	exportReportUC csvExportUseCase,
	clock biztime.Clock,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getStatsUC:         getStatsUC,
		getNotificationsUC: getNotificationsUC,
		exportReportUC:     exportReportUC,
		clock:              clock,
		logger:             logger,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetNotifications handles GET /dashboard/notifications
func (h *DashboardHandler) GetNotifications(c *gin.Context) {
	result, err := h.getNotificationsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportReport handles GET /dashboard/report.csv
func (h *DashboardHandler) ExportReport(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportReportUC.Execute(c.Request.Context(), &buf); err != nil {
		h.logger.Errorw("failed to export report", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := "gym-report-" + biztime.FormatDate(h.clock.Now()) + ".csv"
	utils.CSVResponse(c, filename, buf.Bytes())
}
