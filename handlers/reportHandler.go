package handlers

import (
	"ClinicaViva/services"
	"ClinicaViva/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetFinancialReport returns the aggregated report for the current calendar
// month: per-patient subtotals in first-appearance order plus the grand total.
func (h *ReportHandler) GetFinancialReport(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.Monthly(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, report)
}

// ExportFinancialReport streams the current month's report as a spreadsheet
// download.
func (h *ReportHandler) ExportFinancialReport(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}

	fileName, content, err := h.service.Export(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", utils.ReportContentDisposition(fileName))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
