package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	reportapp "github.com/bizdesk/backend/internal/application/report"
)

// ReportHandler handles threshold analytics API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesAbove handles GET /reports/sales
func (h *ReportHandler) SalesAbove(c *gin.Context) {
	threshold, ok := h.decimalThreshold(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SalesAboveThreshold(c.Request.Context(), threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// UnitsSoldAbove handles GET /reports/product-sales
func (h *ReportHandler) UnitsSoldAbove(c *gin.Context) {
	threshold, ok := h.intThreshold(c)
	if !ok {
		return
	}

	rows, err := h.reportService.UnitsSoldAboveThreshold(c.Request.Context(), threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// SpendAbove handles GET /reports/customer-spend
func (h *ReportHandler) SpendAbove(c *gin.Context) {
	threshold, ok := h.decimalThreshold(c)
	if !ok {
		return
	}

	rows, err := h.reportService.SpendAboveThreshold(c.Request.Context(), threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// StockBelow handles GET /reports/stock
func (h *ReportHandler) StockBelow(c *gin.Context) {
	threshold, ok := h.intThreshold(c)
	if !ok {
		return
	}

	rows, err := h.reportService.StockBelowThreshold(c.Request.Context(), threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// DailyTotal handles GET /reports/daily-total
func (h *ReportHandler) DailyTotal(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.BadRequest(c, "date must be in YYYY-MM-DD format")
		return
	}

	total, err := h.reportService.DailyTotal(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result := gin.H{"order_date": date, "total_sales": total}
	if thresholdStr := c.Query("threshold"); thresholdStr != "" {
		threshold, err := decimal.NewFromString(thresholdStr)
		if err != nil {
			h.BadRequest(c, "threshold must be a decimal number")
			return
		}
		result["above_threshold"] = total.GreaterThan(threshold)
	}
	h.Success(c, result)
}

func (h *ReportHandler) decimalThreshold(c *gin.Context) (decimal.Decimal, bool) {
	threshold, err := decimal.NewFromString(c.DefaultQuery("threshold", "0"))
	if err != nil {
		h.BadRequest(c, "threshold must be a decimal number")
		return decimal.Zero, false
	}
	return threshold, true
}

func (h *ReportHandler) intThreshold(c *gin.Context) (int64, bool) {
	threshold, err := strconv.ParseInt(c.DefaultQuery("threshold", "0"), 10, 64)
	if err != nil {
		h.BadRequest(c, "threshold must be an integer")
		return 0, false
	}
	return threshold, true
}
