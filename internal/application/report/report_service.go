// Package report exposes threshold analytics over the order ledger.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bizdesk/backend/internal/domain/report"
)

// ReportService answers threshold queries against the derived aggregates
type ReportService struct {
	reportRepo report.Repository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.Repository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
	}
}

// SalesAboveThreshold lists dates whose total sales exceed the threshold,
// in date order
func (s *ReportService) SalesAboveThreshold(ctx context.Context, threshold decimal.Decimal) ([]report.DailySales, error) {
	return s.reportRepo.SalesByDateAbove(ctx, threshold)
}

// UnitsSoldAboveThreshold lists products whose cumulative units sold exceed
// the threshold, best sellers first
func (s *ReportService) UnitsSoldAboveThreshold(ctx context.Context, threshold int64) ([]report.ProductSales, error) {
	return s.reportRepo.UnitsSoldAbove(ctx, threshold)
}

// SpendAboveThreshold lists customers whose cumulative spend exceeds the
// threshold, biggest spenders first
func (s *ReportService) SpendAboveThreshold(ctx context.Context, threshold decimal.Decimal) ([]report.CustomerSpend, error) {
	return s.reportRepo.CustomerSpendAbove(ctx, threshold)
}

// StockBelowThreshold lists products running low, emptiest first
func (s *ReportService) StockBelowThreshold(ctx context.Context, threshold int64) ([]report.StockLevel, error) {
	return s.reportRepo.StockBelow(ctx, threshold)
}

// DailyTotal returns the total sales recorded for a single date
func (s *ReportService) DailyTotal(ctx context.Context, orderDate string) (decimal.Decimal, error) {
	return s.reportRepo.TotalSalesForDate(ctx, orderDate)
}
