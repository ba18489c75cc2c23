package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// ReportSummaryResponse mirrors the figures shown on the reports page.
type ReportSummaryResponse struct {
	TotalStockValue   float64        `json:"total_stock_value"`
	TotalProducts     int            `json:"total_products"`
	LowStockCount     int            `json:"low_stock_count"`
	TotalPOValue      float64        `json:"total_po_value"`
	FastMoving        int            `json:"fast_moving"`
	SlowMoving        int            `json:"slow_moving"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
}

// GetReportSummary handles the aggregate stock/PO report. Fast and slow
// moving use simplified stock-level cutoffs (under 30, over 100) carried over
// from the dashboard.
func GetReportSummary(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products := s.Products()

		response := ReportSummaryResponse{
			TotalStockValue:   s.TotalStockValue(),
			TotalProducts:     len(products),
			LowStockCount:     len(s.LowStockItems()),
			CategoryBreakdown: map[string]int{},
		}

		for _, p := range products {
			if p.Stock < 30 {
				response.FastMoving++
			}
			if p.Stock > 100 {
				response.SlowMoving++
			}
			response.CategoryBreakdown[p.Category]++
		}

		for _, po := range s.PurchaseOrders() {
			response.TotalPOValue += po.Total
		}

		return c.JSON(response)
	}
}
