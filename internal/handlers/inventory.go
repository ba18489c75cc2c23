package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// StockUpdateRequest defines the structure for a stock adjustment. Mode "add"
// increments the current level; anything else sets it absolutely. WarehouseID
// travels with the request but stock is not tracked per warehouse.
type StockUpdateRequest struct {
	ProductID   int    `json:"product_id" validate:"required"`
	WarehouseID int    `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
	Mode        string `json:"mode"`
}

// UpdateStock handles a stock adjustment. Unknown product ids are absorbed by
// the store as a no-op, so well-formed requests always answer 200.
func UpdateStock(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StockUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		s.UpdateStock(req.ProductID, req.WarehouseID, req.Quantity, req.Mode)
		return c.JSON(fiber.Map{"message": "Stock updated successfully"})
	}
}

// GetLowStockItems handles fetching every product below the low-stock
// threshold.
func GetLowStockItems(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := s.LowStockItems()
		if items == nil {
			items = []models.Product{}
		}
		return c.JSON(items)
	}
}
