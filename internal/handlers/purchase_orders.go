package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// PurchaseOrderRequest defines the structure for creating a purchase order.
type PurchaseOrderRequest struct {
	Supplier     string          `json:"supplier" validate:"required"`
	Items        []models.POItem `json:"items" validate:"required"`
	ExpectedDate string          `json:"expected_date"` // YYYY-MM-DD
}

// GetPurchaseOrders handles fetching all purchase orders.
func GetPurchaseOrders(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.PurchaseOrders())
	}
}

// CreatePurchaseOrder handles creating a new purchase order. The total is
// computed here from the line items; the store records whatever total it is
// handed and never reconciles it.
func CreatePurchaseOrder(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req PurchaseOrderRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Supplier == "" || len(req.Items) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Supplier and at least one item are required"})
		}

		var expectedDate time.Time
		if req.ExpectedDate != "" {
			var err error
			expectedDate, err = time.Parse("2006-01-02", req.ExpectedDate)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expected_date format. Use YYYY-MM-DD"})
			}
		}

		var total float64
		for _, item := range req.Items {
			total += float64(item.Quantity) * item.UnitPrice
		}

		created := s.CreatePurchaseOrder(models.PurchaseOrder{
			Supplier:     req.Supplier,
			Items:        req.Items,
			Total:        total,
			ExpectedDate: expectedDate,
		})

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ReceivePurchaseOrder handles receiving a pending order: line-item
// quantities are added to product stock and the order is marked received.
// Unknown order ids are absorbed by the store as a no-op.
func ReceivePurchaseOrder(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid purchase order ID"})
		}

		s.ReceivePurchaseOrder(id)
		return c.JSON(fiber.Map{"message": "Purchase order received"})
	}
}
