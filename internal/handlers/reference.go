package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// The warehouse and supplier lists are static reference data; the store
// exposes no operations that change them.

// GetWarehouses handles fetching the warehouse list.
func GetWarehouses(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Warehouses())
	}
}

// GetSuppliers handles fetching the supplier list.
func GetSuppliers(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Suppliers())
	}
}
