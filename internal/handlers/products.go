package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// GetProducts handles fetching the catalog, with optional search and
// category filtering (?search=...&category=...).
func GetProducts(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		search := strings.ToLower(c.Query("search"))
		category := c.Query("category", "all")

		var response []models.Product
		for _, p := range s.Products() {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.SKU), search) {
				continue
			}
			if category != "all" && p.Category != category {
				continue
			}
			response = append(response, p)
		}

		if response == nil {
			response = []models.Product{}
		}
		return c.JSON(response)
	}
}

// GetProduct handles fetching a single product by ID
func GetProduct(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
		}

		product, ok := s.ProductByID(id)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}

		return c.JSON(product)
	}
}

// CreateProduct handles adding a new product to the catalog. The store
// assigns the id and defaults stock to 0; SKU uniqueness is not checked,
// matching the store contract.
func CreateProduct(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.Product
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		created := s.AddProduct(req)
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateProduct handles a partial product edit. An unknown id is absorbed by
// the store as a no-op, so this always answers 200 on well-formed input.
func UpdateProduct(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
		}

		var req models.ProductUpdate
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		s.UpdateProduct(id, req)
		return c.JSON(fiber.Map{"message": "Product updated successfully"})
	}
}
