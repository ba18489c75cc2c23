package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/authz"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/handlers"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/middleware"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

func main() {
	// 1. Load .env first
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment (if any)")
	}

	// 2. Create the in-memory store with the demo dataset. A session user
	// cached by a previous run is restored here.
	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".session.json"
	}
	appStore := store.New(sessionFile)

	app := fiber.New()
	app.Use(logger.New())

	authHandler := handlers.NewAuthHandler(appStore)

	api := app.Group("/api/v1")

	// === PUBLIC ROUTES ===
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Running", "message": "API Ready"})
	})
	api.Post("/login", authHandler.Login)

	// === PROTECTED ROUTES (JWT) ===
	api.Use(middleware.JWTProtected())

	// Session & profile
	api.Post("/logout", authHandler.Logout)
	api.Get("/me", authHandler.GetProfile)
	api.Get("/me/pages", authHandler.GetPages)

	// Products
	products := api.Group("/products")
	products.Get("", handlers.GetProducts(appStore))
	products.Get("/:id", handlers.GetProduct(appStore))
	products.Post("", middleware.RequirePermission(authz.ProductEdit), handlers.CreateProduct(appStore))
	products.Put("/:id", middleware.RequirePermission(authz.ProductEdit), handlers.UpdateProduct(appStore))
	// No DELETE route: the store contract has no product deletion.

	// Inventory
	inventory := api.Group("/inventory")
	inventory.Get("/low-stock", handlers.GetLowStockItems(appStore))
	inventory.Post("/stock", middleware.RequirePermission(authz.StockManage), handlers.UpdateStock(appStore))

	// Purchase Orders
	pos := api.Group("/purchase-orders")
	pos.Get("", handlers.GetPurchaseOrders(appStore))
	pos.Post("", middleware.RequirePermission(authz.POCreate), handlers.CreatePurchaseOrder(appStore))
	pos.Post("/:id/receive", middleware.RequirePermission(authz.POReceive), handlers.ReceivePurchaseOrder(appStore))
	// No cancel route: the frontend shows a cancel button but the store has
	// no transition to cancelled.

	// Reference data
	api.Get("/warehouses", handlers.GetWarehouses(appStore))
	api.Get("/suppliers", handlers.GetSuppliers(appStore))

	// Reports
	api.Get("/reports/summary", handlers.GetReportSummary(appStore))

	// Activity Log
	api.Get("/activity-log", middleware.RequirePermission(authz.PageActivityLog), handlers.GetActivityLog(appStore))

	// Media Library (mocked)
	media := api.Group("/media")
	media.Use(middleware.RequirePermission(authz.PageMedia))
	media.Get("", handlers.GetMediaItems(appStore))
	media.Post("", handlers.UploadMedia(appStore))

	// User management (admin only)
	api.Get("/users", middleware.RequirePermission(authz.UsersManage), handlers.GetUsers(authHandler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server running on port :" + port)
	log.Fatal(app.Listen(":" + port))
}
