package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/authz"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/handlers"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/middleware"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/store"
)

// newTestApp wires the API routes the same way cmd/api does, on a store with
// no session cache file.
func newTestApp() (*fiber.App, *store.Store, *handlers.AuthHandler) {
	appStore := store.New("")
	authHandler := handlers.NewAuthHandler(appStore)

	app := fiber.New()
	api := app.Group("/api/v1")

	api.Post("/login", authHandler.Login)

	api.Use(middleware.JWTProtected())
	api.Post("/logout", authHandler.Logout)
	api.Get("/me", authHandler.GetProfile)
	api.Get("/me/pages", authHandler.GetPages)

	products := api.Group("/products")
	products.Get("", handlers.GetProducts(appStore))
	products.Get("/:id", handlers.GetProduct(appStore))
	products.Post("", middleware.RequirePermission(authz.ProductEdit), handlers.CreateProduct(appStore))
	products.Put("/:id", middleware.RequirePermission(authz.ProductEdit), handlers.UpdateProduct(appStore))

	inventory := api.Group("/inventory")
	inventory.Get("/low-stock", handlers.GetLowStockItems(appStore))
	inventory.Post("/stock", middleware.RequirePermission(authz.StockManage), handlers.UpdateStock(appStore))

	pos := api.Group("/purchase-orders")
	pos.Get("", handlers.GetPurchaseOrders(appStore))
	pos.Post("", middleware.RequirePermission(authz.POCreate), handlers.CreatePurchaseOrder(appStore))
	pos.Post("/:id/receive", middleware.RequirePermission(authz.POReceive), handlers.ReceivePurchaseOrder(appStore))

	api.Get("/warehouses", handlers.GetWarehouses(appStore))
	api.Get("/suppliers", handlers.GetSuppliers(appStore))
	api.Get("/reports/summary", handlers.GetReportSummary(appStore))
	api.Get("/activity-log", middleware.RequirePermission(authz.PageActivityLog), handlers.GetActivityLog(appStore))

	media := api.Group("/media")
	media.Use(middleware.RequirePermission(authz.PageMedia))
	media.Get("", handlers.GetMediaItems(appStore))
	media.Post("", handlers.UploadMedia(appStore))

	api.Get("/users", middleware.RequirePermission(authz.UsersManage), handlers.GetUsers(authHandler))

	return app, appStore, authHandler
}

func tokenFor(t *testing.T, userID int, role models.Role) string {
	t.Helper()
	token, err := middleware.GenerateJWT(userID, role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
