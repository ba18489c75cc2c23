package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/handlers"
	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
)

func TestGetProductsWithFilters(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 3, models.RoleStaff)

	var products []models.Product

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &products)
	assert.Len(t, products, 3)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?category=Lights", token, nil)
	decodeJSON(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "LED Pendant Light", products[0].Name)

	// Search matches name or SKU, case-insensitively.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?search=dl-craft", token, nil)
	decodeJSON(t, resp, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Handmade Wall Art", products[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?search=nothing-matches", token, nil)
	decodeJSON(t, resp, &products)
	assert.Empty(t, products)
}

func TestGetProductNotFound(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 3, models.RoleStaff)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products/999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAndUpdateProduct(t *testing.T) {
	app, appStore, _ := newTestApp()
	token := tokenFor(t, 1, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, models.Product{
		SKU:      "DL-LED-002",
		Name:     "Track Light",
		Category: models.CategoryLights,
		Price:    1500,
		Cost:     900,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Product
	decodeJSON(t, resp, &created)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, 0, created.Stock)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/4", token, map[string]interface{}{
		"price": 1600,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	p, ok := appStore.ProductByID(4)
	require.True(t, ok)
	assert.Equal(t, 1600.0, p.Price)
	assert.Equal(t, "Track Light", p.Name)
}

func TestUpdateUnknownProductStaysLenient(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 1, models.RoleAdmin)

	// The store absorbs the missing id; the API does not 404.
	resp := doJSON(t, app, http.MethodPut, "/api/v1/products/999", token, map[string]interface{}{
		"price": 10,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStockUpdateEndpoint(t *testing.T) {
	app, appStore, _ := newTestApp()
	token := tokenFor(t, 2, models.RoleManager)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/inventory/stock", token, handlers.StockUpdateRequest{
		ProductID:   1,
		WarehouseID: 1,
		Quantity:    10,
		Mode:        "add",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	p, _ := appStore.ProductByID(1)
	assert.Equal(t, 55, p.Stock)
}

func TestLowStockEndpoint(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 3, models.RoleStaff)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/inventory/low-stock", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.Product
	decodeJSON(t, resp, &items)
	assert.Len(t, items, 2)
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	app, appStore, _ := newTestApp()
	manager := tokenFor(t, 2, models.RoleManager)
	staff := tokenFor(t, 3, models.RoleStaff)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/purchase-orders", manager, handlers.PurchaseOrderRequest{
		Supplier: "Craft Supplies Co",
		Items: []models.POItem{
			{ProductID: 2, Quantity: 30, UnitPrice: 800},
			{ProductID: 3, Quantity: 10, UnitPrice: 1200},
		},
		ExpectedDate: "2024-02-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.PurchaseOrder
	decodeJSON(t, resp, &created)
	assert.Equal(t, "PO-2024-002", created.PONumber)
	assert.Equal(t, models.POStatusPending, created.Status)
	// Total computed from the line items: 30*800 + 10*1200.
	assert.Equal(t, 36000.0, created.Total)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/purchase-orders/2/receive", staff, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	po, ok := appStore.PurchaseOrderByID(2)
	require.True(t, ok)
	assert.Equal(t, models.POStatusReceived, po.Status)
	require.NotNil(t, po.ReceivedAt)

	p, _ := appStore.ProductByID(2)
	assert.Equal(t, 42, p.Stock) // 12 + 30
	p, _ = appStore.ProductByID(3)
	assert.Equal(t, 18, p.Stock) // 8 + 10
}

func TestCreatePurchaseOrderValidation(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 1, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/purchase-orders", token, handlers.PurchaseOrderRequest{
		Supplier: "No Items Inc",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/purchase-orders", token, handlers.PurchaseOrderRequest{
		Supplier:     "Bad Date Co",
		Items:        []models.POItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}},
		ExpectedDate: "25-01-2024",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReferenceData(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 3, models.RoleStaff)

	var warehouses []models.Warehouse
	resp := doJSON(t, app, http.MethodGet, "/api/v1/warehouses", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &warehouses)
	require.Len(t, warehouses, 3)
	assert.Equal(t, "Mumbai", warehouses[0].Location)

	var suppliers []models.Supplier
	resp = doJSON(t, app, http.MethodGet, "/api/v1/suppliers", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &suppliers)
	assert.Len(t, suppliers, 2)
}

func TestReportSummary(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 3, models.RoleStaff)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/reports/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary handlers.ReportSummaryResponse
	decodeJSON(t, resp, &summary)
	assert.Equal(t, 100200.0, summary.TotalStockValue)
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 2, summary.LowStockCount)
	assert.Equal(t, 90000.0, summary.TotalPOValue)
	assert.Equal(t, 2, summary.FastMoving)
	assert.Equal(t, 0, summary.SlowMoving)
	assert.Equal(t, map[string]int{
		models.CategoryLights: 1,
		models.CategoryCrafts: 1,
		models.CategoryDecor:  1,
	}, summary.CategoryBreakdown)
}

func TestActivityLogFilter(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 1, models.RoleAdmin)

	var entries []models.ActivityEntry

	resp := doJSON(t, app, http.MethodGet, "/api/v1/activity-log", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &entries)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "Stock Updated", entries[0].Action)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/activity-log?action=Product+Created", token, nil)
	decodeJSON(t, resp, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "Product Created", entries[0].Action)
}

func TestMediaLibrary(t *testing.T) {
	app, _, _ := newTestApp()
	token := tokenFor(t, 2, models.RoleManager)

	var items []models.MediaItem

	resp := doJSON(t, app, http.MethodGet, "/api/v1/media", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &items)
	assert.Len(t, items, 3)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/media?type=pdf", token, nil)
	decodeJSON(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Product Catalog.pdf", items[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/media?search=wall+art", token, nil)
	decodeJSON(t, resp, &items)
	require.Len(t, items, 1)

	// Staff has no media page.
	staff := tokenFor(t, 3, models.RoleStaff)
	resp = doJSON(t, app, http.MethodGet, "/api/v1/media", staff, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMediaUploadRegistersMetadataOnly(t *testing.T) {
	app, appStore, _ := newTestApp()
	token := tokenFor(t, 1, models.RoleAdmin)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("files", "New Catalog.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 2048))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created []models.MediaItem
	decodeJSON(t, resp, &created)
	require.Len(t, created, 1)
	assert.Equal(t, "New Catalog.pdf", created[0].Name)
	assert.Equal(t, "pdf", created[0].Type)

	assert.Len(t, appStore.MediaItems(), 4)
}
