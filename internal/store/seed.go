package store

import (
	"time"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
)

// seed loads the demo dataset the dashboard ships with.
func (s *Store) seed() {
	s.products = []models.Product{
		{
			ID:        1,
			SKU:       "DL-LED-001",
			Name:      "LED Pendant Light",
			Category:  models.CategoryLights,
			Price:     2500,
			Cost:      1800,
			Stock:     45,
			Warehouse: "Main Warehouse",
			Specs:     map[string]string{"wattage": "12W", "color": "Warm White"},
		},
		{
			ID:        2,
			SKU:       "DL-CRAFT-001",
			Name:      "Handmade Wall Art",
			Category:  models.CategoryCrafts,
			Price:     1200,
			Cost:      800,
			Stock:     12,
			Warehouse: "Main Warehouse",
			Specs:     map[string]string{"material": "Wood", "size": "24x36"},
		},
		{
			ID:        3,
			SKU:       "DL-DECOR-001",
			Name:      "Modern Vase Set",
			Category:  models.CategoryDecor,
			Price:     1800,
			Cost:      1200,
			Stock:     8,
			Warehouse: "Main Warehouse",
			Specs:     map[string]string{"material": "Ceramic", "pieces": "3"},
		},
	}

	s.warehouses = []models.Warehouse{
		{ID: 1, Name: "Main Warehouse", Location: "Mumbai"},
		{ID: 2, Name: "North Warehouse", Location: "Delhi"},
		{ID: 3, Name: "South Warehouse", Location: "Bangalore"},
	}

	s.purchaseOrders = []models.PurchaseOrder{
		{
			ID:       1,
			PONumber: "PO-2024-001",
			Supplier: "Lighting Solutions Inc",
			Status:   models.POStatusPending,
			Items: []models.POItem{
				{ProductID: 1, Quantity: 50, UnitPrice: 1800},
			},
			Total:        90000,
			CreatedAt:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ExpectedDate: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	s.suppliers = []models.Supplier{
		{ID: 1, Name: "Lighting Solutions Inc", Contact: "9876543210", Email: "contact@lightingsolutions.com"},
		{ID: 2, Name: "Craft Supplies Co", Contact: "9876543211", Email: "info@craftsupplies.com"},
	}

	s.activityLog = []models.ActivityEntry{
		{
			ID:        1,
			Action:    "Stock Updated",
			User:      "Admin User",
			Details:   "LED Pendant Light stock changed from 40 to 45",
			Timestamp: time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Action:    "Product Created",
			User:      "Admin User",
			Details:   "New product: Modern Vase Set (DL-DECOR-001)",
			Timestamp: time.Date(2024, 1, 19, 14, 20, 0, 0, time.UTC),
		},
	}

	s.mediaItems = []models.MediaItem{
		{ID: 1, Name: "LED Light Product.jpg", Type: "image", Size: "2.4 MB", Uploaded: "2024-01-15"},
		{ID: 2, Name: "Product Catalog.pdf", Type: "pdf", Size: "5.1 MB", Uploaded: "2024-01-14"},
		{ID: 3, Name: "Wall Art Sample.png", Type: "image", Size: "1.8 MB", Uploaded: "2024-01-13"},
	}
}
