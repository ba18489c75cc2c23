package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/infocravorasolutions-code/devang-lights-admin/internal/models"
)

// Store holds all authoritative application state in memory. Handlers get an
// explicit *Store handle; there is no package-level instance.
//
// Every mutation also appends an activity entry. Operations never return
// errors: an unknown product or order id degrades to a no-op, which the
// frontend relies on.
type Store struct {
	mu sync.Mutex

	products       []models.Product
	warehouses     []models.Warehouse
	purchaseOrders []models.PurchaseOrder
	suppliers      []models.Supplier
	activityLog    []models.ActivityEntry
	mediaItems     []models.MediaItem

	user        *models.User
	sessionFile string
}

// New creates a store seeded with the sample dataset and restores any session
// user cached from a previous run.
func New(sessionFile string) *Store {
	s := &Store{sessionFile: sessionFile}
	s.seed()

	// Restore cached session, same as reading the saved user on startup.
	// No activity entry is written for a restore.
	if u, ok := loadSession(sessionFile); ok {
		s.user = &u
	}
	return s
}

// ==========================================
// PRODUCTS
// ==========================================

// AddProduct assigns the next id and appends the product. Stock defaults to 0
// when the caller leaves it unset. SKU uniqueness is NOT checked.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = len(s.products) + 1
	s.products = append(s.products, p)
	s.logLocked("Product Created", fmt.Sprintf("New product: %s (%s)", p.Name, p.SKU))
	return p
}

// UpdateProduct merges the non-nil fields of updates into the product with the
// given id. When no product matches, the update is a no-op but an activity
// entry is still written from the (empty) pre-update lookup; consumers
// tolerate the stale entry and expect no error.
func (s *Store) UpdateProduct(id int, updates models.ProductUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Lookup BEFORE applying, so the log line shows the old name/SKU even
	// when those fields are being changed.
	var before models.Product
	for _, p := range s.products {
		if p.ID == id {
			before = p
			break
		}
	}

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if updates.SKU != nil {
			p.SKU = *updates.SKU
		}
		if updates.Name != nil {
			p.Name = *updates.Name
		}
		if updates.Category != nil {
			p.Category = *updates.Category
		}
		if updates.Price != nil {
			p.Price = *updates.Price
		}
		if updates.Cost != nil {
			p.Cost = *updates.Cost
		}
		if updates.Stock != nil {
			p.Stock = *updates.Stock
		}
		if updates.Warehouse != nil {
			p.Warehouse = *updates.Warehouse
		}
		if updates.Image != nil {
			p.Image = *updates.Image
		}
		if updates.Specs != nil {
			p.Specs = updates.Specs
		}
		break
	}

	s.logLocked("Product Updated", fmt.Sprintf("%s (%s) was updated", before.Name, before.SKU))
}

// StockModeAdd increments the current stock; any other mode value sets the
// absolute stock level.
const StockModeAdd = "add"

// UpdateStock changes a product's stock level. warehouseID is accepted for
// interface compatibility but ignored: stock is not tracked per warehouse.
// Unknown product ids are a silent no-op (no activity entry either). The
// resulting stock may go negative; there is no floor.
func (s *Store) UpdateStock(productID, warehouseID, quantity int, mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateStockLocked(productID, quantity, mode)
}

func (s *Store) updateStockLocked(productID, quantity int, mode string) {
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		p := &s.products[i]
		newStock := quantity
		if mode == StockModeAdd {
			newStock = p.Stock + quantity
		}
		s.logLocked("Stock Updated", fmt.Sprintf("%s stock changed from %d to %d", p.Name, p.Stock, newStock))
		p.Stock = newStock
		return
	}
}

// ==========================================
// PURCHASE ORDERS
// ==========================================

// CreatePurchaseOrder assigns the next id and a PO number of the form
// PO-2024-001, forces status to pending and stamps the creation time. The
// caller-supplied total is stored as-is; it is not reconciled against the
// line items.
func (s *Store) CreatePurchaseOrder(po models.PurchaseOrder) models.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	po.ID = len(s.purchaseOrders) + 1
	po.PONumber = fmt.Sprintf("PO-2024-%03d", po.ID)
	po.Status = models.POStatusPending
	po.CreatedAt = time.Now()
	po.ReceivedAt = nil
	s.purchaseOrders = append(s.purchaseOrders, po)
	s.logLocked("Purchase Order Created", fmt.Sprintf("PO %s created", po.PONumber))
	return po
}

// ReceivePurchaseOrder adds each line item's quantity to the referenced
// product's stock, then marks the order received. Unknown order ids are a
// silent no-op. Orders already received can be received again; the frontend
// only offers the action on pending orders.
func (s *Store) ReceivePurchaseOrder(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchaseOrders {
		if s.purchaseOrders[i].ID != id {
			continue
		}
		po := &s.purchaseOrders[i]
		for _, item := range po.Items {
			s.updateStockLocked(item.ProductID, item.Quantity, StockModeAdd)
		}
		now := time.Now()
		po.Status = models.POStatusReceived
		po.ReceivedAt = &now
		s.logLocked("Purchase Order Received", fmt.Sprintf("PO %s received", po.PONumber))
		return
	}
}

// ==========================================
// ACTIVITY LOG
// ==========================================

// LogActivity prepends an entry stamped with the current user's name (or
// "System" when nobody is logged in). Always succeeds.
func (s *Store) LogActivity(action, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logLocked(action, details)
}

func (s *Store) logLocked(action, details string) {
	userName := "System"
	if s.user != nil {
		userName = s.user.Name
	}
	entry := models.ActivityEntry{
		ID:        len(s.activityLog) + 1,
		Action:    action,
		User:      userName,
		Details:   details,
		Timestamp: time.Now(),
	}
	// Newest first.
	s.activityLog = append([]models.ActivityEntry{entry}, s.activityLog...)
}

// ==========================================
// DERIVED VIEWS
// ==========================================

// LowStockThreshold is the fixed stock level below which a product counts as
// low stock.
const LowStockThreshold = 20

// LowStockItems returns every product with stock strictly below the
// threshold.
func (s *Store) LowStockItems() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var low []models.Product
	for _, p := range s.products {
		if p.Stock < LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// TotalStockValue returns the sum of stock * cost over all products.
func (s *Store) TotalStockValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, p := range s.products {
		total += float64(p.Stock) * p.Cost
	}
	return total
}

// ==========================================
// SESSION
// ==========================================

// Login sets the session user, caches it for the next run and logs the event.
func (s *Store) Login(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u
	saveSession(s.sessionFile, u)
	s.logLocked("User Logged In", fmt.Sprintf("%s logged in", u.Name))
}

// Logout clears the session user and its cache. The logout entry is written
// before the user is cleared so it carries the user's name; when nobody is
// logged in, nothing is logged.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.logLocked("User Logged Out", fmt.Sprintf("%s logged out", s.user.Name))
	}
	s.user = nil
	clearSession(s.sessionFile)
}

// CurrentUser returns the session user, or nil when nobody is logged in.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// ==========================================
// MEDIA LIBRARY (mocked)
// ==========================================

// AddMediaItem registers file metadata in the library. No file bytes are
// stored anywhere.
func (s *Store) AddMediaItem(m models.MediaItem) models.MediaItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = len(s.mediaItems) + 1
	s.mediaItems = append(s.mediaItems, m)
	return m
}

// ==========================================
// READ ACCESSORS
// ==========================================

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

func (s *Store) ProductByID(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Warehouses() []models.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Warehouse(nil), s.warehouses...)
}

func (s *Store) PurchaseOrders() []models.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PurchaseOrder(nil), s.purchaseOrders...)
}

func (s *Store) PurchaseOrderByID(id int) (models.PurchaseOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, po := range s.purchaseOrders {
		if po.ID == id {
			return po, true
		}
	}
	return models.PurchaseOrder{}, false
}

func (s *Store) Suppliers() []models.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Supplier(nil), s.suppliers...)
}

func (s *Store) ActivityLog() []models.ActivityEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ActivityEntry(nil), s.activityLog...)
}

func (s *Store) MediaItems() []models.MediaItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MediaItem(nil), s.mediaItems...)
}
