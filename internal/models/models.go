package models

import "time"

// ==========================================
// INVENTORY & PRODUCT
// ==========================================

// Fixed product categories used by the catalog.
const (
	CategoryLights = "Lights"
	CategoryCrafts = "Crafts"
	CategoryDecor  = "Décor"
)

type Product struct {
	ID       int     `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Stock    int     `json:"stock"`
	// Warehouse is the warehouse NAME, not a foreign key. Stock is not
	// tracked per warehouse.
	Warehouse string            `json:"warehouse"`
	Image     string            `json:"image,omitempty"`
	Specs     map[string]string `json:"specs,omitempty"`
}

// ProductUpdate carries a partial product edit. Nil fields are left
// untouched.
type ProductUpdate struct {
	SKU       *string           `json:"sku"`
	Name      *string           `json:"name"`
	Category  *string           `json:"category"`
	Price     *float64          `json:"price"`
	Cost      *float64          `json:"cost"`
	Stock     *int              `json:"stock"`
	Warehouse *string           `json:"warehouse"`
	Image     *string           `json:"image"`
	Specs     map[string]string `json:"specs"`
}

type Warehouse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Supplier struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// ==========================================
// PURCHASE ORDERS
// ==========================================

type POStatus string

const (
	POStatusPending  POStatus = "pending"
	POStatusReceived POStatus = "received"
	// Displayed by the frontend but never set by the store; there is no
	// cancel operation.
	POStatusCancelled POStatus = "cancelled"
)

type POItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type PurchaseOrder struct {
	ID           int        `json:"id"`
	PONumber     string     `json:"poNumber"`
	Supplier     string     `json:"supplier"`
	Status       POStatus   `json:"status"`
	Items        []POItem   `json:"items"`
	Total        float64    `json:"total"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpectedDate time.Time  `json:"expectedDate"`
	ReceivedAt   *time.Time `json:"receivedAt,omitempty"`
}

// ==========================================
// ACTIVITY LOG
// ==========================================

type ActivityEntry struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// ==========================================
// AUTH & USERS
// ==========================================

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Credential is a demo login record. The password is bcrypt-hashed at seed
// time; json:"-" keeps the hash out of every response.
type Credential struct {
	User
	PasswordHash string `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ==========================================
// MEDIA LIBRARY (mocked - metadata only)
// ==========================================

type MediaItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // "image" or "pdf"
	Size     string `json:"size"`
	Uploaded string `json:"uploaded"` // YYYY-MM-DD
}
