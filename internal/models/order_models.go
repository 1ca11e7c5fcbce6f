package models

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods.
const (
	PaymentMethodCard     = "CARD"
	PaymentMethodCash     = "CASH"
	PaymentMethodTransfer = "TRANSFER"
)

// Order represents one placed order. Menu title and unit price are snapshots
// taken at order time so later menu edits do not rewrite history.
type Order struct {
	ID              int64     `json:"id"`
	StoreID         int64     `json:"store_id" db:"store_id"`
	StoreName       *string   `json:"store_name,omitempty"` // joined
	CustomerID      int64     `json:"customer_id" db:"customer_id"`
	MenuID          int64     `json:"menu_id" db:"menu_id"`
	MenuTitle       string    `json:"menu_title" db:"menu_title"`
	UnitPrice       int64     `json:"unit_price" db:"unit_price"`
	Quantity        int       `json:"quantity" db:"quantity"`
	TotalPrice      int64     `json:"total_price" db:"total_price"`
	Status          string    `json:"status" db:"status"`
	CustomerName    string    `json:"customer_name" db:"customer_name"`
	CustomerPhone   string    `json:"customer_phone" db:"customer_phone"`
	CustomerAddress string    `json:"customer_address" db:"customer_address"`
	PaymentMethod   string    `json:"payment_method" db:"payment_method"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// OrderFilters defines the available filters for querying orders.
// This struct is used by both the service and repository layers.
type OrderFilters struct {
	StoreID    *int64  `form:"store_id"`
	CustomerID *int64  `form:"customer_id"`
	Status     *string `form:"status"`
	Date       *string `form:"date"` // Expected format YYYY-MM-DD
	Page       int     `form:"page"`
	PageSize   int     `form:"page_size"`
}
