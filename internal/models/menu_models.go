package models

import "time"

// Menu represents a single menu item offered by a store. Prices are whole
// currency units.
type Menu struct {
	ID          int64     `json:"id"`
	StoreID     int64     `json:"store_id" db:"store_id"`
	Title       string    `json:"title" db:"title"`
	Price       int64     `json:"price" db:"price"`
	Description *string   `json:"description,omitempty" db:"description"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
