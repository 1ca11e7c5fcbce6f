package models

import "time"

// Store represents one store owned by an Owner account. Operating hours are
// stored as minute-of-day integers (0-1439); both nil means the owner never
// configured a schedule.
type Store struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id" db:"owner_id"`
	Name          string    `json:"name" db:"name"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Address       *string   `json:"address,omitempty" db:"address"`
	Description   *string   `json:"description,omitempty" db:"description"`
	MinOrderPrice int64     `json:"min_order_price" db:"min_order_price"`
	DeliveryTip   int64     `json:"delivery_tip" db:"delivery_tip"`
	OpenTime      *int      `json:"open_time,omitempty" db:"open_time"`   // minute-of-day
	CloseTime     *int      `json:"close_time,omitempty" db:"close_time"` // minute-of-day
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// StoreFilters defines the available filters for querying stores.
type StoreFilters struct {
	OwnerID  *int64  `form:"owner_id"`
	Keyword  *string `form:"keyword"`
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}
