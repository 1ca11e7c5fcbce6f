package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery_backend/internal/analytics"
	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// --- Custom Service Errors for Stores ---
var (
	ErrStoreNotFound = errors.New("store not found")
	ErrNotStoreOwner = errors.New("store does not belong to the requesting owner")
	ErrInvalidHours  = errors.New("operating hours out of range")
)

// --- Store DTOs ---

// OperatingHours carries an (hour, minute) pair from the client; the service
// converts it to minute-of-day before persisting.
type OperatingHours struct {
	Hour   int `json:"hour" binding:"min=0,max=23"`
	Minute int `json:"minute" binding:"min=0,max=59"`
}

type CreateStoreRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         *string         `json:"phone"`
	Address       *string         `json:"address"`
	Description   *string         `json:"description"`
	MinOrderPrice int64           `json:"min_order_price" binding:"min=0"`
	DeliveryTip   int64           `json:"delivery_tip" binding:"min=0"`
	OpenAt        *OperatingHours `json:"open_at"`
	CloseAt       *OperatingHours `json:"close_at"`
}

type UpdateStoreRequest struct {
	Name          *string         `json:"name"`
	Phone         *string         `json:"phone"`
	Address       *string         `json:"address"`
	Description   *string         `json:"description"`
	MinOrderPrice *int64          `json:"min_order_price"`
	DeliveryTip   *int64          `json:"delivery_tip"`
	OpenAt        *OperatingHours `json:"open_at"`
	CloseAt       *OperatingHours `json:"close_at"`
}

// --- StoreService Interface ---
type StoreService interface {
	CreateStore(ownerID int64, req CreateStoreRequest) (*models.Store, error)
	GetStores(filters models.StoreFilters) ([]models.Store, int, error)
	GetStoreByID(storeID int64) (*models.Store, error)
	UpdateStore(storeID, ownerID int64, req UpdateStoreRequest) (*models.Store, error)
	DeleteStore(storeID, ownerID int64) error
	GetBusinessStatus(storeID int64, now time.Time) (*analytics.BusinessStatus, error)
}

type storeService struct {
	storeRepo repositories.StoreRepository
	db        *sql.DB
}

// NewStoreService creates a new instance of StoreService.
func NewStoreService(storeRepo repositories.StoreRepository, db *sql.DB) StoreService {
	return &storeService{storeRepo: storeRepo, db: db}
}

func (s *storeService) CreateStore(ownerID int64, req CreateStoreRequest) (*models.Store, error) {
	openTime, err := hoursToMinuteOfDay(req.OpenAt)
	if err != nil {
		return nil, err
	}
	closeTime, err := hoursToMinuteOfDay(req.CloseAt)
	if err != nil {
		return nil, err
	}

	store := models.Store{
		OwnerID:       ownerID,
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Description:   req.Description,
		MinOrderPrice: req.MinOrderPrice,
		DeliveryTip:   req.DeliveryTip,
		OpenTime:      openTime,
		CloseTime:     closeTime,
	}

	storeID, err := s.storeRepo.CreateStore(s.db, &store)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return s.GetStoreByID(storeID)
}

func (s *storeService) GetStores(filters models.StoreFilters) ([]models.Store, int, error) {
	stores, totalCount, err := s.storeRepo.GetStores(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get stores: %w", err)
	}
	return stores, totalCount, nil
}

func (s *storeService) GetStoreByID(storeID int64) (*models.Store, error) {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return store, nil
}

func (s *storeService) UpdateStore(storeID, ownerID int64, req UpdateStoreRequest) (*models.Store, error) {
	store, err := s.requireOwnedStore(storeID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Phone != nil {
		store.Phone = req.Phone
	}
	if req.Address != nil {
		store.Address = req.Address
	}
	if req.Description != nil {
		store.Description = req.Description
	}
	if req.MinOrderPrice != nil {
		store.MinOrderPrice = *req.MinOrderPrice
	}
	if req.DeliveryTip != nil {
		store.DeliveryTip = *req.DeliveryTip
	}
	if req.OpenAt != nil {
		openTime, err := hoursToMinuteOfDay(req.OpenAt)
		if err != nil {
			return nil, err
		}
		store.OpenTime = openTime
	}
	if req.CloseAt != nil {
		closeTime, err := hoursToMinuteOfDay(req.CloseAt)
		if err != nil {
			return nil, err
		}
		store.CloseTime = closeTime
	}

	if err := s.storeRepo.UpdateStore(s.db, store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return s.GetStoreByID(storeID)
}

func (s *storeService) DeleteStore(storeID, ownerID int64) error {
	if _, err := s.requireOwnedStore(storeID, ownerID); err != nil {
		return err
	}
	if err := s.storeRepo.DeleteStore(s.db, storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStoreNotFound
		}
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return nil
}

// GetBusinessStatus derives the store's open/closed state at the given wall
// clock. The clock is a parameter so the derivation itself stays pure.
func (s *storeService) GetBusinessStatus(storeID int64, now time.Time) (*analytics.BusinessStatus, error) {
	store, err := s.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}
	nowMinute := analytics.ToMinutes(now.Hour(), now.Minute())
	status := analytics.ComputeBusinessStatusForStore(nowMinute, store.OpenTime, store.CloseTime)
	return &status, nil
}

func (s *storeService) requireOwnedStore(storeID, ownerID int64) (*models.Store, error) {
	store, err := s.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, ErrNotStoreOwner
	}
	return store, nil
}

func hoursToMinuteOfDay(h *OperatingHours) (*int, error) {
	if h == nil {
		return nil, nil
	}
	if h.Hour < 0 || h.Hour > 23 || h.Minute < 0 || h.Minute > 59 {
		return nil, fmt.Errorf("%w: %d:%d", ErrInvalidHours, h.Hour, h.Minute)
	}
	minute := analytics.ToMinutes(h.Hour, h.Minute)
	return &minute, nil
}
