package services

import (
	"database/sql"
	"errors"
	"fmt"

	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// --- Custom Service Errors for Orders ---
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrMenuUnavailable    = errors.New("menu is not available for ordering")
	ErrBelowMinOrder      = errors.New("order total is below the store's minimum order amount")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrNotOrderParty      = errors.New("order does not belong to the requesting user")
)

// --- Order DTOs ---

// CreateOrderRequest is used by customers to place an order.
type CreateOrderRequest struct {
	StoreID         int64  `json:"store_id" binding:"required"`
	MenuID          int64  `json:"menu_id" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,gt=0"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
}

// UpdateOrderStatusRequest is used by owners to move an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- OrderService Interface ---
//
// Read operations carry the requester's identity: customers only see their
// own orders, owners only their stores' orders, admins everything.
type OrderService interface {
	CreateOrder(customerID int64, req CreateOrderRequest) (*models.Order, error)
	GetOrders(requesterID int64, requesterRole string, filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderByID(orderID, requesterID int64, requesterRole string) (*models.Order, error)
	UpdateOrderStatus(orderID, ownerID int64, req UpdateOrderStatusRequest) (*models.Order, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
	storeRepo repositories.StoreRepository
	db        *sql.DB
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	mr repositories.MenuRepository,
	sr repositories.StoreRepository,
	db *sql.DB,
) OrderService {
	return &orderService{
		orderRepo: or,
		menuRepo:  mr,
		storeRepo: sr,
		db:        db,
	}
}

// CreateOrder places an order for a single menu item. Menu title and price
// are snapshotted into the order row; the total is computed server-side.
func (s *orderService) CreateOrder(customerID int64, req CreateOrderRequest) (*models.Order, error) {
	if !isValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, req.PaymentMethod)
	}

	store, err := s.storeRepo.GetStoreByID(req.StoreID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to fetch store %d: %w", req.StoreID, err)
	}

	menu, err := s.menuRepo.GetMenuByID(req.MenuID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to fetch menu %d: %w", req.MenuID, err)
	}
	if menu.StoreID != store.ID {
		return nil, fmt.Errorf("%w: menu %d does not belong to store %d", ErrMenuNotFound, req.MenuID, req.StoreID)
	}
	if !menu.IsAvailable {
		return nil, fmt.Errorf("%w: %s", ErrMenuUnavailable, menu.Title)
	}

	totalPrice := menu.Price * int64(req.Quantity)
	if totalPrice < store.MinOrderPrice {
		return nil, fmt.Errorf("%w: total %d, minimum %d", ErrBelowMinOrder, totalPrice, store.MinOrderPrice)
	}

	order := models.Order{
		StoreID:         store.ID,
		CustomerID:      customerID,
		MenuID:          menu.ID,
		MenuTitle:       menu.Title,
		UnitPrice:       menu.Price,
		Quantity:        req.Quantity,
		TotalPrice:      totalPrice,
		Status:          models.OrderStatusPending,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		PaymentMethod:   req.PaymentMethod,
	}

	orderID, err := s.orderRepo.CreateOrder(s.db, &order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order record: %w", err)
	}
	return s.fetchOrder(orderID)
}

// GetOrders lists orders visible to the requester. Customer listings are
// forced onto their own customer ID regardless of incoming filters; owner
// listings require a store ID and that the store belongs to the requester.
func (s *orderService) GetOrders(requesterID int64, requesterRole string, filters models.OrderFilters) ([]models.Order, int, error) {
	switch requesterRole {
	case models.RoleAdmin:
		// unrestricted
	case models.RoleOwner:
		if filters.StoreID == nil {
			return nil, 0, fmt.Errorf("%w: store_id is required", ErrValidation)
		}
		store, err := s.storeRepo.GetStoreByID(*filters.StoreID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, 0, ErrStoreNotFound
			}
			return nil, 0, fmt.Errorf("failed to check store ownership: %w", err)
		}
		if store.OwnerID != requesterID {
			return nil, 0, ErrNotStoreOwner
		}
	default:
		filters.CustomerID = &requesterID
		filters.StoreID = nil
	}

	orders, totalCount, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, totalCount, nil
}

// GetOrderByID fetches one order for a party to it: the ordering customer,
// the owner of the order's store, or an admin.
func (s *orderService) GetOrderByID(orderID, requesterID int64, requesterRole string) (*models.Order, error) {
	order, err := s.fetchOrder(orderID)
	if err != nil {
		return nil, err
	}
	if requesterRole == models.RoleAdmin || order.CustomerID == requesterID {
		return order, nil
	}
	store, err := s.storeRepo.GetStoreByID(order.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store for order %d: %w", orderID, err)
	}
	if store.OwnerID != requesterID {
		return nil, ErrNotOrderParty
	}
	return order, nil
}

func (s *orderService) fetchOrder(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// UpdateOrderStatus applies a status change requested by the store owner.
func (s *orderService) UpdateOrderStatus(orderID, ownerID int64, req UpdateOrderStatusRequest) (*models.Order, error) {
	if !isValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, req.Status)
	}

	order, err := s.fetchOrder(orderID)
	if err != nil {
		return nil, err
	}
	store, err := s.storeRepo.GetStoreByID(order.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store for order %d: %w", orderID, err)
	}
	if store.OwnerID != ownerID {
		return nil, ErrNotOrderParty
	}

	if err := s.orderRepo.UpdateOrderStatus(s.db, orderID, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return s.fetchOrder(orderID)
}

func isValidOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusAccepted, models.OrderStatusDelivering,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

func isValidPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodCard, models.PaymentMethodCash, models.PaymentMethodTransfer:
		return true
	}
	return false
}
