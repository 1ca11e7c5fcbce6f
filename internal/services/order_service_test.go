package services

import (
	"errors"
	"testing"

	"delivery_backend/internal/analytics"
	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// fakeMenuRepo serves a single menu item.
type fakeMenuRepo struct {
	menu *models.Menu
}

func (r *fakeMenuRepo) CreateMenu(repositories.SQLExecutor, *models.Menu) (int64, error) {
	return 0, errors.New("not implemented")
}
func (r *fakeMenuRepo) GetMenusByStore(int64) ([]models.Menu, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeMenuRepo) GetMenuByID(menuID int64) (*models.Menu, error) {
	if r.menu == nil || r.menu.ID != menuID {
		return nil, repositories.ErrNotFound
	}
	return r.menu, nil
}
func (r *fakeMenuRepo) UpdateMenu(repositories.SQLExecutor, *models.Menu) error {
	return errors.New("not implemented")
}
func (r *fakeMenuRepo) DeleteMenu(repositories.SQLExecutor, int64) error {
	return errors.New("not implemented")
}

// fakeOrderRepo keeps created orders in memory and records listing filters.
type fakeOrderRepo struct {
	orders       map[int64]*models.Order
	nextID       int64
	listRequests []models.OrderFilters
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*models.Order), nextID: 1}
}

func (r *fakeOrderRepo) CreateOrder(_ repositories.SQLExecutor, order *models.Order) (int64, error) {
	stored := *order
	stored.ID = r.nextID
	r.orders[stored.ID] = &stored
	r.nextID++
	return stored.ID, nil
}
func (r *fakeOrderRepo) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	r.listRequests = append(r.listRequests, filters)
	return []models.Order{}, 0, nil
}
func (r *fakeOrderRepo) GetOrderByID(orderID int64) (*models.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return order, nil
}
func (r *fakeOrderRepo) UpdateOrderStatus(_ repositories.SQLExecutor, orderID int64, status string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return repositories.ErrNotFound
	}
	order.Status = status
	return nil
}
func (r *fakeOrderRepo) GetOrdersForPeriod(int64, string, string) ([]analytics.OrderRecord, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeOrderRepo) GetMenuSalesForMonth(int64, string, string) ([]analytics.SaleRecord, error) {
	return nil, errors.New("not implemented")
}

func newOrderFixture() (OrderService, *fakeOrderRepo) {
	storeRepo := &stubStoreRepo{store: &models.Store{ID: 10, OwnerID: 77, Name: "Golden Chicken", MinOrderPrice: 15000}}
	menuRepo := &fakeMenuRepo{menu: &models.Menu{ID: 5, StoreID: 10, Title: "Fried Chicken", Price: 10000, IsAvailable: true}}
	orderRepo := newFakeOrderRepo()
	return NewOrderService(orderRepo, menuRepo, storeRepo, nil), orderRepo
}

func validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		StoreID:         10,
		MenuID:          5,
		Quantity:        2,
		CustomerName:    "Kim",
		CustomerPhone:   "010-1234-5678",
		CustomerAddress: "12 Main St",
		PaymentMethod:   models.PaymentMethodCard,
	}
}

func TestCreateOrderSnapshotsMenu(t *testing.T) {
	svc, _ := newOrderFixture()

	order, err := svc.CreateOrder(42, validOrderRequest())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.MenuTitle != "Fried Chicken" || order.UnitPrice != 10000 {
		t.Errorf("snapshot = (%q, %d), want (Fried Chicken, 10000)", order.MenuTitle, order.UnitPrice)
	}
	if order.TotalPrice != 20000 {
		t.Errorf("TotalPrice = %d, want 20000", order.TotalPrice)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %q, want %q", order.Status, models.OrderStatusPending)
	}
	if order.CustomerID != 42 {
		t.Errorf("CustomerID = %d, want 42", order.CustomerID)
	}
}

func TestCreateOrderRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateOrderRequest)
		wantErr error
	}{
		{
			"below store minimum",
			func(req *CreateOrderRequest) { req.Quantity = 1 },
			ErrBelowMinOrder,
		},
		{
			"unknown payment method",
			func(req *CreateOrderRequest) { req.PaymentMethod = "BARTER" },
			ErrInvalidPayment,
		},
		{
			"menu from another store",
			func(req *CreateOrderRequest) { req.MenuID = 99 },
			ErrMenuNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newOrderFixture()
			req := validOrderRequest()
			tc.mutate(&req)
			if _, err := svc.CreateOrder(42, req); !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateOrderUnavailableMenu(t *testing.T) {
	storeRepo := &stubStoreRepo{store: &models.Store{ID: 10, OwnerID: 77, MinOrderPrice: 0}}
	menuRepo := &fakeMenuRepo{menu: &models.Menu{ID: 5, StoreID: 10, Title: "Sold Out Special", Price: 9000, IsAvailable: false}}
	svc := NewOrderService(newFakeOrderRepo(), menuRepo, storeRepo, nil)

	if _, err := svc.CreateOrder(42, validOrderRequest()); !errors.Is(err, ErrMenuUnavailable) {
		t.Errorf("err = %v, want ErrMenuUnavailable", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _ := newOrderFixture()
	order, err := svc.CreateOrder(42, validOrderRequest())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	updated, err := svc.UpdateOrderStatus(order.ID, 77, UpdateOrderStatusRequest{Status: models.OrderStatusAccepted})
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if updated.Status != models.OrderStatusAccepted {
		t.Errorf("Status = %q, want %q", updated.Status, models.OrderStatusAccepted)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, 999, UpdateOrderStatusRequest{Status: models.OrderStatusCompleted}); !errors.Is(err, ErrNotOrderParty) {
		t.Errorf("foreign owner err = %v, want ErrNotOrderParty", err)
	}
	if _, err := svc.UpdateOrderStatus(order.ID, 77, UpdateOrderStatusRequest{Status: "teleported"}); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Errorf("bad status err = %v, want ErrInvalidOrderStatus", err)
	}
}

func TestGetOrdersScopesCustomerToOwnOrders(t *testing.T) {
	svc, orderRepo := newOrderFixture()

	// A customer listing is forced onto their own ID even when the request
	// smuggles in someone else's store or customer filter.
	foreignStore := int64(10)
	foreignCustomer := int64(7)
	_, _, err := svc.GetOrders(42, models.RoleCustomer, models.OrderFilters{
		StoreID:    &foreignStore,
		CustomerID: &foreignCustomer,
	})
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	if len(orderRepo.listRequests) != 1 {
		t.Fatalf("repo list calls = %d, want 1", len(orderRepo.listRequests))
	}
	got := orderRepo.listRequests[0]
	if got.CustomerID == nil || *got.CustomerID != 42 {
		t.Errorf("CustomerID filter = %v, want 42", got.CustomerID)
	}
	if got.StoreID != nil {
		t.Errorf("StoreID filter = %v, want nil", *got.StoreID)
	}
}

func TestGetOrdersOwnerScoping(t *testing.T) {
	svc, orderRepo := newOrderFixture()
	storeID := int64(10)

	if _, _, err := svc.GetOrders(77, models.RoleOwner, models.OrderFilters{StoreID: &storeID}); err != nil {
		t.Fatalf("own store listing: %v", err)
	}
	if _, _, err := svc.GetOrders(999, models.RoleOwner, models.OrderFilters{StoreID: &storeID}); !errors.Is(err, ErrNotStoreOwner) {
		t.Errorf("foreign store err = %v, want ErrNotStoreOwner", err)
	}
	if _, _, err := svc.GetOrders(77, models.RoleOwner, models.OrderFilters{}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing store_id err = %v, want ErrValidation", err)
	}
	if len(orderRepo.listRequests) != 1 {
		t.Errorf("repo list calls = %d, want 1 (only the owned-store listing)", len(orderRepo.listRequests))
	}
}

func TestGetOrderByIDRequiresParty(t *testing.T) {
	svc, _ := newOrderFixture()
	order, err := svc.CreateOrder(42, validOrderRequest())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	cases := []struct {
		name        string
		requesterID int64
		role        string
		wantErr     error
	}{
		{"ordering customer", 42, models.RoleCustomer, nil},
		{"store owner", 77, models.RoleOwner, nil},
		{"admin", 1, models.RoleAdmin, nil},
		{"other customer", 999, models.RoleCustomer, ErrNotOrderParty},
		{"other owner", 999, models.RoleOwner, ErrNotOrderParty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetOrderByID(order.ID, tc.requesterID, tc.role)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
