package services

import (
	"errors"
	"testing"
	"time"

	"delivery_backend/internal/analytics"
	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// stubStoreRepo serves a single store.
type stubStoreRepo struct {
	store *models.Store
}

func (r *stubStoreRepo) CreateStore(repositories.SQLExecutor, *models.Store) (int64, error) {
	return 0, errors.New("not implemented")
}
func (r *stubStoreRepo) GetStores(models.StoreFilters) ([]models.Store, int, error) {
	return nil, 0, errors.New("not implemented")
}
func (r *stubStoreRepo) GetStoreByID(storeID int64) (*models.Store, error) {
	if r.store == nil || r.store.ID != storeID {
		return nil, repositories.ErrNotFound
	}
	return r.store, nil
}
func (r *stubStoreRepo) UpdateStore(repositories.SQLExecutor, *models.Store) error {
	return errors.New("not implemented")
}
func (r *stubStoreRepo) DeleteStore(repositories.SQLExecutor, int64) error {
	return errors.New("not implemented")
}

// stubOrderRepo returns canned rows and records the windows it was asked for.
type stubOrderRepo struct {
	records        []analytics.OrderRecord
	sales          []analytics.SaleRecord
	periodRequests [][2]string
}

func (r *stubOrderRepo) CreateOrder(repositories.SQLExecutor, *models.Order) (int64, error) {
	return 0, errors.New("not implemented")
}
func (r *stubOrderRepo) GetOrders(models.OrderFilters) ([]models.Order, int, error) {
	return nil, 0, errors.New("not implemented")
}
func (r *stubOrderRepo) GetOrderByID(int64) (*models.Order, error) {
	return nil, errors.New("not implemented")
}
func (r *stubOrderRepo) UpdateOrderStatus(repositories.SQLExecutor, int64, string) error {
	return errors.New("not implemented")
}
func (r *stubOrderRepo) GetOrdersForPeriod(storeID int64, startDate, endDate string) ([]analytics.OrderRecord, error) {
	r.periodRequests = append(r.periodRequests, [2]string{startDate, endDate})
	return r.records, nil
}
func (r *stubOrderRepo) GetMenuSalesForMonth(storeID int64, monthStart, monthEnd string) ([]analytics.SaleRecord, error) {
	return r.sales, nil
}

func newReportFixture(records []analytics.OrderRecord, sales []analytics.SaleRecord) (ReportService, *stubOrderRepo) {
	orderRepo := &stubOrderRepo{records: records, sales: sales}
	storeRepo := &stubStoreRepo{store: &models.Store{ID: 10, OwnerID: 77, Name: "Golden Chicken"}}
	return NewReportService(orderRepo, storeRepo, nil), orderRepo
}

func TestGetRevenueReport(t *testing.T) {
	svc, _ := newReportFixture([]analytics.OrderRecord{
		{ID: 1, CreatedAt: "2025-10-24 09:00", TotalPrice: 20000, Quantity: 2},
		{ID: 2, CreatedAt: "2025-10-25 12:00", TotalPrice: 15000, Quantity: 1},
	}, nil)

	report, err := svc.GetRevenueReport(77, models.ReportRequestParams{
		StoreID: 10, StartDate: "2025-10-01", EndDate: "2025-10-31",
	})
	if err != nil {
		t.Fatalf("GetRevenueReport: %v", err)
	}
	if report.Summary.TotalRevenue != 35000 || report.Summary.TotalOrders != 2 {
		t.Errorf("summary totals = (%d, %d), want (35000, 2)",
			report.Summary.TotalRevenue, report.Summary.TotalOrders)
	}
	if len(report.Summary.DailyBreakdown) != 2 {
		t.Errorf("len(DailyBreakdown) = %d, want 2", len(report.Summary.DailyBreakdown))
	}
}

func TestGetRevenueReportRejectsForeignStore(t *testing.T) {
	svc, _ := newReportFixture(nil, nil)

	_, err := svc.GetRevenueReport(999, models.ReportRequestParams{
		StoreID: 10, StartDate: "2025-10-01", EndDate: "2025-10-31",
	})
	if !errors.Is(err, ErrNotStoreOwner) {
		t.Errorf("err = %v, want ErrNotStoreOwner", err)
	}
}

func TestGetRevenueReportRejectsBadRange(t *testing.T) {
	svc, _ := newReportFixture(nil, nil)

	cases := []struct {
		name       string
		start, end string
	}{
		{"garbage start", "next tuesday", "2025-10-31"},
		{"garbage end", "2025-10-01", "soon"},
		{"inverted range", "2025-10-31", "2025-10-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetRevenueReport(77, models.ReportRequestParams{
				StoreID: 10, StartDate: tc.start, EndDate: tc.end,
			})
			if !errors.Is(err, ErrInvalidDateRange) {
				t.Errorf("err = %v, want ErrInvalidDateRange", err)
			}
		})
	}
}

func TestGetSettlementReport(t *testing.T) {
	svc, _ := newReportFixture(nil, []analytics.SaleRecord{
		{MenuID: 1, MenuName: "Fried Chicken", Quantity: 2, LineTotal: 20000},
		{MenuID: 1, MenuName: "Fried Chicken", Quantity: 1, LineTotal: 10000},
		{MenuID: 2, MenuName: "Tteokbokki", Quantity: 1, LineTotal: 5000},
	})

	report, err := svc.GetSettlementReport(77, models.ReportRequestParams{StoreID: 10, Month: "2025-10"})
	if err != nil {
		t.Fatalf("GetSettlementReport: %v", err)
	}
	if report.Settlement.TotalAmount != 35000 {
		t.Errorf("TotalAmount = %d, want 35000", report.Settlement.TotalAmount)
	}
	if len(report.Settlement.MenuSalesList) != 2 {
		t.Errorf("len(MenuSalesList) = %d, want 2", len(report.Settlement.MenuSalesList))
	}

	if _, err := svc.GetSettlementReport(77, models.ReportRequestParams{StoreID: 10, Month: "October"}); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestGetDashboardSummaryWindows(t *testing.T) {
	svc, orderRepo := newReportFixture([]analytics.OrderRecord{
		{ID: 1, CreatedAt: "2025-10-22 09:00", TotalPrice: 9000, Quantity: 1},
	}, nil)

	// Wednesday 2025-10-22: week window starts Monday the 20th, month window
	// on the 1st, all ending today.
	now := time.Date(2025, 10, 22, 15, 0, 0, 0, time.UTC)
	summary, err := svc.GetDashboardSummary(77, 10, now)
	if err != nil {
		t.Fatalf("GetDashboardSummary: %v", err)
	}

	wantWindows := [][2]string{
		{"2025-10-22", "2025-10-22"},
		{"2025-10-20", "2025-10-22"},
		{"2025-10-01", "2025-10-22"},
	}
	if len(orderRepo.periodRequests) != len(wantWindows) {
		t.Fatalf("period fetches = %d, want %d", len(orderRepo.periodRequests), len(wantWindows))
	}
	for i, want := range wantWindows {
		if orderRepo.periodRequests[i] != want {
			t.Errorf("window %d = %v, want %v", i, orderRepo.periodRequests[i], want)
		}
	}
	if summary.Today.TotalRevenue != 9000 || summary.ThisMonth.TotalRevenue != 9000 {
		t.Errorf("window revenues = (%d, %d, %d), want 9000 each",
			summary.Today.TotalRevenue, summary.ThisWeek.TotalRevenue, summary.ThisMonth.TotalRevenue)
	}
}
