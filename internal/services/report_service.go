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

// --- Custom Service Errors for Reports ---
var (
	ErrInvalidDateRange = errors.New("invalid date range, expected YYYY-MM-DD with start <= end")
	ErrInvalidMonth     = errors.New("invalid month, expected YYYY-MM")
)

const reportDateLayout = "2006-01-02"
const settlementMonthLayout = "2006-01"

// --- ReportService Interface ---
//
// All aggregation is delegated to the analytics package; this service only
// checks ownership, resolves date windows, and maps repository rows in.
type ReportService interface {
	GetRevenueReport(ownerID int64, params models.ReportRequestParams) (*models.RevenueReport, error)
	GetSettlementReport(ownerID int64, params models.ReportRequestParams) (*models.SettlementReport, error)
	GetDashboardSummary(ownerID, storeID int64, now time.Time) (*models.DashboardSummary, error)
}

type reportService struct {
	orderRepo repositories.OrderRepository
	storeRepo repositories.StoreRepository
	db        *sql.DB
}

// NewReportService creates a new instance of ReportService.
func NewReportService(orderRepo repositories.OrderRepository, storeRepo repositories.StoreRepository, db *sql.DB) ReportService {
	return &reportService{orderRepo: orderRepo, storeRepo: storeRepo, db: db}
}

// GetRevenueReport aggregates one store's completed orders over an inclusive
// date range into a period summary.
func (s *reportService) GetRevenueReport(ownerID int64, params models.ReportRequestParams) (*models.RevenueReport, error) {
	if err := s.requireStoreOwnership(params.StoreID, ownerID); err != nil {
		return nil, err
	}

	start, err := time.Parse(reportDateLayout, params.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDateRange, params.StartDate)
	}
	end, err := time.Parse(reportDateLayout, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDateRange, params.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, params.StartDate, params.EndDate)
	}

	records, err := s.orderRepo.GetOrdersForPeriod(params.StoreID, params.StartDate, params.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period orders: %w", err)
	}

	return &models.RevenueReport{
		StoreID:   params.StoreID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Summary:   analytics.ComputePeriodSummary(records),
	}, nil
}

// GetSettlementReport aggregates one store's completed order lines for a
// calendar month into a per-menu payout breakdown.
func (s *reportService) GetSettlementReport(ownerID int64, params models.ReportRequestParams) (*models.SettlementReport, error) {
	if err := s.requireStoreOwnership(params.StoreID, ownerID); err != nil {
		return nil, err
	}

	monthStart, err := time.Parse(settlementMonthLayout, params.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMonth, params.Month)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	sales, err := s.orderRepo.GetMenuSalesForMonth(
		params.StoreID,
		monthStart.Format(reportDateLayout),
		monthEnd.Format(reportDateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settlement sales: %w", err)
	}

	return &models.SettlementReport{
		StoreID:    params.StoreID,
		Month:      params.Month,
		Settlement: analytics.ComputeSettlement(sales),
	}, nil
}

// GetDashboardSummary runs the period aggregation over three rolling windows
// ending today: the day itself, the week starting Monday, and the month
// starting on the 1st.
func (s *reportService) GetDashboardSummary(ownerID, storeID int64, now time.Time) (*models.DashboardSummary, error) {
	if err := s.requireStoreOwnership(storeID, ownerID); err != nil {
		return nil, err
	}

	today := now.Format(reportDateLayout)

	weekStart := now.AddDate(0, 0, -int(now.Weekday())+1)
	if now.Weekday() == time.Sunday {
		weekStart = now.AddDate(0, 0, -6)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	summary := &models.DashboardSummary{StoreID: storeID}
	windows := []struct {
		start string
		dest  *analytics.PeriodSummary
	}{
		{today, &summary.Today},
		{weekStart.Format(reportDateLayout), &summary.ThisWeek},
		{monthStart.Format(reportDateLayout), &summary.ThisMonth},
	}
	for _, window := range windows {
		records, err := s.orderRepo.GetOrdersForPeriod(storeID, window.start, today)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dashboard window %s: %w", window.start, err)
		}
		*window.dest = analytics.ComputePeriodSummary(records)
	}
	return summary, nil
}

func (s *reportService) requireStoreOwnership(storeID, ownerID int64) error {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStoreNotFound
		}
		return fmt.Errorf("failed to check store ownership: %w", err)
	}
	if store.OwnerID != ownerID {
		return ErrNotStoreOwner
	}
	return nil
}
