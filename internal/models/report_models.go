package models

import "delivery_backend/internal/analytics"

// ReportRequestParams holds common query parameters for revenue reports.
type ReportRequestParams struct {
	StoreID   int64  `form:"store_id"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	Month     string `form:"month"`      // YYYY-MM, settlement only
}

// RevenueReport wraps a period summary with the range it covers.
type RevenueReport struct {
	StoreID   int64                   `json:"store_id"`
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Summary   analytics.PeriodSummary `json:"summary"`
}

// SettlementReport is the monthly per-menu payout breakdown for one store.
type SettlementReport struct {
	StoreID    int64                      `json:"store_id"`
	Month      string                     `json:"month"` // YYYY-MM
	Settlement analytics.SettlementResult `json:"settlement"`
}

// DashboardSummary holds the rolling revenue figures shown on the owner
// dashboard, each derived by the same aggregation over a different window.
type DashboardSummary struct {
	StoreID   int64                   `json:"store_id"`
	Today     analytics.PeriodSummary `json:"today"`
	ThisWeek  analytics.PeriodSummary `json:"this_week"`
	ThisMonth analytics.PeriodSummary `json:"this_month"`
}
