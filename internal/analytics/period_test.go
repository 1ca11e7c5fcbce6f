package analytics

import (
	"reflect"
	"testing"
)

func TestComputePeriodSummaryEmpty(t *testing.T) {
	got := ComputePeriodSummary(nil)
	want := PeriodSummary{DailyBreakdown: []DailyAggregate{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputePeriodSummary(nil) = %+v, want %+v", got, want)
	}
}

func TestComputePeriodSummaryTotalsAndGrouping(t *testing.T) {
	orders := []OrderRecord{
		{ID: 1, CreatedAt: "2025-10-25 12:30", TotalPrice: 15000, Quantity: 1},
		{ID: 2, CreatedAt: "2025-10-24 09:00", TotalPrice: 20000, Quantity: 2},
		{ID: 3, CreatedAt: "2025-10-24 23:00", TotalPrice: 5000, Quantity: 1},
	}
	got := ComputePeriodSummary(orders)

	if got.TotalRevenue != 40000 {
		t.Errorf("TotalRevenue = %d, want 40000", got.TotalRevenue)
	}
	if got.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", got.TotalOrders)
	}
	// Two orders on the 24th collapse into one day; input arrived out of
	// date order and the breakdown must come back ascending.
	wantBreakdown := []DailyAggregate{
		{Date: "2025-10-24", OrderCount: 2, Revenue: 25000},
		{Date: "2025-10-25", OrderCount: 1, Revenue: 15000},
	}
	if !reflect.DeepEqual(got.DailyBreakdown, wantBreakdown) {
		t.Errorf("DailyBreakdown = %+v, want %+v", got.DailyBreakdown, wantBreakdown)
	}
}

func TestComputePeriodSummaryConservation(t *testing.T) {
	orders := []OrderRecord{
		{ID: 1, CreatedAt: "2025-01-01 10:00", TotalPrice: 1200},
		{ID: 2, CreatedAt: "2025-01-02 10:00", TotalPrice: 3400},
		{ID: 3, CreatedAt: "2025-01-02 11:00", TotalPrice: 5600},
		{ID: 4, CreatedAt: "2025-01-03 12:00", TotalPrice: 7800},
	}
	got := ComputePeriodSummary(orders)

	var revenue int64
	var count int
	for _, day := range got.DailyBreakdown {
		revenue += day.Revenue
		count += day.OrderCount
	}
	if revenue != got.TotalRevenue {
		t.Errorf("breakdown revenue %d != total %d", revenue, got.TotalRevenue)
	}
	if count != got.TotalOrders {
		t.Errorf("breakdown count %d != total %d", count, got.TotalOrders)
	}
}

func TestComputePeriodSummaryAverageRounding(t *testing.T) {
	// 201 / 2 = 100.5, which rounds away from zero to 101.
	orders := []OrderRecord{
		{ID: 1, CreatedAt: "2025-10-24 09:00", TotalPrice: 100},
		{ID: 2, CreatedAt: "2025-10-24 10:00", TotalPrice: 101},
	}
	got := ComputePeriodSummary(orders)
	if got.TotalRevenue != 201 || got.TotalOrders != 2 {
		t.Fatalf("totals = (%d, %d), want (201, 2)", got.TotalRevenue, got.TotalOrders)
	}
	if got.AverageOrderValue != 101 {
		t.Errorf("AverageOrderValue = %d, want 101", got.AverageOrderValue)
	}
}

func TestComputePeriodSummaryIdempotent(t *testing.T) {
	orders := []OrderRecord{
		{ID: 1, CreatedAt: "2025-10-24 09:00", TotalPrice: 100},
		{ID: 2, CreatedAt: "2025-10-25 10:00", TotalPrice: 250},
		{ID: 3, CreatedAt: "2025-10-23 10:00", TotalPrice: 330},
	}
	first := ComputePeriodSummary(orders)
	second := ComputePeriodSummary(orders)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}

// Unparseable timestamps drop out of the daily breakdown but stay in the
// period totals, and the skipped count is surfaced.
func TestComputePeriodSummarySkipsMalformedTimestamps(t *testing.T) {
	orders := []OrderRecord{
		{ID: 1, CreatedAt: "2025-10-24 09:00", TotalPrice: 1000},
		{ID: 2, CreatedAt: "yesterday-ish", TotalPrice: 500},
		{ID: 3, CreatedAt: "2025-10-24 10:00", TotalPrice: 2000},
	}
	got := ComputePeriodSummary(orders)

	if got.TotalRevenue != 3500 {
		t.Errorf("TotalRevenue = %d, want 3500 (malformed record still counted)", got.TotalRevenue)
	}
	if got.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", got.TotalOrders)
	}
	if got.SkippedRecords != 1 {
		t.Errorf("SkippedRecords = %d, want 1", got.SkippedRecords)
	}
	wantBreakdown := []DailyAggregate{{Date: "2025-10-24", OrderCount: 2, Revenue: 3000}}
	if !reflect.DeepEqual(got.DailyBreakdown, wantBreakdown) {
		t.Errorf("DailyBreakdown = %+v, want %+v", got.DailyBreakdown, wantBreakdown)
	}
}
