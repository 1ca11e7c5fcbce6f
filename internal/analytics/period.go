package analytics

import (
	"math"
	"sort"
)

// OrderRecord is one placed order as reported by the order store. The
// aggregator reads it and never mutates it.
type OrderRecord struct {
	ID         int64  `json:"id"`
	CreatedAt  string `json:"created_at"` // YYYY-MM-DD HH:MM[:SS]
	TotalPrice int64  `json:"total_price"`
	Quantity   int    `json:"quantity"`
	MenuID     int64  `json:"menu_id"`
	MenuTitle  string `json:"menu_title"`
	StoreID    int64  `json:"store_id"`
}

// DailyAggregate is the per-calendar-day rollup inside a PeriodSummary.
type DailyAggregate struct {
	Date       string `json:"date"` // YYYY-MM-DD
	OrderCount int    `json:"order_count"`
	Revenue    int64  `json:"revenue"`
}

// PeriodSummary is the result of aggregating a period's orders. Daily
// breakdown is ascending by date with no duplicate dates; totals cover every
// input record, including ones whose timestamp could not be grouped by day
// (those are counted in SkippedRecords).
type PeriodSummary struct {
	TotalRevenue      int64            `json:"total_revenue"`
	TotalOrders       int              `json:"total_orders"`
	AverageOrderValue int64            `json:"average_order_value"`
	DailyBreakdown    []DailyAggregate `json:"daily_breakdown"`
	SkippedRecords    int              `json:"skipped_records,omitempty"`
}

// ComputePeriodSummary turns a flat list of orders into a PeriodSummary.
// The input is expected to be pre-filtered to the requested period; no date
// filtering happens here. Pure and deterministic: the same input always
// yields the same output.
//
// A record whose CreatedAt cannot be split into a date key is excluded from
// the daily breakdown but still counted in the period totals, so partial
// data degrades the day-by-day view without losing revenue.
func ComputePeriodSummary(orders []OrderRecord) PeriodSummary {
	summary := PeriodSummary{DailyBreakdown: []DailyAggregate{}}
	if len(orders) == 0 {
		return summary
	}

	byDate := make(map[string]*DailyAggregate)
	for _, order := range orders {
		summary.TotalRevenue += order.TotalPrice
		summary.TotalOrders++

		dateKey, err := ParseDateKey(order.CreatedAt)
		if err != nil {
			summary.SkippedRecords++
			continue
		}
		day, ok := byDate[dateKey]
		if !ok {
			day = &DailyAggregate{Date: dateKey}
			byDate[dateKey] = day
		}
		day.OrderCount++
		day.Revenue += order.TotalPrice
	}

	summary.AverageOrderValue = roundedAverage(summary.TotalRevenue, summary.TotalOrders)

	for _, day := range byDate {
		summary.DailyBreakdown = append(summary.DailyBreakdown, *day)
	}
	// Lexical order equals chronological order for zero-padded YYYY-MM-DD keys.
	sort.Slice(summary.DailyBreakdown, func(i, j int) bool {
		return summary.DailyBreakdown[i].Date < summary.DailyBreakdown[j].Date
	})
	return summary
}

// roundedAverage rounds half away from zero, so 100.5 becomes 101.
func roundedAverage(total int64, count int) int64 {
	if count == 0 {
		return 0
	}
	return int64(math.Round(float64(total) / float64(count)))
}
