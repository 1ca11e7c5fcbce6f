package analytics

import "fmt"

const minutesPerDay = 1440

// Status texts returned to clients. The calculator never produces anything
// outside this set plus the countdown variants below.
const (
	StatusTextOpen       = "Open"
	StatusTextClosed     = "Closed"
	StatusTextNoSchedule = "No schedule information"
)

// BusinessStatus is the derived open/closed state of a store. It is
// recomputed on demand and never cached or mutated.
type BusinessStatus struct {
	IsOpen          bool   `json:"is_open"`
	StatusText      string `json:"status_text"`
	OpenTimeOfDay   int    `json:"open_time_of_day"`
	CloseTimeOfDay  int    `json:"close_time_of_day"`
	HasSchedule     bool   `json:"has_schedule"`
	MinutesToOpen   int    `json:"minutes_to_open,omitempty"`
}

// ComputeBusinessStatus derives a BusinessStatus from the current
// minute-of-day and a store's configured open/close minutes. Comparison is
// inclusive at both ends. When close < open the store is treated as operating
// overnight (open through midnight into the next day), so the open interval
// wraps around. The function is total over its integer domain; callers supply
// values already clamped to 0-1439.
func ComputeBusinessStatus(nowMinuteOfDay, openMinuteOfDay, closeMinuteOfDay int) BusinessStatus {
	status := BusinessStatus{
		OpenTimeOfDay:  openMinuteOfDay,
		CloseTimeOfDay: closeMinuteOfDay,
		HasSchedule:    true,
	}

	overnight := closeMinuteOfDay < openMinuteOfDay
	if overnight {
		status.IsOpen = nowMinuteOfDay >= openMinuteOfDay || nowMinuteOfDay <= closeMinuteOfDay
	} else {
		status.IsOpen = nowMinuteOfDay >= openMinuteOfDay && nowMinuteOfDay <= closeMinuteOfDay
	}

	if status.IsOpen {
		status.StatusText = StatusTextOpen
		return status
	}

	// Closed. Before opening we show a countdown; after closing, plain text.
	// For overnight hours every closed minute is "before opening", measured
	// modulo the day length.
	delta := (openMinuteOfDay - nowMinuteOfDay + minutesPerDay) % minutesPerDay
	if !overnight && nowMinuteOfDay > closeMinuteOfDay {
		status.StatusText = StatusTextClosed
		return status
	}
	status.MinutesToOpen = delta
	status.StatusText = formatCountdown(delta)
	return status
}

// ComputeBusinessStatusForStore handles stores whose operating hours were
// never configured: nil open or close yields the sentinel no-schedule status
// instead of an error.
func ComputeBusinessStatusForStore(nowMinuteOfDay int, openMinuteOfDay, closeMinuteOfDay *int) BusinessStatus {
	if openMinuteOfDay == nil || closeMinuteOfDay == nil {
		return BusinessStatus{IsOpen: false, StatusText: StatusTextNoSchedule}
	}
	return ComputeBusinessStatus(nowMinuteOfDay, *openMinuteOfDay, *closeMinuteOfDay)
}

func formatCountdown(deltaMinutes int) string {
	if deltaMinutes >= 60 {
		return fmt.Sprintf("Opens in %dh %dm", deltaMinutes/60, deltaMinutes%60)
	}
	return fmt.Sprintf("Opens in %dm", deltaMinutes)
}
