package analytics

import "testing"

// Store open 09:00-21:00 unless a test says otherwise.
const (
	openAtNine    = 540
	closeAtNine   = 1260
	openAtSix     = 1080 // 18:00, used by overnight cases
	closeAtTwoAM  = 120  // 02:00 next day
)

func TestComputeBusinessStatus(t *testing.T) {
	cases := []struct {
		name        string
		now         int
		open, close int
		wantOpen    bool
		wantText    string
	}{
		{"midday while open", 720, openAtNine, closeAtNine, true, StatusTextOpen},
		{"exactly at open", 540, openAtNine, closeAtNine, true, StatusTextOpen},
		{"exactly at close", 1260, openAtNine, closeAtNine, true, StatusTextOpen},
		{"one hour before open", 480, openAtNine, closeAtNine, false, "Opens in 1h 0m"},
		{"ten minutes before open", 530, openAtNine, closeAtNine, false, "Opens in 10m"},
		{"after close", 1320, openAtNine, closeAtNine, false, StatusTextClosed},
		{"overnight, late evening", 1380, openAtSix, closeAtTwoAM, true, StatusTextOpen},
		{"overnight, past midnight", 60, openAtSix, closeAtTwoAM, true, StatusTextOpen},
		{"overnight, at close", 120, openAtSix, closeAtTwoAM, true, StatusTextOpen},
		{"overnight, afternoon gap", 600, openAtSix, closeAtTwoAM, false, "Opens in 8h 0m"},
		{"overnight, just after close", 150, openAtSix, closeAtTwoAM, false, "Opens in 15h 30m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBusinessStatus(tc.now, tc.open, tc.close)
			if got.IsOpen != tc.wantOpen {
				t.Errorf("IsOpen = %v, want %v", got.IsOpen, tc.wantOpen)
			}
			if got.StatusText != tc.wantText {
				t.Errorf("StatusText = %q, want %q", got.StatusText, tc.wantText)
			}
			if !got.HasSchedule {
				t.Error("HasSchedule = false, want true")
			}
			if got.OpenTimeOfDay != tc.open || got.CloseTimeOfDay != tc.close {
				t.Errorf("echoed hours = (%d, %d), want (%d, %d)",
					got.OpenTimeOfDay, got.CloseTimeOfDay, tc.open, tc.close)
			}
		})
	}
}

func TestComputeBusinessStatusCountdownMinutes(t *testing.T) {
	got := ComputeBusinessStatus(480, openAtNine, closeAtNine)
	if got.MinutesToOpen != 60 {
		t.Errorf("MinutesToOpen = %d, want 60", got.MinutesToOpen)
	}
}

func TestComputeBusinessStatusForStore(t *testing.T) {
	open, close := openAtNine, closeAtNine

	got := ComputeBusinessStatusForStore(720, &open, &close)
	if !got.IsOpen || got.StatusText != StatusTextOpen {
		t.Errorf("configured store = %+v, want open", got)
	}

	for _, tc := range []struct {
		name        string
		open, close *int
	}{
		{"no open time", nil, &close},
		{"no close time", &open, nil},
		{"no schedule at all", nil, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBusinessStatusForStore(720, tc.open, tc.close)
			if got.IsOpen {
				t.Error("IsOpen = true, want false for missing schedule")
			}
			if got.StatusText != StatusTextNoSchedule {
				t.Errorf("StatusText = %q, want %q", got.StatusText, StatusTextNoSchedule)
			}
			if got.HasSchedule {
				t.Error("HasSchedule = true, want false")
			}
		})
	}
}
