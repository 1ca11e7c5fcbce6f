package analytics

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		hour, minute, want int
	}{
		{0, 0, 0},
		{9, 0, 540},
		{21, 0, 1260},
		{23, 59, 1439},
	}
	for _, tc := range cases {
		if got := ToMinutes(tc.hour, tc.minute); got != tc.want {
			t.Errorf("ToMinutes(%d, %d) = %d, want %d", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1260, "21:00"},
		{1439, "23:59"},
		{65, "01:05"},
	}
	for _, tc := range cases {
		if got := FormatTimeOfDay(tc.minutes); got != tc.want {
			t.Errorf("FormatTimeOfDay(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestParseDateKey(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"with time", "2025-10-24 09:00", "2025-10-24", false},
		{"with seconds", "2025-10-24 09:00:31", "2025-10-24", false},
		{"date only", "2025-10-24", "2025-10-24", false},
		{"empty", "", "", true},
		{"garbage", "not a date", "", true},
		{"short prefix", "2025-10 09:00", "", true},
		{"letters in date", "2025-AB-24 09:00", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateKey(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDateKey(%q) = %q, want error", tc.input, got)
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("ParseDateKey(%q) error type = %T, want *ParseError", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateKey(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseDateKey(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
