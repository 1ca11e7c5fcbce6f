package analytics

import (
	"fmt"
	"strings"
)

// ParseError is returned when a timestamp cannot be decomposed into a
// calendar-day key. It is the only error this package produces.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable timestamp: %q", e.Input)
}

// ToMinutes converts an (hour, minute) pair to a minute-of-day integer.
// Inputs come from validated store configuration (0-23 / 0-59).
func ToMinutes(hour, minute int) int {
	return hour*60 + minute
}

// FormatTimeOfDay renders a minute-of-day integer as zero-padded HH:MM.
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDateKey extracts the YYYY-MM-DD portion of a "YYYY-MM-DD HH:MM[:SS]"
// timestamp. The date part is taken up to the first whitespace; a bare
// YYYY-MM-DD string is accepted as-is.
func ParseDateKey(timestamp string) (string, error) {
	datePart := timestamp
	if idx := strings.IndexAny(timestamp, " \t"); idx >= 0 {
		datePart = timestamp[:idx]
	}
	if !isDateKey(datePart) {
		return "", &ParseError{Input: timestamp}
	}
	return datePart, nil
}

// isDateKey reports whether s has the exact shape NNNN-NN-NN.
func isDateKey(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
