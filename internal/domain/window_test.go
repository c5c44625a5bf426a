package domain

import (
	"errors"
	"testing"
)

func TestParseWindowStart(t *testing.T) {
	tests := []struct {
		label      string
		wantHour   int
		wantMinute int
	}{
		{"6:00 PM - 9:00 PM", 18, 0},
		{"12:00 AM - 3:00 AM", 0, 0},
		{"12:00 PM - 3:00 PM", 12, 0},
		{"9:00 PM - 12:00 AM", 21, 0},
		{"9:00 AM - 12:00 PM", 9, 0},
		{"3:30 AM - 6:00 AM", 3, 30},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseWindowStart(tt.label)
			if err != nil {
				t.Fatalf("ParseWindowStart(%q) error = %v", tt.label, err)
			}
			if got.Hour != tt.wantHour || got.Minute != tt.wantMinute {
				t.Errorf("ParseWindowStart(%q) = (%d, %d), want (%d, %d)",
					tt.label, got.Hour, got.Minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestParseWindowStartMalformed(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"missing separator", "6:00 PM 9:00 PM"},
		{"empty label", ""},
		{"non-numeric hour", "ab:00 PM - 9:00 PM"},
		{"hour out of range", "13:00 PM - 9:00 PM"},
		{"hour zero", "0:00 AM - 3:00 AM"},
		{"missing meridiem", "6:00 - 9:00 PM"},
		{"bad meridiem", "6:00 XM - 9:00 PM"},
		{"minute out of range", "6:61 PM - 9:00 PM"},
		{"no colon", "600 PM - 9:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWindowStart(tt.label)
			if err == nil {
				t.Fatalf("ParseWindowStart(%q) expected error", tt.label)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestPeakTimeWindowsAllParse(t *testing.T) {
	// Every label in the fixed roster must be schedulable.
	for _, label := range PeakTimeWindows {
		if _, err := ParseWindowStart(label); err != nil {
			t.Errorf("roster label %q does not parse: %v", label, err)
		}
	}
}
