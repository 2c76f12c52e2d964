package domain

import (
	"testing"
	"time"
)

func TestInterval_Advance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval Interval
		want     time.Time
	}{
		{"daily adds one day", IntervalDaily, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"weekly adds seven days", IntervalWeekly, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		// Monthly is a fixed 30 days, not a calendar month.
		{"monthly adds thirty days", IntervalMonthly, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.interval.Advance(start)
			if !got.Equal(tt.want) {
				t.Errorf("Advance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterval_Advance_Unknown(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Interval("yearly").Advance(start); !got.Equal(start) {
		t.Errorf("unknown interval should leave time unchanged, got %v", got)
	}
}

func TestParseInterval(t *testing.T) {
	got, err := ParseInterval("Weekly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != IntervalWeekly {
		t.Errorf("ParseInterval = %q", got)
	}

	if _, err := ParseInterval("fortnightly"); err == nil {
		t.Error("expected error for unknown interval")
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"Manager", RoleManager, false},
		{"expert", RoleExpert, false},
		{"USER", RoleUser, false},
		{"system", RoleSystem, false},
		{"Admin", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
