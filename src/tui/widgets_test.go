package tui

import (
	"strings"
	"testing"
	"time"

	"nightwatch/src/stats"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{100, "100.0%"},
		{97.5, "97.5%"},
		{0, "0.0%"},
	}

	for _, tt := range tests {
		if got := formatRate(tt.rate); got != tt.want {
			t.Errorf("formatRate(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestRateColor(t *testing.T) {
	styles := DefaultStyles()

	if got := rateColor(95, styles); got != styles.SuccessGreen {
		t.Errorf("rateColor(95) = %v, want green", got)
	}
	if got := rateColor(80, styles); got != styles.WarnYellow {
		t.Errorf("rateColor(80) = %v, want yellow", got)
	}
	if got := rateColor(50, styles); got != styles.FailureRed {
		t.Errorf("rateColor(50) = %v, want red", got)
	}
}

func TestRenderLastIncident(t *testing.T) {
	styles := DefaultStyles()

	clean := renderLastIncident(stats.Statistics{}, styles)
	if !strings.Contains(clean, "No incidents") {
		t.Errorf("clean statistics render = %q, want no-incident message", clean)
	}

	ts := time.Date(2026, 8, 21, 3, 12, 0, 0, time.UTC)
	withIncident := renderLastIncident(stats.Statistics{LastIncident: &ts}, styles)
	if !strings.Contains(withIncident, "Aug 21 2026") {
		t.Errorf("incident render = %q, want formatted date", withIncident)
	}
}

func TestRenderStatCards_ContainsValues(t *testing.T) {
	st := stats.Statistics{
		DaysWithoutIncident: 12,
		CurrentStreak:       34,
		SuccessRate:         96,
		TotalBuilds:         128,
	}

	out := renderStatCards(st, DefaultStyles(), 100)

	for _, want := range []string{"12", "34", "96.0%", "128"} {
		if !strings.Contains(out, want) {
			t.Errorf("stat cards missing %q", want)
		}
	}
}
