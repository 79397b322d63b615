package schedule

import (
	"testing"
	"time"
)

func TestNextRefresh(t *testing.T) {
	sched := Default()
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before first hour",
			now:  time.Date(2026, 8, 25, 4, 30, 0, 0, loc),
			want: time.Date(2026, 8, 25, 6, 0, 0, 0, loc),
		},
		{
			name: "between hours",
			now:  time.Date(2026, 8, 25, 14, 10, 0, 0, loc),
			want: time.Date(2026, 8, 25, 19, 0, 0, 0, loc),
		},
		{
			name: "exactly on a refresh hour advances to the next",
			now:  time.Date(2026, 8, 25, 13, 0, 0, 0, loc),
			want: time.Date(2026, 8, 25, 19, 0, 0, 0, loc),
		},
		{
			name: "after last hour rolls to tomorrow",
			now:  time.Date(2026, 8, 25, 23, 30, 0, 0, loc),
			want: time.Date(2026, 8, 26, 6, 0, 0, 0, loc),
		},
		{
			name: "month boundary",
			now:  time.Date(2026, 8, 31, 23, 30, 0, 0, loc),
			want: time.Date(2026, 9, 1, 6, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sched.NextRefresh(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextRefresh(%s) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestNextRefresh_AlwaysStrictlyAfterNow(t *testing.T) {
	sched := Default()

	// Chain NextRefresh through a full week; each result must advance
	now := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 28; i++ {
		next := sched.NextRefresh(now)
		if !next.After(now) {
			t.Fatalf("NextRefresh(%s) = %s, not strictly after", now, next)
		}
		now = next
	}
}

func TestNextRefresh_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	now := time.Date(2026, 8, 25, 20, 0, 0, 0, loc)

	got := Default().NextRefresh(now)
	if got.Location() != loc {
		t.Errorf("NextRefresh location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 23 {
		t.Errorf("NextRefresh hour = %d, want 23 in local time", got.Hour())
	}
}

func TestUntil(t *testing.T) {
	sched := Default()
	now := time.Date(2026, 8, 25, 11, 15, 0, 0, time.UTC)

	want := time.Hour + 45*time.Minute
	if got := sched.Until(now); got != want {
		t.Errorf("Until(%s) = %s, want %s", now, got, want)
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"hours and minutes", 3*time.Hour + 24*time.Minute, "3h 24m"},
		{"exact hours", 2 * time.Hour, "2h 0m"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"sub-minute", 30 * time.Second, "0m"},
		{"zero", 0, "0m"},
		{"negative clamps to zero", -5 * time.Minute, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCountdown(tt.d); got != tt.want {
				t.Errorf("FormatCountdown(%s) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
