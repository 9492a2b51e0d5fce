package tui

import (
	"testing"
	"time"
)

func TestAlignedDelay(t *testing.T) {
	base := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		now  time.Time
		res  time.Duration
		want time.Duration
	}{
		{"mid-second", base.Add(250 * time.Millisecond), time.Second, 750 * time.Millisecond},
		{"on the boundary", base, time.Second, time.Second},
		{"mid-minute", base.Add(30 * time.Second), time.Minute, 30 * time.Second},
		{"just before the minute", base.Add(59*time.Second + 999*time.Millisecond), time.Minute, time.Millisecond},
	}
	for _, c := range cases {
		if got := alignedDelay(c.now, c.res); got != c.want {
			t.Errorf("%s: alignedDelay = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAlignedDelayNeverZero(t *testing.T) {
	// A zero delay would re-fire the same boundary instead of the next.
	now := time.Date(2026, 3, 3, 10, 0, 5, 0, time.UTC)
	if got := alignedDelay(now, time.Second); got <= 0 || got > time.Second {
		t.Fatalf("delay %v out of (0, 1s]", got)
	}
	if got := alignedDelay(now, time.Minute); got <= 0 || got > time.Minute {
		t.Fatalf("delay %v out of (0, 1m]", got)
	}
}
