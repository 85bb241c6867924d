package cooldown

import (
	"testing"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

func TestCheck(t *testing.T) {
	last := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		last     time.Time
		now      time.Time
		cooldown time.Duration
		unit     Unit
		allowed  bool
		wait     int64
	}{
		{"never used", time.Time{}, last, time.Hour, Minutes, true, 0},
		{"inside window rounds seconds up", last, last.Add(3500 * time.Millisecond), 10 * time.Second, Seconds, false, 7},
		{"exactly at boundary", last, last.Add(10 * time.Second), 10 * time.Second, Seconds, true, 0},
		{"minutes round up", last, last.Add(30*time.Minute + time.Second), time.Hour, Minutes, false, 30},
		{"hours round up", last, last.Add(time.Hour), 24 * time.Hour, Hours, false, 23},
		{"clock moved backwards", last, last.Add(-time.Minute), 10 * time.Second, Seconds, false, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Check(tt.last, tt.now, tt.cooldown, tt.unit)
			if d.Allowed != tt.allowed {
				t.Fatalf("Check() allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if d.Wait != tt.wait {
				t.Errorf("Check() wait = %d, want %d", d.Wait, tt.wait)
			}
		})
	}
}

func TestScaled(t *testing.T) {
	if got := Scaled(10*time.Second, 0); got != 10*time.Second {
		t.Errorf("Scaled(10s, 0) = %v", got)
	}
	if got := Scaled(10*time.Second, 3); got != 2500*time.Millisecond {
		t.Errorf("Scaled(10s, 3) = %v", got)
	}
}

func TestRule_Admit(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	a := account.New(catalog.Default(), now)
	a.Prestige = 1

	scaled := Rule{Activity: account.ActivityFish, Base: 10 * time.Second, Unit: Seconds, PrestigeScaled: true}
	if d := scaled.Admit(a, now); !d.Allowed {
		t.Fatal("first use rejected")
	}
	if !a.LastAction[account.ActivityFish].Equal(now) {
		t.Error("accepted use was not stamped")
	}
	if d := scaled.Admit(a, now.Add(4*time.Second)); d.Allowed || d.String() != "1 second" {
		t.Errorf("second use inside 5s window = %+v (%s)", d, d)
	}
	if !a.LastAction[account.ActivityFish].Equal(now) {
		t.Error("rejected use moved the stamp")
	}
	if d := scaled.Admit(a, now.Add(5*time.Second)); !d.Allowed {
		t.Error("use after prestige-scaled window rejected")
	}

	fixed := Rule{Activity: account.ActivityWork, Base: time.Hour, Unit: Minutes}
	if got := fixed.Effective(4); got != time.Hour {
		t.Errorf("fixed rule scaled by prestige: %v", got)
	}
}
