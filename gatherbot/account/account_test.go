package account

import (
	"testing"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/snowflake/v2"
)

func TestKey_RoundTrip(t *testing.T) {
	key := NewKey(snowflake.ID(1111), snowflake.ID(2222))
	if got := key.String(); got != "1111:2222" {
		t.Fatalf("String() = %s", got)
	}

	parsed, err := ParseKey(key.String())
	if err != nil {
		t.Fatalf("ParseKey() error = %v", err)
	}
	if parsed != key {
		t.Errorf("ParseKey() = %+v, want %+v", parsed, key)
	}

	for _, bad := range []string{"", "1111", "abc:2222", "1111:xyz"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) expected error", bad)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	cat := catalog.Default()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := New(cat, now)

	if a.Coins != 0 || a.Prestige != 0 || a.PrestigeBonus() != 1 {
		t.Errorf("unexpected economy defaults: coins=%d prestige=%d", a.Coins, a.Prestige)
	}
	for _, d := range catalog.SkillDomains {
		if s := a.Skills[d]; s == nil || s.Level != 1 || s.XP != 0 {
			t.Errorf("skill %s = %+v, want level 1 xp 0", d, s)
		}
	}
	for _, d := range catalog.GatheringDomains {
		starter := cat.StarterTool(d).ID
		if a.EquippedTools[d] != starter {
			t.Errorf("equipped %s = %s, want %s", d, a.EquippedTools[d], starter)
		}
		if !a.OwnsTool(d, starter) {
			t.Errorf("starter %s not owned", starter)
		}
		if a.Inventory[d] == nil {
			t.Errorf("inventory %s not initialised", d)
		}
	}
	if a.EquippedPet() != nil {
		t.Error("new account has an equipped pet")
	}
}

func TestNormalize_DropsDanglingPet(t *testing.T) {
	id := int64(7)
	a := &Account{EquippedPetID: &id}
	a.Normalize(catalog.Default())
	if a.EquippedPetID != nil {
		t.Error("dangling equipped pet id survived Normalize")
	}
}

func TestDeduct_FloorsAtZero(t *testing.T) {
	a := &Account{Coins: 30}
	if got := a.Deduct(50); got != 30 {
		t.Errorf("Deduct() removed %d, want 30", got)
	}
	if a.Coins != 0 {
		t.Errorf("coins = %d, want 0", a.Coins)
	}
}

func TestEffectsAt_PrunesExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	a := &Account{ActiveEffects: []ActiveEffect{
		{Type: catalog.EffectCoins, Multiplier: 2, Expiry: now.Add(-time.Minute)},
		{Type: catalog.EffectXP, Multiplier: 1.5, Expiry: now.Add(time.Minute)},
		{Type: catalog.EffectCoins, Multiplier: 3, Expiry: now},
	}}

	got := a.EffectsAt(now)
	if len(got) != 1 || got[0].Type != catalog.EffectXP {
		t.Fatalf("EffectsAt() = %+v", got)
	}
	if len(a.ActiveEffects) != 1 {
		t.Errorf("expired effects were not dropped from the account")
	}
}
