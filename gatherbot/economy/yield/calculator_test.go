package yield

import (
	"testing"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

func TestCalculate(t *testing.T) {
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	coinPet := &account.Pet{Hunger: 50, Boost: catalog.Boost{Type: catalog.BoostCoins, Value: 1.15}}

	tests := []struct {
		name      string
		in        Input
		wantCoins int64
		wantXP    int64
		wantPet   bool
	}{
		{
			name:      "basic rod, no modifiers",
			in:        Input{Value: 30, XP: 12, ToolMultiplier: 1, PrestigeBonus: 1},
			wantCoins: 30,
			wantXP:    12,
		},
		{
			name: "tool and prestige floor once at stage 1",
			// 33 * 1.25 * 1.1 = 45.375
			in:        Input{Value: 33, XP: 11, ToolMultiplier: 1.25, PrestigeBonus: 1.1},
			wantCoins: 45,
			// 11 * 1.25 = 13.75
			wantXP: 13,
		},
		{
			name: "pet boost floors separately",
			// stage1: floor(45.375)=45, stage2: floor(45*1.15=51.75)=51
			in:        Input{Value: 33, XP: 11, ToolMultiplier: 1.25, PrestigeBonus: 1.1, Pet: coinPet},
			wantCoins: 51,
			wantXP:    13,
			wantPet:   true,
		},
		{
			name:      "starving pet gives nothing",
			in:        Input{Value: 100, XP: 10, ToolMultiplier: 1, PrestigeBonus: 1, Pet: &account.Pet{Hunger: 0, Boost: coinPet.Boost}},
			wantCoins: 100,
			wantXP:    10,
		},
		{
			name:      "xp pet does not touch coins",
			in:        Input{Value: 100, XP: 10, ToolMultiplier: 1, PrestigeBonus: 1, Pet: &account.Pet{Hunger: 90, Boost: catalog.Boost{Type: catalog.BoostXP, Value: 2}}},
			wantCoins: 100,
			wantXP:    10,
		},
		{
			name: "effects stack by type",
			// coins: 45 -> pet 51 -> 51*1.5*2 = 153; xp: 13 -> 13*1.5 = 19.5
			in: Input{
				Value: 33, XP: 11, ToolMultiplier: 1.25, PrestigeBonus: 1.1, Pet: coinPet,
				Effects: []account.ActiveEffect{
					{Type: catalog.EffectCoins, Multiplier: 1.5, Expiry: expiry},
					{Type: catalog.EffectXP, Multiplier: 1.5, Expiry: expiry},
					{Type: catalog.EffectCoins, Multiplier: 2, Expiry: expiry},
				},
			},
			wantCoins: 153,
			wantXP:    19,
			wantPet:   true,
		},
		{
			name: "staged flooring differs from a single final floor",
			// a single final floor would give floor(7*1.5*1.5*1.5) = 23
			in: Input{
				Value: 7, XP: 3, ToolMultiplier: 1.5, PrestigeBonus: 1,
				Pet:     &account.Pet{Hunger: 10, Boost: catalog.Boost{Type: catalog.BoostCoins, Value: 1.5}},
				Effects: []account.ActiveEffect{{Type: catalog.EffectCoins, Multiplier: 1.5, Expiry: expiry}},
			},
			// 10 -> pet floor(15)=15 -> effect floor(22.5)=22
			wantCoins: 22,
			wantXP:    4,
			wantPet:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.in)
			if got.Coins != tt.wantCoins {
				t.Errorf("Calculate() coins = %d, want %d", got.Coins, tt.wantCoins)
			}
			if got.XP != tt.wantXP {
				t.Errorf("Calculate() xp = %d, want %d", got.XP, tt.wantXP)
			}
			if got.PetBoosted != tt.wantPet {
				t.Errorf("Calculate() petBoosted = %v, want %v", got.PetBoosted, tt.wantPet)
			}
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Input{Value: 250, XP: 90, ToolMultiplier: 2, PrestigeBonus: 1.3,
		Pet: &account.Pet{Hunger: 1, Boost: catalog.Boost{Type: catalog.BoostCoins, Value: 1.35}}}
	first := Calculate(in)
	for i := 0; i < 100; i++ {
		if got := Calculate(in); got != first {
			t.Fatalf("run %d = %+v, want %+v", i, got, first)
		}
	}
}
