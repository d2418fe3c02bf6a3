package model

import "testing"

func TestLevelForCoins(t *testing.T) {
	tests := []struct {
		name  string
		coins int
		want  int
	}{
		{"zero coins starts at level one", 0, 1},
		{"just below the boundary", 999, 1},
		{"exact boundary rolls over", 1000, 2},
		{"mid second level", 1500, 2},
		{"several levels in", 5250, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelForCoins(tt.coins); got != tt.want {
				t.Errorf("LevelForCoins(%d) = %d, want %d", tt.coins, got, tt.want)
			}
		})
	}
}

func TestCoinsToNext(t *testing.T) {
	tests := []struct {
		name  string
		coins int
		want  int
	}{
		{"fresh balance", 0, 1000},
		{"one coin earned", 1, 999},
		{"one short of the boundary", 999, 1},
		{"exact boundary resets the span", 1000, 1000},
		{"mid level", 2400, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoinsToNext(tt.coins); got != tt.want {
				t.Errorf("CoinsToNext(%d) = %d, want %d", tt.coins, got, tt.want)
			}
		})
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   Difficulty
		wantOK bool
	}{
		{"low maps to easy", "low", DifficultyEasy, true},
		{"medium is shared by both scales", "medium", DifficultyMedium, true},
		{"high maps to hard", "high", DifficultyHard, true},
		{"easy passes through", "easy", DifficultyEasy, true},
		{"hard passes through", "hard", DifficultyHard, true},
		{"unknown value is rejected", "extreme", "", false},
		{"empty value is rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDifficulty(tt.value)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeDifficulty(%q) = (%q, %v), want (%q, %v)",
					tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
