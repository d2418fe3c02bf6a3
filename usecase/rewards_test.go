package usecase

import (
	"main/model"
	"testing"
)

func TestRewardAmount(t *testing.T) {
	tests := []struct {
		name           string
		rewardType     model.RewardType
		difficulty     string
		wantAmount     int
		wantDifficulty model.Difficulty
	}{
		{"easy habit", model.RewardHabit, "easy", 5, model.DifficultyEasy},
		{"medium habit", model.RewardHabit, "medium", 10, model.DifficultyMedium},
		{"hard habit", model.RewardHabit, "hard", 15, model.DifficultyHard},
		{"easy daily", model.RewardDaily, "easy", 20, model.DifficultyEasy},
		{"medium daily", model.RewardDaily, "medium", 30, model.DifficultyMedium},
		{"hard daily", model.RewardDaily, "hard", 40, model.DifficultyHard},
		{"easy todo", model.RewardTodo, "easy", 10, model.DifficultyEasy},
		{"medium todo", model.RewardTodo, "medium", 15, model.DifficultyMedium},
		{"hard todo", model.RewardTodo, "hard", 20, model.DifficultyHard},
		{"low priority daily normalizes to easy", model.RewardDaily, "low", 20, model.DifficultyEasy},
		{"high priority todo normalizes to hard", model.RewardTodo, "high", 20, model.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, difficulty, err := RewardAmount(tt.rewardType, tt.difficulty)
			if err != nil {
				t.Fatalf("RewardAmount(%q, %q) unexpected error: %v", tt.rewardType, tt.difficulty, err)
			}
			if amount != tt.wantAmount {
				t.Errorf("amount = %d, want %d", amount, tt.wantAmount)
			}
			if difficulty != tt.wantDifficulty {
				t.Errorf("difficulty = %q, want %q", difficulty, tt.wantDifficulty)
			}
		})
	}
}

func TestRewardResultFor(t *testing.T) {
	tests := []struct {
		name            string
		amount          int
		totalAfter      int
		wantLevel       int
		wantPrevious    int
		wantLeveledUp   bool
		wantCoinsToNext int
	}{
		{"first award", 10, 10, 1, 1, false, 990},
		{"mid-level award", 30, 450, 1, 1, false, 550},
		{"award crossing a level boundary", 15, 1005, 2, 1, true, 995},
		{"award landing exactly on a boundary", 20, 1000, 2, 1, true, 1000},
		{"boundary already crossed earlier", 40, 1040, 2, 2, false, 960},
		{"deep level crossing", 10, 3005, 4, 3, true, 995},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewardResultFor(tt.amount, tt.totalAfter)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.PreviousLevel != tt.wantPrevious {
				t.Errorf("PreviousLevel = %d, want %d", got.PreviousLevel, tt.wantPrevious)
			}
			if got.LeveledUp != tt.wantLeveledUp {
				t.Errorf("LeveledUp = %v, want %v", got.LeveledUp, tt.wantLeveledUp)
			}
			if got.CoinsToNextLevel != tt.wantCoinsToNext {
				t.Errorf("CoinsToNextLevel = %d, want %d", got.CoinsToNextLevel, tt.wantCoinsToNext)
			}
			if got.TotalCoins != tt.totalAfter {
				t.Errorf("TotalCoins = %d, want %d", got.TotalCoins, tt.totalAfter)
			}
		})
	}
}

func TestRewardAmountRejectsUnknownValues(t *testing.T) {
	if _, _, err := RewardAmount(model.RewardHabit, "impossible"); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
	if _, _, err := RewardAmount(model.RewardType("note"), "medium"); err == nil {
		t.Error("expected an error for an unknown reward type")
	}
}
