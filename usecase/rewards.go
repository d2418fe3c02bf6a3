package usecase

import (
	"context"
	"fmt"
	"main/model"
	"main/repository"
	"main/utils"
	"time"
)

// rewardTable fixes the coin amount per entity type and canonical
// difficulty.
var rewardTable = map[model.RewardType]map[model.Difficulty]int{
	model.RewardHabit: {
		model.DifficultyEasy:   5,
		model.DifficultyMedium: 10,
		model.DifficultyHard:   15,
	},
	model.RewardDaily: {
		model.DifficultyEasy:   20,
		model.DifficultyMedium: 30,
		model.DifficultyHard:   40,
	},
	model.RewardTodo: {
		model.DifficultyEasy:   10,
		model.DifficultyMedium: 15,
		model.DifficultyHard:   20,
	},
}

// RewardResult reports one applied award, including the before/after level
// so callers can surface a level-up celebration.
type RewardResult struct {
	Amount           int  `json:"amount"`
	TotalCoins       int  `json:"total_coins"`
	Level            int  `json:"level"`
	PreviousLevel    int  `json:"previous_level"`
	LeveledUp        bool `json:"leveled_up"`
	CoinsToNextLevel int  `json:"coins_to_next_level"`
}

// rewardResultFor derives the full result from the post-award total alone.
// The level held before this award is recovered by subtracting the amount,
// so the report stays consistent under concurrent awards even though the
// balance may have moved between them.
func rewardResultFor(amount, totalAfter int) *RewardResult {
	level := model.LevelForCoins(totalAfter)
	previous := model.LevelForCoins(totalAfter - amount)
	return &RewardResult{
		Amount:           amount,
		TotalCoins:       totalAfter,
		Level:            level,
		PreviousLevel:    previous,
		LeveledUp:        level > previous,
		CoinsToNextLevel: model.CoinsToNext(totalAfter),
	}
}

type RewardsService struct {
	repo *repository.CoinsRepo
}

func NewRewardsService(repo *repository.CoinsRepo) *RewardsService {
	return &RewardsService{repo: repo}
}

// RewardAmount resolves the coin amount for an entity type and a raw
// difficulty or priority value. It is a pure lookup independent of any
// prior state.
func RewardAmount(rewardType model.RewardType, rawDifficulty string) (int, model.Difficulty, error) {
	difficulty, ok := model.NormalizeDifficulty(rawDifficulty)
	if !ok {
		return 0, "", fmt.Errorf("unknown difficulty %q", rawDifficulty)
	}
	amounts, ok := rewardTable[rewardType]
	if !ok {
		return 0, "", fmt.Errorf("unknown reward type %q", rewardType)
	}
	return amounts[difficulty], difficulty, nil
}

// Award applies one completion reward: atomically adds the coins (the
// upsert initializes the balance on first award), rederives level fields
// and appends the ledger entry. Concurrent awards for the same user all
// land; none is lost.
func (svc *RewardsService) Award(ctx context.Context, userID string, rewardType model.RewardType, referenceID, rawDifficulty string) (*RewardResult, error) {
	amount, difficulty, err := RewardAmount(rewardType, rawDifficulty)
	if err != nil {
		return nil, err
	}

	after, err := svc.repo.AddCoins(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	tx := &model.CoinTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        rewardType,
		ReferenceID: referenceID,
		Difficulty:  difficulty,
		CreatedAt:   time.Now(),
	}
	if err := svc.repo.InsertTransaction(ctx, tx); err != nil {
		return nil, err
	}

	result := rewardResultFor(amount, after.TotalCoins)

	utils.TrackCoinsAwarded(string(rewardType), amount)
	if result.LeveledUp {
		utils.LevelUpsTotal.Inc()
	}
	return result, nil
}

// GetBalance returns the user's coin record, creating it on first read
func (svc *RewardsService) GetBalance(ctx context.Context, userID string) (*model.UserCoins, error) {
	return svc.repo.GetOrInitUserCoins(ctx, userID)
}

// GetTransactions returns the user's reward history
func (svc *RewardsService) GetTransactions(ctx context.Context, userID string) ([]*model.CoinTransaction, error) {
	return svc.repo.GetTransactions(ctx, userID)
}
