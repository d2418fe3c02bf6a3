package dto

import (
	"main/model"
	"time"
)

type CoinBalanceResponse struct {
	UserID           string `json:"user_id"`
	TotalCoins       int    `json:"total_coins"`
	Level            int    `json:"level"`
	CoinsToNextLevel int    `json:"coins_to_next_level"`
	// LevelProgress is how far into the current level the user is, 0-100.
	LevelProgress float64 `json:"level_progress"`
}

func ToCoinBalanceResponse(coins *model.UserCoins) CoinBalanceResponse {
	earned := coins.TotalCoins % model.CoinsPerLevel
	return CoinBalanceResponse{
		UserID:           coins.UserID,
		TotalCoins:       coins.TotalCoins,
		Level:            coins.Level,
		CoinsToNextLevel: coins.CoinsToNextLevel,
		LevelProgress:    float64(earned) / float64(model.CoinsPerLevel) * 100,
	}
}

type CoinTransactionResponse struct {
	ID          string           `json:"id"`
	Amount      int              `json:"amount"`
	Type        model.RewardType `json:"type"`
	ReferenceID string           `json:"reference_id"`
	Difficulty  model.Difficulty `json:"difficulty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func ToCoinTransactionResponses(transactions []*model.CoinTransaction) []CoinTransactionResponse {
	responses := make([]CoinTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, CoinTransactionResponse{
			ID:          tx.TransactionID,
			Amount:      tx.Amount,
			Type:        tx.Type,
			ReferenceID: tx.ReferenceID,
			Difficulty:  tx.Difficulty,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return responses
}
