package model

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type RewardType string

const (
	RewardHabit RewardType = "habit"
	RewardDaily RewardType = "daily"
	RewardTodo  RewardType = "todo"
)

// CoinsPerLevel is the coin span of a single level.
const CoinsPerLevel = 1000

// NormalizeDifficulty maps the priority vocabulary used by dailies and todos
// (low/medium/high) onto the canonical difficulty scale used for reward
// lookups. Values already on the canonical scale pass through unchanged.
func NormalizeDifficulty(value string) (Difficulty, bool) {
	switch value {
	case "low", "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "high", "hard":
		return DifficultyHard, true
	}
	return "", false
}

type UserCoins struct {
	UserID           string    `bson:"_id" json:"user_id"`
	TotalCoins       int       `bson:"total_coins" json:"total_coins"`
	Level            int       `bson:"level" json:"level"`
	CoinsToNextLevel int       `bson:"coins_to_next_level" json:"coins_to_next_level"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// CoinTransaction is an append-only ledger entry. Entries are never updated
// or deleted once written.
type CoinTransaction struct {
	TransactionID string     `bson:"_id,omitempty" json:"id"`
	UserID        string     `bson:"user_id" json:"user_id"`
	Amount        int        `bson:"amount" json:"amount"`
	Type          RewardType `bson:"type" json:"type"`
	ReferenceID   string     `bson:"reference_id" json:"reference_id"`
	Difficulty    Difficulty `bson:"difficulty" json:"difficulty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

// LevelForCoins derives the level reached at a given coin total.
func LevelForCoins(totalCoins int) int {
	return totalCoins/CoinsPerLevel + 1
}

// CoinsToNext derives the remaining coins until the next level boundary.
func CoinsToNext(totalCoins int) int {
	return CoinsPerLevel - totalCoins%CoinsPerLevel
}
