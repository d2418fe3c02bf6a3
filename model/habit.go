package model

import "time"

type HabitStatus string

const (
	HabitActive   HabitStatus = "active"
	HabitSnoozed  HabitStatus = "snoozed"
	HabitArchived HabitStatus = "archived"
)

// DefaultMaxHits is the number of hit levels a habit carries unless overridden.
const DefaultMaxHits = 4

type HitLevel struct {
	Hits       int    `bson:"hits" json:"hits"`
	Title      string `bson:"title" json:"title"`
	Difficulty string `bson:"difficulty" json:"difficulty"`
}

type Habit struct {
	HabitID       string      `bson:"_id,omitempty" json:"id"`
	UserID        string      `bson:"user_id" json:"user_id"`
	Title         string      `bson:"title" json:"title" binding:"required"`
	Description   string      `bson:"description,omitempty" json:"description,omitempty"`
	Difficulty    Difficulty  `bson:"difficulty" json:"difficulty"`
	MaxHits       int         `bson:"max_hits" json:"max_hits"`
	CurrentHits   int         `bson:"current_hits" json:"current_hits"`
	TotalHits     int         `bson:"total_hits" json:"total_hits"`
	CurrentStreak int         `bson:"current_streak" json:"current_streak"`
	BestStreak    int         `bson:"best_streak" json:"best_streak"`
	Status        HabitStatus `bson:"status" json:"status"`
	HitLevels     []HitLevel  `bson:"hit_levels" json:"hit_levels"`
	Tags          []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	SnoozeUntil   time.Time   `bson:"snooze_until,omitempty" json:"snooze_until,omitempty"`
	SnoozeReason  string      `bson:"snooze_reason,omitempty" json:"snooze_reason,omitempty"`
	LastCompleted time.Time   `bson:"last_completed,omitempty" json:"last_completed,omitempty"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}

// DefaultHitLevels returns the standard four-step ladder applied to new habits.
func DefaultHitLevels() []HitLevel {
	return []HitLevel{
		{Hits: 1, Title: "Show up", Difficulty: "Show Up"},
		{Hits: 2, Title: "30 minutes", Difficulty: "Easy"},
		{Hits: 3, Title: "1 hour", Difficulty: "Medium"},
		{Hits: 4, Title: "2 hours", Difficulty: "Hard"},
	}
}

type HabitAction string

const (
	HitIncrement HabitAction = "increment"
	HitDecrement HabitAction = "decrement"
)

// HabitCompletion is one entry of a habit's hit history. Records are
// append-only and removed only when the owning habit is deleted.
type HabitCompletion struct {
	CompletionID string      `bson:"_id,omitempty" json:"id"`
	UserID       string      `bson:"user_id" json:"user_id"`
	HabitID      string      `bson:"habit_id" json:"habit_id"`
	HitLevel     int         `bson:"hit_level" json:"hit_level"`
	Action       HabitAction `bson:"action" json:"action"`
	CompletedAt  time.Time   `bson:"completed_at" json:"completed_at"`
}
