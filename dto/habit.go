package dto

import (
	"main/model"
	"time"
)

type HabitResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Difficulty    model.Difficulty  `json:"difficulty"`
	MaxHits       int               `json:"max_hits"`
	CurrentHits   int               `json:"current_hits"`
	TotalHits     int               `json:"total_hits"`
	CurrentStreak int               `json:"current_streak"`
	BestStreak    int               `json:"best_streak"`
	Status        model.HabitStatus `json:"status"`
	HitLevels     []model.HitLevel  `json:"hit_levels"`
	Tags          []string          `json:"tags,omitempty"`
	SnoozeUntil   *time.Time        `json:"snooze_until,omitempty"`
	SnoozeReason  string            `json:"snooze_reason,omitempty"`
	LastCompleted *time.Time        `json:"last_completed,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	// CurrentLevel is the hit-level title matching current_hits, empty at
	// zero hits.
	CurrentLevel string `json:"current_level,omitempty"`
}

func ToHabitResponse(habit *model.Habit) HabitResponse {
	response := HabitResponse{
		ID:            habit.HabitID,
		Title:         habit.Title,
		Description:   habit.Description,
		Difficulty:    habit.Difficulty,
		MaxHits:       habit.MaxHits,
		CurrentHits:   habit.CurrentHits,
		TotalHits:     habit.TotalHits,
		CurrentStreak: habit.CurrentStreak,
		BestStreak:    habit.BestStreak,
		Status:        habit.Status,
		HitLevels:     habit.HitLevels,
		Tags:          habit.Tags,
		SnoozeReason:  habit.SnoozeReason,
		CreatedAt:     habit.CreatedAt,
		UpdatedAt:     habit.UpdatedAt,
	}

	if !habit.SnoozeUntil.IsZero() {
		response.SnoozeUntil = &habit.SnoozeUntil
	}
	if !habit.LastCompleted.IsZero() {
		response.LastCompleted = &habit.LastCompleted
	}

	for _, level := range habit.HitLevels {
		if level.Hits == habit.CurrentHits {
			response.CurrentLevel = level.Title
			break
		}
	}
	return response
}

func ToHabitResponses(habits []*model.Habit) []HabitResponse {
	responses := make([]HabitResponse, 0, len(habits))
	for _, habit := range habits {
		responses = append(responses, ToHabitResponse(habit))
	}
	return responses
}
