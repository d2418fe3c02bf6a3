package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type DailyStatus string

const (
	DailyActive    DailyStatus = "active"
	DailySnoozed   DailyStatus = "snoozed"
	DailyCompleted DailyStatus = "completed"
)

// Weekdays lists the short day labels used by daily schedules.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type ChecklistItem struct {
	ItemID    string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	Completed bool   `bson:"completed" json:"completed"`
}

type Daily struct {
	DailyID      string          `bson:"_id,omitempty" json:"id"`
	UserID       string          `bson:"user_id" json:"user_id"`
	Title        string          `bson:"title" json:"title" binding:"required"`
	Description  string          `bson:"description,omitempty" json:"description,omitempty"`
	Priority     Priority        `bson:"priority" json:"priority"`
	Days         []string        `bson:"days" json:"days"`
	Duration     string          `bson:"duration,omitempty" json:"duration,omitempty"`
	Tags         []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	Note         string          `bson:"note,omitempty" json:"note,omitempty"`
	Checklist    []ChecklistItem `bson:"checklist,omitempty" json:"checklist,omitempty"`
	Status       DailyStatus     `bson:"status" json:"status"`
	SnoozeUntil  time.Time       `bson:"snooze_until,omitempty" json:"snooze_until,omitempty"`
	SnoozeReason string          `bson:"snooze_reason,omitempty" json:"snooze_reason,omitempty"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updated_at"`
}

// IsValidWeekday reports whether label is one of the seven short day labels.
func IsValidWeekday(label string) bool {
	for _, d := range Weekdays {
		if d == label {
			return true
		}
	}
	return false
}
