package model

import "time"

type TodoStatus string

const (
	TodoActive    TodoStatus = "active"
	TodoCompleted TodoStatus = "completed"
)

type Todo struct {
	TodoID       string          `bson:"_id,omitempty" json:"id"`
	UserID       string          `bson:"user_id" json:"user_id"`
	Title        string          `bson:"title" json:"title" binding:"required"`
	Description  string          `bson:"description,omitempty" json:"description,omitempty"`
	Priority     Priority        `bson:"priority" json:"priority"`
	DueDate      time.Time       `bson:"due_date,omitempty" json:"due_date,omitempty"`
	TimeEstimate string          `bson:"time_estimate,omitempty" json:"time_estimate,omitempty"`
	Tags         []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	Checklist    []ChecklistItem `bson:"checklist,omitempty" json:"checklist,omitempty"`
	Status       TodoStatus      `bson:"status" json:"status"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updated_at"`
}
