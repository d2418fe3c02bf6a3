package model

import (
	"errors"
	"fmt"
	"time"
)

type TimeBlockType string

const (
	BlockHabit  TimeBlockType = "habit"
	BlockDaily  TimeBlockType = "daily"
	BlockTodo   TimeBlockType = "todo"
	BlockCustom TimeBlockType = "custom"
)

var ErrNegativeTimeSpan = errors.New("end time must not precede start time")

type TimeBlock struct {
	BlockID   string        `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	Title     string        `bson:"title" json:"title" binding:"required"`
	Date      string        `bson:"date" json:"date"`
	StartTime string        `bson:"start_time" json:"start_time"`
	EndTime   string        `bson:"end_time" json:"end_time"`
	Duration  int           `bson:"duration" json:"duration"`
	Type      TimeBlockType `bson:"type" json:"type"`
	// ReferenceID is a soft link to a habit/daily/todo. Deleting the
	// referenced entity does not remove the block.
	ReferenceID string    `bson:"reference_id,omitempty" json:"reference_id,omitempty"`
	Color       string    `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// BlockDuration computes the minute span between two "HH:MM" clock times.
// The span must be non-negative; Duration is always derived from the pair,
// never set independently.
func BlockDuration(startTime, endTime string) (int, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, ErrNegativeTimeSpan
	}
	return end - start, nil
}

func parseClock(value string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", value)
	}
	return hours*60 + minutes, nil
}
