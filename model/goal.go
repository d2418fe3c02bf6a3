package model

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

type LinkedGoalType string

const (
	LinkMilestone LinkedGoalType = "milestone"
	LinkSubgoal   LinkedGoalType = "subgoal"
)

type LinkedGoal struct {
	LinkID   string         `bson:"id" json:"id"`
	Title    string         `bson:"title" json:"title"`
	Progress int            `bson:"progress" json:"progress"`
	Type     LinkedGoalType `bson:"type" json:"type"`
	Status   GoalStatus     `bson:"status" json:"status"`
}

type Goal struct {
	GoalID      string       `bson:"_id,omitempty" json:"id"`
	UserID      string       `bson:"user_id" json:"user_id"`
	Title       string       `bson:"title" json:"title" binding:"required"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Timeframe   string       `bson:"timeframe,omitempty" json:"timeframe,omitempty"`
	Priority    Priority     `bson:"priority" json:"priority"`
	Status      GoalStatus   `bson:"status" json:"status"`
	Progress    int          `bson:"progress" json:"progress"`
	LinkedGoals []LinkedGoal `bson:"linked_goals,omitempty" json:"linked_goals,omitempty"`
	Tags        []string     `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}
