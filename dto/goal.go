package dto

import (
	"main/model"
	"time"
)

type GoalResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Timeframe   string             `json:"timeframe,omitempty"`
	Priority    model.Priority     `json:"priority"`
	Status      model.GoalStatus   `json:"status"`
	Progress    int                `json:"progress"`
	LinkedGoals []model.LinkedGoal `json:"linked_goals,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func ToGoalResponse(goal *model.Goal) GoalResponse {
	return GoalResponse{
		ID:          goal.GoalID,
		Title:       goal.Title,
		Description: goal.Description,
		Timeframe:   goal.Timeframe,
		Priority:    goal.Priority,
		Status:      goal.Status,
		Progress:    goal.Progress,
		LinkedGoals: goal.LinkedGoals,
		Tags:        goal.Tags,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func ToGoalResponses(goals []*model.Goal) []GoalResponse {
	responses := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, ToGoalResponse(goal))
	}
	return responses
}
