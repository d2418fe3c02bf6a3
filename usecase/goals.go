package usecase

import (
	"context"
	"errors"
	"fmt"
	"main/model"
	"main/repository"
	"time"

	"github.com/google/uuid"
)

type GoalsService struct {
	repo *repository.GoalsRepo
}

func NewGoalsService(repo *repository.GoalsRepo) *GoalsService {
	return &GoalsService{repo: repo}
}

// Create Goal
func (svc *GoalsService) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if goal.UserID == "" {
		return errors.New("user ID is required")
	}
	if goal.Title == "" {
		return errors.New("goal title is required")
	}

	validatedTags, err := validateTags(goal.Tags)
	if err != nil {
		return err
	}
	goal.Tags = validatedTags

	if goal.Priority == "" {
		goal.Priority = model.PriorityMedium
	}
	if err := validatePriority(goal.Priority); err != nil {
		return err
	}

	for i := range goal.LinkedGoals {
		if goal.LinkedGoals[i].LinkID == "" {
			goal.LinkedGoals[i].LinkID = uuid.New().String()
		}
		if goal.LinkedGoals[i].Status == "" {
			goal.LinkedGoals[i].Status = model.GoalActive
		}
	}

	if goal.GoalID == "" {
		goal.GoalID = uuid.New().String()
	}
	goal.Status = model.GoalActive
	goal.Progress = 0

	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	return svc.repo.CreateGoal(ctx, goal)
}

// Get the user's goals
func (svc *GoalsService) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return svc.repo.GetUserGoals(ctx, userID)
}

// Get a single goal
func (svc *GoalsService) GetGoal(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	return svc.repo.GetGoalByID(ctx, userID, goalID)
}

// Update Goal
func (svc *GoalsService) UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) (*model.Goal, error) {
	existing, err := svc.repo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Timeframe != "" {
		existing.Timeframe = updates.Timeframe
	}
	if updates.Priority != "" {
		if err := validatePriority(updates.Priority); err != nil {
			return nil, err
		}
		existing.Priority = updates.Priority
	}
	if updates.Status != "" {
		switch updates.Status {
		case model.GoalActive, model.GoalCompleted, model.GoalPaused:
			existing.Status = updates.Status
		default:
			return nil, fmt.Errorf("invalid status %q", updates.Status)
		}
	}
	if updates.Tags != nil {
		validatedTags, err := validateTags(updates.Tags)
		if err != nil {
			return nil, err
		}
		existing.Tags = validatedTags
	}
	if updates.LinkedGoals != nil {
		for i := range updates.LinkedGoals {
			if updates.LinkedGoals[i].LinkID == "" {
				updates.LinkedGoals[i].LinkID = uuid.New().String()
			}
		}
		existing.LinkedGoals = updates.LinkedGoals
	}

	if err := svc.repo.UpdateGoal(ctx, goalID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetProgress writes a goal's progress percentage; reaching 100 completes
// the goal.
func (svc *GoalsService) SetProgress(ctx context.Context, goalID, userID string, progress int) error {
	if progress < 0 || progress > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	return svc.repo.SetProgress(ctx, goalID, userID, progress)
}

// Delete Goal
func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	return svc.repo.DeleteGoal(ctx, goalID, userID)
}
