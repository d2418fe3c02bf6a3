package usecase

import (
	"context"
	"errors"
	"fmt"
	"main/model"
	"main/repository"
	"main/services"
	"time"

	"github.com/google/uuid"
)

type HabitsService struct {
	repo    *repository.HabitsRepo
	rewards *RewardsService
	cache   *services.ProgressCache
}

func NewHabitsService(repo *repository.HabitsRepo, rewards *RewardsService, cache *services.ProgressCache) *HabitsService {
	return &HabitsService{repo: repo, rewards: rewards, cache: cache}
}

// HitResult pairs the habit state after a hit change with the reward the
// change earned, if any.
type HitResult struct {
	Habit  *model.Habit  `json:"habit"`
	Reward *RewardResult `json:"reward,omitempty"`
}

// Create Habit
func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.UserID == "" {
		return errors.New("user ID is required")
	}
	if habit.Title == "" {
		return errors.New("habit title is required")
	}

	validatedTags, err := validateTags(habit.Tags)
	if err != nil {
		return err
	}
	habit.Tags = validatedTags

	if habit.Difficulty == "" {
		habit.Difficulty = model.DifficultyMedium
	}
	if err := validateDifficulty(habit.Difficulty); err != nil {
		return err
	}

	if habit.MaxHits <= 0 {
		habit.MaxHits = model.DefaultMaxHits
	}
	if len(habit.HitLevels) == 0 {
		habit.HitLevels = model.DefaultHitLevels()
	}
	if len(habit.HitLevels) != habit.MaxHits {
		return fmt.Errorf("expected %d hit levels, got %d", habit.MaxHits, len(habit.HitLevels))
	}

	if habit.HabitID == "" {
		habit.HabitID = uuid.New().String()
	}
	habit.Status = model.HabitActive
	habit.CurrentHits = 0

	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now

	if err := svc.repo.CreateHabit(ctx, habit); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, habit.UserID)
	return nil
}

// Get the user's habits
func (svc *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return svc.repo.GetUserHabits(ctx, userID)
}

// Get a single habit
func (svc *HabitsService) GetHabit(ctx context.Context, userID, habitID string) (*model.Habit, error) {
	return svc.repo.GetHabitByID(ctx, userID, habitID)
}

// Update Habit
func (svc *HabitsService) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) (*model.Habit, error) {
	existing, err := svc.repo.GetHabitByID(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Difficulty != "" {
		if err := validateDifficulty(updates.Difficulty); err != nil {
			return nil, err
		}
		existing.Difficulty = updates.Difficulty
	}
	if updates.Tags != nil {
		validatedTags, err := validateTags(updates.Tags)
		if err != nil {
			return nil, err
		}
		existing.Tags = validatedTags
	}
	if updates.MaxHits > 0 && updates.MaxHits != existing.MaxHits {
		if len(updates.HitLevels) != updates.MaxHits {
			return nil, fmt.Errorf("expected %d hit levels, got %d", updates.MaxHits, len(updates.HitLevels))
		}
		existing.MaxHits = updates.MaxHits
		existing.HitLevels = updates.HitLevels
	} else if updates.HitLevels != nil {
		if len(updates.HitLevels) != existing.MaxHits {
			return nil, fmt.Errorf("expected %d hit levels, got %d", existing.MaxHits, len(updates.HitLevels))
		}
		existing.HitLevels = updates.HitLevels
	}
	if updates.Status != "" {
		switch updates.Status {
		case model.HabitActive, model.HabitArchived:
			existing.Status = updates.Status
		default:
			return nil, fmt.Errorf("invalid status transition to %q", updates.Status)
		}
	}

	if err := svc.repo.UpdateHabit(ctx, habitID, userID, existing); err != nil {
		return nil, err
	}
	svc.cache.Invalidate(ctx, userID)
	return existing, nil
}

// IncrementHit raises a habit's hit level by one and awards the matching
// coins. The hit and the hit-history record are applied first; the reward
// follows, so a reward failure never leaves a phantom hit.
func (svc *HabitsService) IncrementHit(ctx context.Context, habitID, userID string) (*HitResult, error) {
	habit, err := svc.repo.IncrementHit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	svc.cache.Invalidate(ctx, userID)

	reward, err := svc.rewards.Award(ctx, userID, model.RewardHabit, habitID, string(habit.Difficulty))
	if err != nil {
		return nil, err
	}
	return &HitResult{Habit: habit, Reward: reward}, nil
}

// DecrementHit lowers a habit's hit level by one. Corrections earn nothing.
func (svc *HabitsService) DecrementHit(ctx context.Context, habitID, userID string) (*HitResult, error) {
	habit, err := svc.repo.DecrementHit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	svc.cache.Invalidate(ctx, userID)
	return &HitResult{Habit: habit}, nil
}

// SnoozeHabit deactivates a habit until a future date
func (svc *HabitsService) SnoozeHabit(ctx context.Context, habitID, userID string, until time.Time, reason string) error {
	if !until.After(time.Now()) {
		return errors.New("snooze date must be in the future")
	}
	if err := svc.repo.SnoozeHabit(ctx, habitID, userID, until, reason); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// ResumeHabit reactivates a snoozed habit
func (svc *HabitsService) ResumeHabit(ctx context.Context, habitID, userID string) error {
	if err := svc.repo.ResumeHabit(ctx, habitID, userID); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// DeleteHabit removes a habit together with its completion history
func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID, userID string) error {
	if err := svc.repo.DeleteHabit(ctx, habitID, userID); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// GetCompletions returns a habit's hit history
func (svc *HabitsService) GetCompletions(ctx context.Context, habitID, userID string) ([]*model.HabitCompletion, error) {
	if _, err := svc.repo.GetHabitByID(ctx, userID, habitID); err != nil {
		return nil, err
	}
	return svc.repo.GetCompletions(ctx, habitID, userID)
}
