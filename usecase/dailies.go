package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/services"
	"time"

	"github.com/google/uuid"
)

type DailiesService struct {
	repo    *repository.DailiesRepo
	rewards *RewardsService
	cache   *services.ProgressCache
}

func NewDailiesService(repo *repository.DailiesRepo, rewards *RewardsService, cache *services.ProgressCache) *DailiesService {
	return &DailiesService{repo: repo, rewards: rewards, cache: cache}
}

// CompletionResult pairs the completed daily with the reward it earned.
type CompletionResult struct {
	Daily  *model.Daily  `json:"daily"`
	Reward *RewardResult `json:"reward,omitempty"`
}

// Create Daily
func (svc *DailiesService) CreateDaily(ctx context.Context, daily *model.Daily) error {
	if daily.UserID == "" {
		return errors.New("user ID is required")
	}
	if daily.Title == "" {
		return errors.New("daily title is required")
	}

	validatedTags, err := validateTags(daily.Tags)
	if err != nil {
		return err
	}
	daily.Tags = validatedTags

	if daily.Priority == "" {
		daily.Priority = model.PriorityMedium
	}
	if err := validatePriority(daily.Priority); err != nil {
		return err
	}

	if len(daily.Days) == 0 {
		daily.Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	}
	if err := validateDays(daily.Days); err != nil {
		return err
	}

	for i := range daily.Checklist {
		if daily.Checklist[i].ItemID == "" {
			daily.Checklist[i].ItemID = uuid.New().String()
		}
	}

	if daily.DailyID == "" {
		daily.DailyID = uuid.New().String()
	}
	daily.Status = model.DailyActive

	now := time.Now()
	daily.CreatedAt = now
	daily.UpdatedAt = now

	if err := svc.repo.CreateDaily(ctx, daily); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, daily.UserID)
	return nil
}

// Get the user's dailies
func (svc *DailiesService) GetUserDailies(ctx context.Context, userID string) ([]*model.Daily, error) {
	return svc.repo.GetUserDailies(ctx, userID)
}

// Get a single daily
func (svc *DailiesService) GetDaily(ctx context.Context, userID, dailyID string) (*model.Daily, error) {
	return svc.repo.GetDailyByID(ctx, userID, dailyID)
}

// Update Daily
func (svc *DailiesService) UpdateDaily(ctx context.Context, dailyID, userID string, updates *model.Daily) (*model.Daily, error) {
	existing, err := svc.repo.GetDailyByID(ctx, userID, dailyID)
	if err != nil {
		return nil, err
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Priority != "" {
		if err := validatePriority(updates.Priority); err != nil {
			return nil, err
		}
		existing.Priority = updates.Priority
	}
	if updates.Days != nil {
		if err := validateDays(updates.Days); err != nil {
			return nil, err
		}
		existing.Days = updates.Days
	}
	if updates.Tags != nil {
		validatedTags, err := validateTags(updates.Tags)
		if err != nil {
			return nil, err
		}
		existing.Tags = validatedTags
	}
	if updates.Note != "" {
		existing.Note = updates.Note
	}
	if updates.Duration != "" {
		existing.Duration = updates.Duration
	}
	if updates.Checklist != nil {
		for i := range updates.Checklist {
			if updates.Checklist[i].ItemID == "" {
				updates.Checklist[i].ItemID = uuid.New().String()
			}
		}
		existing.Checklist = updates.Checklist
	}

	if err := svc.repo.UpdateDaily(ctx, dailyID, userID, existing); err != nil {
		return nil, err
	}
	svc.cache.Invalidate(ctx, userID)
	return existing, nil
}

// CompleteDaily moves an active daily to completed and awards the coins
// for its priority. Completing an already-completed daily is rejected
// before any write.
func (svc *DailiesService) CompleteDaily(ctx context.Context, dailyID, userID string) (*CompletionResult, error) {
	existing, err := svc.repo.GetDailyByID(ctx, userID, dailyID)
	if err != nil {
		return nil, err
	}
	if existing.Status == model.DailyCompleted {
		return nil, errors.New("daily is already completed")
	}

	if err := svc.repo.SetStatus(ctx, dailyID, userID, model.DailyCompleted); err != nil {
		return nil, err
	}
	existing.Status = model.DailyCompleted
	svc.cache.Invalidate(ctx, userID)

	reward, err := svc.rewards.Award(ctx, userID, model.RewardDaily, dailyID, string(existing.Priority))
	if err != nil {
		return nil, err
	}
	return &CompletionResult{Daily: existing, Reward: reward}, nil
}

// UncheckDaily moves a completed daily back to active. No coins are
// clawed back; the ledger is append-only.
func (svc *DailiesService) UncheckDaily(ctx context.Context, dailyID, userID string) error {
	existing, err := svc.repo.GetDailyByID(ctx, userID, dailyID)
	if err != nil {
		return err
	}
	if existing.Status != model.DailyCompleted {
		return errors.New("daily is not completed")
	}
	if err := svc.repo.SetStatus(ctx, dailyID, userID, model.DailyActive); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// SnoozeDaily deactivates a daily until a future date
func (svc *DailiesService) SnoozeDaily(ctx context.Context, dailyID, userID string, until time.Time, reason string) error {
	if !until.After(time.Now()) {
		return errors.New("snooze date must be in the future")
	}
	if err := svc.repo.SnoozeDaily(ctx, dailyID, userID, until, reason); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// ResumeDaily reactivates a snoozed daily
func (svc *DailiesService) ResumeDaily(ctx context.Context, dailyID, userID string) error {
	if err := svc.repo.ResumeDaily(ctx, dailyID, userID); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}

// SetChecklistItem flips one checklist entry of a daily
func (svc *DailiesService) SetChecklistItem(ctx context.Context, dailyID, userID, itemID string, completed bool) error {
	return svc.repo.SetChecklistItem(ctx, dailyID, userID, itemID, completed)
}

// Delete Daily
func (svc *DailiesService) DeleteDaily(ctx context.Context, dailyID, userID string) error {
	if err := svc.repo.DeleteDaily(ctx, dailyID, userID); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}
