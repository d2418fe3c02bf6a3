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

type TimeBlocksService struct {
	repo *repository.TimeBlocksRepo
}

func NewTimeBlocksService(repo *repository.TimeBlocksRepo) *TimeBlocksService {
	return &TimeBlocksService{repo: repo}
}

func validateBlockType(blockType model.TimeBlockType) error {
	switch blockType {
	case model.BlockHabit, model.BlockDaily, model.BlockTodo, model.BlockCustom:
		return nil
	}
	return fmt.Errorf("invalid block type %q", blockType)
}

// CreateTimeBlock validates the time pair, derives the duration and stores
// the block.
func (svc *TimeBlocksService) CreateTimeBlock(ctx context.Context, block *model.TimeBlock) error {
	if block.UserID == "" {
		return errors.New("user ID is required")
	}
	if block.Title == "" {
		return errors.New("time block title is required")
	}
	if block.Date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse("2006-01-02", block.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", block.Date)
	}

	if block.Type == "" {
		block.Type = model.BlockCustom
	}
	if err := validateBlockType(block.Type); err != nil {
		return err
	}

	duration, err := model.BlockDuration(block.StartTime, block.EndTime)
	if err != nil {
		return err
	}
	block.Duration = duration

	if block.BlockID == "" {
		block.BlockID = uuid.New().String()
	}

	now := time.Now()
	block.CreatedAt = now
	block.UpdatedAt = now

	return svc.repo.CreateTimeBlock(ctx, block)
}

// GetUserTimeBlocks lists a user's blocks, optionally for a single date
func (svc *TimeBlocksService) GetUserTimeBlocks(ctx context.Context, userID, date string) ([]*model.TimeBlock, error) {
	return svc.repo.GetUserTimeBlocks(ctx, userID, date)
}

// Get a single time block
func (svc *TimeBlocksService) GetTimeBlock(ctx context.Context, userID, blockID string) (*model.TimeBlock, error) {
	return svc.repo.GetTimeBlockByID(ctx, userID, blockID)
}

// UpdateTimeBlock applies field updates and rederives the duration from the
// resulting start/end pair. Duration from the caller is ignored.
func (svc *TimeBlocksService) UpdateTimeBlock(ctx context.Context, blockID, userID string, updates *model.TimeBlock) (*model.TimeBlock, error) {
	existing, err := svc.repo.GetTimeBlockByID(ctx, userID, blockID)
	if err != nil {
		return nil, err
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Date != "" {
		if _, err := time.Parse("2006-01-02", updates.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", updates.Date)
		}
		existing.Date = updates.Date
	}
	if updates.StartTime != "" {
		existing.StartTime = updates.StartTime
	}
	if updates.EndTime != "" {
		existing.EndTime = updates.EndTime
	}
	if updates.Type != "" {
		if err := validateBlockType(updates.Type); err != nil {
			return nil, err
		}
		existing.Type = updates.Type
	}
	if updates.ReferenceID != "" {
		existing.ReferenceID = updates.ReferenceID
	}
	if updates.Color != "" {
		existing.Color = updates.Color
	}

	duration, err := model.BlockDuration(existing.StartTime, existing.EndTime)
	if err != nil {
		return nil, err
	}
	existing.Duration = duration

	if err := svc.repo.UpdateTimeBlock(ctx, blockID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete Time Block
func (svc *TimeBlocksService) DeleteTimeBlock(ctx context.Context, blockID, userID string) error {
	return svc.repo.DeleteTimeBlock(ctx, blockID, userID)
}
