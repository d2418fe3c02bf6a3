package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/services"
	"sort"
	"time"

	"github.com/google/uuid"
)

type TodosService struct {
	repo    *repository.TodosRepo
	rewards *RewardsService
	cache   *services.ProgressCache
}

func NewTodosService(repo *repository.TodosRepo, rewards *RewardsService, cache *services.ProgressCache) *TodosService {
	return &TodosService{repo: repo, rewards: rewards, cache: cache}
}

// TodoCompletionResult pairs the completed todo with the reward it earned.
type TodoCompletionResult struct {
	Todo   *model.Todo   `json:"todo"`
	Reward *RewardResult `json:"reward,omitempty"`
}

func priorityWeight(priority model.Priority) int {
	switch priority {
	case model.PriorityHigh:
		return 3
	case model.PriorityMedium:
		return 2
	case model.PriorityLow:
		return 1
	}
	return 0
}

// Create Todo
func (svc *TodosService) CreateTodo(ctx context.Context, todo *model.Todo) error {
	if todo.UserID == "" {
		return errors.New("user ID is required")
	}
	if todo.Title == "" {
		return errors.New("todo title is required")
	}

	validatedTags, err := validateTags(todo.Tags)
	if err != nil {
		return err
	}
	todo.Tags = validatedTags

	if todo.Priority == "" {
		todo.Priority = model.PriorityMedium
	}
	if err := validatePriority(todo.Priority); err != nil {
		return err
	}

	for i := range todo.Checklist {
		if todo.Checklist[i].ItemID == "" {
			todo.Checklist[i].ItemID = uuid.New().String()
		}
	}

	if todo.TodoID == "" {
		todo.TodoID = uuid.New().String()
	}
	todo.Status = model.TodoActive

	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	if err := svc.repo.CreateTodo(ctx, todo); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, todo.UserID)
	return nil
}

// GetUserTodos returns the user's todos sorted for display: active before
// completed, overdue first among active, then priority, due date and age.
func (svc *TodosService) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	todos, err := svc.repo.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sort.Slice(todos, func(i, j int) bool {
		iActive := todos[i].Status == model.TodoActive
		jActive := todos[j].Status == model.TodoActive
		if iActive != jActive {
			return iActive
		}

		if iActive && jActive {
			iOverdue := !todos[i].DueDate.IsZero() && todos[i].DueDate.Before(now)
			jOverdue := !todos[j].DueDate.IsZero() && todos[j].DueDate.Before(now)
			if iOverdue != jOverdue {
				return iOverdue
			}
		}

		if todos[i].Priority != todos[j].Priority {
			return priorityWeight(todos[i].Priority) > priorityWeight(todos[j].Priority)
		}

		if !todos[i].DueDate.IsZero() && !todos[j].DueDate.IsZero() {
			return todos[i].DueDate.Before(todos[j].DueDate)
		}

		return todos[i].CreatedAt.Before(todos[j].CreatedAt)
	})

	return todos, nil
}

// Get a single todo
func (svc *TodosService) GetTodo(ctx context.Context, userID, todoID string) (*model.Todo, error) {
	return svc.repo.GetTodoByID(ctx, userID, todoID)
}

// Update Todo
func (svc *TodosService) UpdateTodo(ctx context.Context, todoID, userID string, updates *model.Todo) (*model.Todo, error) {
	existing, err := svc.repo.GetTodoByID(ctx, userID, todoID)
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
	if updates.Tags != nil {
		validatedTags, err := validateTags(updates.Tags)
		if err != nil {
			return nil, err
		}
		existing.Tags = validatedTags
	}
	if updates.TimeEstimate != "" {
		existing.TimeEstimate = updates.TimeEstimate
	}
	if !updates.DueDate.IsZero() {
		existing.DueDate = updates.DueDate
	}
	if updates.Checklist != nil {
		for i := range updates.Checklist {
			if updates.Checklist[i].ItemID == "" {
				updates.Checklist[i].ItemID = uuid.New().String()
			}
		}
		existing.Checklist = updates.Checklist
	}

	if err := svc.repo.UpdateTodo(ctx, todoID, userID, existing); err != nil {
		return nil, err
	}
	svc.cache.Invalidate(ctx, userID)
	return existing, nil
}

// CompleteTodo moves an active todo to completed and awards the coins for
// its priority. The transition is one-way; there is no automatic reset.
func (svc *TodosService) CompleteTodo(ctx context.Context, todoID, userID string) (*TodoCompletionResult, error) {
	todo, err := svc.repo.CompleteTodo(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}
	svc.cache.Invalidate(ctx, userID)

	reward, err := svc.rewards.Award(ctx, userID, model.RewardTodo, todoID, string(todo.Priority))
	if err != nil {
		return nil, err
	}
	return &TodoCompletionResult{Todo: todo, Reward: reward}, nil
}

// SetChecklistItem flips one checklist entry of a todo
func (svc *TodosService) SetChecklistItem(ctx context.Context, todoID, userID, itemID string, completed bool) error {
	return svc.repo.SetChecklistItem(ctx, todoID, userID, itemID, completed)
}

// Delete Todo
func (svc *TodosService) DeleteTodo(ctx context.Context, todoID, userID string) error {
	if err := svc.repo.DeleteTodo(ctx, todoID, userID); err != nil {
		return err
	}
	svc.cache.Invalidate(ctx, userID)
	return nil
}
