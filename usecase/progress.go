package usecase

import (
	"context"
	"main/model"
	"main/repository"
	"main/services"
)

type ProgressService struct {
	habitsRepo  *repository.HabitsRepo
	dailiesRepo *repository.DailiesRepo
	todosRepo   *repository.TodosRepo
	cache       *services.ProgressCache
}

func NewProgressService(
	habitsRepo *repository.HabitsRepo,
	dailiesRepo *repository.DailiesRepo,
	todosRepo *repository.TodosRepo,
	cache *services.ProgressCache,
) *ProgressService {
	return &ProgressService{
		habitsRepo:  habitsRepo,
		dailiesRepo: dailiesRepo,
		todosRepo:   todosRepo,
		cache:       cache,
	}
}

// ComputeProgress derives per-category and overall completion percentages
// from a snapshot of the source collections. Pure calculation, no I/O.
//
// Habits count currentHits against a fixed four-hit ceiling per habit.
// Dailies count completed over all statuses. Todos track only the active
// backlog: finished todos roll off the denominator rather than diluting
// the ratio, so the active slice's Completed stays zero; the raw completed
// count is carried separately.
func ComputeProgress(habits []*model.Habit, dailies []*model.Daily, todos []*model.Todo) *model.ProgressSnapshot {
	snapshot := &model.ProgressSnapshot{}

	totalHits := len(habits) * model.DefaultMaxHits
	completedHits := 0
	for _, h := range habits {
		completedHits += h.CurrentHits
	}
	snapshot.Habits = model.CategoryProgress{
		Total:      totalHits,
		Completed:  completedHits,
		Percentage: percentage(completedHits, totalHits),
	}

	completedDailies := 0
	for _, d := range dailies {
		if d.Status == model.DailyCompleted {
			completedDailies++
		}
	}
	snapshot.Dailies = model.CategoryProgress{
		Total:      len(dailies),
		Completed:  completedDailies,
		Percentage: percentage(completedDailies, len(dailies)),
	}

	activeTodos := 0
	completedTodos := 0
	for _, t := range todos {
		switch t.Status {
		case model.TodoActive:
			activeTodos++
		case model.TodoCompleted:
			completedTodos++
		}
	}
	snapshot.Todos = model.CategoryProgress{
		Total:      activeTodos,
		Completed:  0,
		Percentage: percentage(0, activeTodos),
	}
	snapshot.CompletedTodos = completedTodos

	snapshot.DailyProgress = (snapshot.Habits.Percentage +
		snapshot.Dailies.Percentage +
		snapshot.Todos.Percentage) / 3

	return snapshot
}

func percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// GetUserProgress loads the user's collections and computes the snapshot,
// serving from the short-TTL cache when one is wired.
func (svc *ProgressService) GetUserProgress(ctx context.Context, userID string) (*model.ProgressSnapshot, error) {
	if cached, ok := svc.cache.Get(ctx, userID); ok {
		return cached, nil
	}

	habits, err := svc.habitsRepo.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	dailies, err := svc.dailiesRepo.GetUserDailies(ctx, userID)
	if err != nil {
		return nil, err
	}
	todos, err := svc.todosRepo.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := ComputeProgress(habits, dailies, todos)
	svc.cache.Set(ctx, userID, snapshot)
	return snapshot, nil
}
