package usecase

import (
	"main/model"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeProgressEmpty(t *testing.T) {
	snapshot := ComputeProgress(nil, nil, nil)

	if snapshot.Habits.Percentage != 0 || snapshot.Dailies.Percentage != 0 || snapshot.Todos.Percentage != 0 {
		t.Errorf("empty snapshot should be all zeros, got %+v", snapshot)
	}
	if snapshot.DailyProgress != 0 {
		t.Errorf("DailyProgress = %v, want 0", snapshot.DailyProgress)
	}
}

func TestComputeProgressHabits(t *testing.T) {
	habits := []*model.Habit{
		{CurrentHits: 4},
		{CurrentHits: 2},
	}

	snapshot := ComputeProgress(habits, nil, nil)

	if snapshot.Habits.Total != 8 {
		t.Errorf("habit total = %d, want 8", snapshot.Habits.Total)
	}
	if snapshot.Habits.Completed != 6 {
		t.Errorf("habit completed = %d, want 6", snapshot.Habits.Completed)
	}
	if !almostEqual(snapshot.Habits.Percentage, 75) {
		t.Errorf("habit percentage = %v, want 75", snapshot.Habits.Percentage)
	}
}

func TestComputeProgressDailies(t *testing.T) {
	dailies := []*model.Daily{
		{Status: model.DailyCompleted},
		{Status: model.DailyActive},
		{Status: model.DailyActive},
		{Status: model.DailySnoozed},
	}

	snapshot := ComputeProgress(nil, dailies, nil)

	if snapshot.Dailies.Total != 4 || snapshot.Dailies.Completed != 1 {
		t.Errorf("dailies = %+v, want 1 of 4 completed", snapshot.Dailies)
	}
	if !almostEqual(snapshot.Dailies.Percentage, 25) {
		t.Errorf("daily percentage = %v, want 25", snapshot.Dailies.Percentage)
	}
}

// Completed todos leave the denominator instead of counting toward it, so
// the active slice always reads zero percent and the raw completed count
// rides alongside.
func TestComputeProgressTodosActiveBacklogOnly(t *testing.T) {
	todos := []*model.Todo{
		{Status: model.TodoActive},
		{Status: model.TodoActive},
		{Status: model.TodoCompleted},
		{Status: model.TodoCompleted},
		{Status: model.TodoCompleted},
	}

	snapshot := ComputeProgress(nil, nil, todos)

	if snapshot.Todos.Total != 2 {
		t.Errorf("todo total = %d, want 2 active", snapshot.Todos.Total)
	}
	if snapshot.Todos.Completed != 0 {
		t.Errorf("todo completed = %d, want 0", snapshot.Todos.Completed)
	}
	if snapshot.Todos.Percentage != 0 {
		t.Errorf("todo percentage = %v, want 0", snapshot.Todos.Percentage)
	}
	if snapshot.CompletedTodos != 3 {
		t.Errorf("CompletedTodos = %d, want 3", snapshot.CompletedTodos)
	}
}

func TestComputeProgressDailyProgressIsMeanOfCategories(t *testing.T) {
	habits := []*model.Habit{{CurrentHits: 4}} // 100%
	dailies := []*model.Daily{
		{Status: model.DailyCompleted},
		{Status: model.DailyActive},
	} // 50%
	todos := []*model.Todo{{Status: model.TodoActive}} // 0%

	snapshot := ComputeProgress(habits, dailies, todos)

	if !almostEqual(snapshot.DailyProgress, 50) {
		t.Errorf("DailyProgress = %v, want 50", snapshot.DailyProgress)
	}
}

func TestComputeProgressMixedHabitCompletion(t *testing.T) {
	habits := []*model.Habit{{CurrentHits: 4}, {CurrentHits: 0}}

	snapshot := ComputeProgress(habits, nil, nil)

	if !almostEqual(snapshot.Habits.Percentage, 50) {
		t.Errorf("habit percentage = %v, want 50", snapshot.Habits.Percentage)
	}
}
