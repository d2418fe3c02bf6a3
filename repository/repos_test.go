package repository

import (
	"context"
	"errors"
	"main/model"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testClient connects to the MongoDB named by MONGO_URI and skips the test
// when none is available, so the suite stays green without infrastructure.
func testClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping database-backed tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB unreachable: %v", err)
	}

	t.Cleanup(func() {
		client.Disconnect(context.Background())
	})
	return client
}

func useTestDatabase(t *testing.T, client *mongo.Client) {
	t.Helper()
	t.Setenv("MONGO_DB", "lifequest_test")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Database("lifequest_test").Drop(ctx)
	})
}

func seedHabit(t *testing.T, repo *HabitsRepo, habitID, userID string, maxHits int) {
	t.Helper()
	habit := &model.Habit{
		HabitID:    habitID,
		UserID:     userID,
		Title:      "Morning Workout",
		Difficulty: model.DifficultyMedium,
		MaxHits:    maxHits,
		Status:     model.HabitActive,
		HitLevels:  model.DefaultHitLevels(),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := repo.CreateHabit(context.Background(), habit); err != nil {
		t.Fatalf("failed to seed habit: %v", err)
	}
}

// N increments followed by M decrements must land on clamp(N-M, 0, maxHits),
// with the out-of-bound attempts rejected instead of absorbed.
func TestHabitHitClamping(t *testing.T) {
	client := testClient(t)
	useTestDatabase(t, client)
	repo := GetHabitsRepo(client)
	ctx := context.Background()

	seedHabit(t, repo, "habit-clamp", "user-1", model.DefaultMaxHits)

	ceilingRejections := 0
	var last *model.Habit
	for i := 0; i < 6; i++ {
		habit, err := repo.IncrementHit(ctx, "habit-clamp", "user-1")
		if err != nil {
			if !errors.Is(err, ErrMaxHitsReached) {
				t.Fatalf("increment %d: unexpected error %v", i, err)
			}
			ceilingRejections++
			continue
		}
		last = habit
	}
	if ceilingRejections != 2 {
		t.Errorf("got %d ceiling rejections for 6 increments, want 2", ceilingRejections)
	}
	if last.CurrentHits != model.DefaultMaxHits {
		t.Errorf("current_hits = %d after saturation, want %d", last.CurrentHits, model.DefaultMaxHits)
	}
	if last.TotalHits != model.DefaultMaxHits {
		t.Errorf("total_hits = %d, want %d", last.TotalHits, model.DefaultMaxHits)
	}

	floorRejections := 0
	for i := 0; i < 6; i++ {
		habit, err := repo.DecrementHit(ctx, "habit-clamp", "user-1")
		if err != nil {
			if !errors.Is(err, ErrMinHitsReached) {
				t.Fatalf("decrement %d: unexpected error %v", i, err)
			}
			floorRejections++
			continue
		}
		last = habit
	}
	if floorRejections != 2 {
		t.Errorf("got %d floor rejections for 6 decrements, want 2", floorRejections)
	}
	if last.CurrentHits != 0 {
		t.Errorf("current_hits = %d after draining, want 0", last.CurrentHits)
	}
}

func TestHabitHitBoundErrorsOnMissingHabit(t *testing.T) {
	client := testClient(t)
	useTestDatabase(t, client)
	repo := GetHabitsRepo(client)

	if _, err := repo.IncrementHit(context.Background(), "no-such-habit", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("increment on missing habit: got %v, want ErrNotFound", err)
	}
	if _, err := repo.DecrementHit(context.Background(), "no-such-habit", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("decrement on missing habit: got %v, want ErrNotFound", err)
	}
}

// Running the reset operations twice must leave the same state as running
// them once.
func TestDailyResetIdempotence(t *testing.T) {
	client := testClient(t)
	useTestDatabase(t, client)
	habitsRepo := GetHabitsRepo(client)
	dailiesRepo := GetDailiesRepo(client)
	ctx := context.Background()

	seedHabit(t, habitsRepo, "habit-reset", "user-1", model.DefaultMaxHits)
	for i := 0; i < 3; i++ {
		if _, err := habitsRepo.IncrementHit(ctx, "habit-reset", "user-1"); err != nil {
			t.Fatalf("failed to raise hits: %v", err)
		}
	}

	daily := &model.Daily{
		DailyID:   "daily-reset",
		UserID:    "user-1",
		Title:     "Review Inbox",
		Priority:  model.PriorityMedium,
		Days:      []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Status:    model.DailyCompleted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := dailiesRepo.CreateDaily(ctx, daily); err != nil {
		t.Fatalf("failed to seed daily: %v", err)
	}

	for run := 0; run < 2; run++ {
		if err := habitsRepo.ResetCurrentHits(ctx, "user-1"); err != nil {
			t.Fatalf("reset run %d: habits failed: %v", run, err)
		}
		if err := dailiesRepo.ResetStatuses(ctx, "user-1"); err != nil {
			t.Fatalf("reset run %d: dailies failed: %v", run, err)
		}

		habit, err := habitsRepo.GetHabitByID(ctx, "user-1", "habit-reset")
		if err != nil {
			t.Fatalf("failed to reload habit: %v", err)
		}
		if habit.CurrentHits != 0 {
			t.Errorf("run %d: current_hits = %d, want 0", run, habit.CurrentHits)
		}
		if habit.TotalHits != 3 {
			t.Errorf("run %d: total_hits = %d, want lifetime total preserved", run, habit.TotalHits)
		}

		reloaded, err := dailiesRepo.GetDailyByID(ctx, "user-1", "daily-reset")
		if err != nil {
			t.Fatalf("failed to reload daily: %v", err)
		}
		if reloaded.Status != model.DailyActive {
			t.Errorf("run %d: daily status = %q, want active", run, reloaded.Status)
		}
	}
}

func TestCompleteTodoTwiceReportsConflict(t *testing.T) {
	client := testClient(t)
	useTestDatabase(t, client)
	repo := GetTodosRepo(client)
	ctx := context.Background()

	todo := &model.Todo{
		TodoID:    "todo-once",
		UserID:    "user-1",
		Title:     "File Taxes",
		Priority:  model.PriorityHigh,
		Status:    model.TodoActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.CreateTodo(ctx, todo); err != nil {
		t.Fatalf("failed to seed todo: %v", err)
	}

	if _, err := repo.CompleteTodo(ctx, "todo-once", "user-1"); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	if _, err := repo.CompleteTodo(ctx, "todo-once", "user-1"); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("second completion: got %v, want ErrAlreadyCompleted", err)
	}
	if _, err := repo.CompleteTodo(ctx, "no-such-todo", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing todo: got %v, want ErrNotFound", err)
	}
}

func TestStampLastResetRoundTrip(t *testing.T) {
	client := testClient(t)
	useTestDatabase(t, client)
	repo := GetUsersRepo(client)
	ctx := context.Background()

	missing, err := repo.FindUser(ctx, "user-unseen")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for an unseen user, got %+v", missing)
	}

	stamp := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if err := repo.StampLastReset(ctx, "user-1", stamp); err != nil {
		t.Fatalf("StampLastReset failed: %v", err)
	}

	user, err := repo.FindUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("FindUser failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected the upserted user record")
	}
	if !user.LastResetDate.Equal(stamp) {
		t.Errorf("last_reset_date = %v, want %v", user.LastResetDate, stamp)
	}
}
