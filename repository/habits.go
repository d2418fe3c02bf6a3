package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HabitsRepo struct {
	MongoCollection *mongo.Collection
	// Completions holds per-hit history records; they live in their own
	// collection and are removed together with the owning habit.
	Completions *mongo.Collection
}

// Retrieves MongoDB collections for habits and their hit history
func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(utils.GetEnvAsString("HABITS_COLLECTION", "habits")),
		Completions:     client.Database(dbName).Collection(utils.GetEnvAsString("HABIT_COMPLETIONS_COLLECTION", "habit_completions")),
	}
}

// Add a new habit (following the model) into the database
func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
		return err
	}
	return nil
}

// Retrieves all habits for a user, newest first
func (r *HabitsRepo) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

// Retrieves a single habit scoped to its owner
func (r *HabitsRepo) GetHabitByID(ctx context.Context, userID, habitID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find_one", "habits")
	defer timer.ObserveDuration()

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": habitID, "user_id": userID}).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	return &habit, nil
}

// UpdateHabit overwrites the mutable fields of a habit
func (r *HabitsRepo) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": habitID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"title":       updates.Title,
			"description": updates.Description,
			"difficulty":  updates.Difficulty,
			"max_hits":    updates.MaxHits,
			"hit_levels":  updates.HitLevels,
			"tags":        updates.Tags,
			"status":      updates.Status,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return ErrNotFound
	}
	return nil
}

// IncrementHit raises current_hits and total_hits by one and records the
// completion. The bound check rides in the update filter so concurrent
// increments cannot push a habit past max_hits.
func (r *HabitsRepo) IncrementHit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	now := time.Now()
	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
		"$expr":   bson.M{"$lt": bson.A{"$current_hits", "$max_hits"}},
	}
	update := bson.M{
		"$inc": bson.M{"current_hits": 1, "total_hits": 1},
		"$set": bson.M{"last_completed": now, "updated_at": now},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var habit model.Habit
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyHitFailure(ctx, habitID, userID, true)
		}
		utils.TrackError("database", "habit_update_failed")
		return nil, err
	}

	record := &model.HabitCompletion{
		UserID:      userID,
		HabitID:     habitID,
		HitLevel:    habit.CurrentHits,
		Action:      model.HitIncrement,
		CompletedAt: now,
	}
	if _, err := r.Completions.InsertOne(ctx, record); err != nil {
		utils.TrackError("database", "habit_completion_record_failed")
		return nil, err
	}

	utils.TrackCompletion("habit")
	return &habit, nil
}

// DecrementHit lowers current_hits by one, keeping total_hits at zero or
// above, and records the correction.
func (r *HabitsRepo) DecrementHit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	now := time.Now()
	filter := bson.M{
		"_id":          habitID,
		"user_id":      userID,
		"current_hits": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"current_hits": -1},
		"$set": bson.M{"updated_at": now},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var habit model.Habit
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyHitFailure(ctx, habitID, userID, false)
		}
		utils.TrackError("database", "habit_update_failed")
		return nil, err
	}

	// total_hits mirrors the decrement but never drops below zero.
	totalFilter := bson.M{"_id": habitID, "user_id": userID, "total_hits": bson.M{"$gt": 0}}
	if _, err := r.MongoCollection.UpdateOne(ctx, totalFilter, bson.M{"$inc": bson.M{"total_hits": -1}}); err != nil {
		utils.TrackError("database", "habit_update_failed")
		return nil, err
	}
	if habit.TotalHits > 0 {
		habit.TotalHits--
	}

	record := &model.HabitCompletion{
		UserID:      userID,
		HabitID:     habitID,
		HitLevel:    habit.CurrentHits,
		Action:      model.HitDecrement,
		CompletedAt: now,
	}
	if _, err := r.Completions.InsertOne(ctx, record); err != nil {
		utils.TrackError("database", "habit_completion_record_failed")
		return nil, err
	}
	return &habit, nil
}

// classifyHitFailure distinguishes a missing habit from one already at its
// hit bound after a conditional update matched nothing.
func (r *HabitsRepo) classifyHitFailure(ctx context.Context, habitID, userID string, increment bool) error {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"_id": habitID, "user_id": userID})
	if err != nil {
		return err
	}
	if count == 0 {
		utils.TrackError("database", "habit_not_found")
		return ErrNotFound
	}
	if increment {
		return ErrMaxHitsReached
	}
	return ErrMinHitsReached
}

// SnoozeHabit deactivates a habit until the given date
func (r *HabitsRepo) SnoozeHabit(ctx context.Context, habitID, userID string, until time.Time, reason string) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": habitID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"status":        model.HabitSnoozed,
			"snooze_until":  until,
			"snooze_reason": reason,
			"updated_at":    time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResumeHabit reactivates a snoozed habit and clears the snooze fields
func (r *HabitsRepo) ResumeHabit(ctx context.Context, habitID, userID string) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": habitID, "user_id": userID}
	update := bson.M{
		"$set":   bson.M{"status": model.HabitActive, "updated_at": time.Now()},
		"$unset": bson.M{"snooze_until": "", "snooze_reason": ""},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHabit removes a habit and cascades to its completion history
func (r *HabitsRepo) DeleteHabit(ctx context.Context, habitID, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": habitID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return ErrNotFound
	}

	if _, err := r.Completions.DeleteMany(ctx, bson.M{"habit_id": habitID, "user_id": userID}); err != nil {
		utils.TrackError("database", "habit_completion_cascade_failed")
		return err
	}
	return nil
}

// GetCompletions returns a habit's hit history, newest first
func (r *HabitsRepo) GetCompletions(ctx context.Context, habitID, userID string) ([]*model.HabitCompletion, error) {
	timer := utils.TrackDBOperation("find", "habit_completions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cursor, err := r.Completions.Find(ctx, bson.M{"habit_id": habitID, "user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.HabitCompletion
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ResetCurrentHits zeroes current_hits for every habit of a user. Applying
// it to an already-reset user is a no-op.
func (r *HabitsRepo) ResetCurrentHits(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update_many", "habits")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "current_hits": bson.M{"$gt": 0}},
		bson.M{"$set": bson.M{"current_hits": 0, "updated_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "habit_reset_failed")
	}
	return err
}

// DistinctUserIDs lists every user owning at least one habit
func (r *HabitsRepo) DistinctUserIDs(ctx context.Context) ([]string, error) {
	values, err := r.MongoCollection.Distinct(ctx, "user_id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
