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

type DailiesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for dailies
func GetDailiesRepo(client *mongo.Client) *DailiesRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	collectionName := utils.GetEnvAsString("DAILIES_COLLECTION", "dailies")
	return &DailiesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new daily (following the model) into the database
func (r *DailiesRepo) CreateDaily(ctx context.Context, daily *model.Daily) error {
	timer := utils.TrackDBOperation("insert", "dailies")
	defer timer.ObserveDuration()

	if daily.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, daily)
	if err != nil {
		utils.TrackError("database", "daily_creation_failed")
		return err
	}
	return nil
}

// Retrieves all dailies for a user, newest first
func (r *DailiesRepo) GetUserDailies(ctx context.Context, userID string) ([]*model.Daily, error) {
	timer := utils.TrackDBOperation("find", "dailies")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "daily_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var dailies []*model.Daily
	if err = cursor.All(ctx, &dailies); err != nil {
		utils.TrackError("database", "daily_decode_failed")
		return nil, err
	}
	return dailies, nil
}

// Retrieves a single daily scoped to its owner
func (r *DailiesRepo) GetDailyByID(ctx context.Context, userID, dailyID string) (*model.Daily, error) {
	timer := utils.TrackDBOperation("find_one", "dailies")
	defer timer.ObserveDuration()

	var daily model.Daily
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": dailyID, "user_id": userID}).Decode(&daily)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "daily_fetch_failed")
		return nil, err
	}
	return &daily, nil
}

// UpdateDaily overwrites the mutable fields of a daily
func (r *DailiesRepo) UpdateDaily(ctx context.Context, dailyID, userID string, updates *model.Daily) error {
	timer := utils.TrackDBOperation("update", "dailies")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": dailyID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"title":       updates.Title,
			"description": updates.Description,
			"priority":    updates.Priority,
			"days":        updates.Days,
			"duration":    updates.Duration,
			"tags":        updates.Tags,
			"note":        updates.Note,
			"checklist":   updates.Checklist,
			"status":      updates.Status,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "daily_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "daily_not_found")
		return ErrNotFound
	}
	return nil
}

// SetStatus moves a daily between active, snoozed and completed
func (r *DailiesRepo) SetStatus(ctx context.Context, dailyID, userID string, status model.DailyStatus) error {
	timer := utils.TrackDBOperation("update", "dailies")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": dailyID, "user_id": userID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "daily_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	if status == model.DailyCompleted {
		utils.TrackCompletion("daily")
	}
	return nil
}

// SnoozeDaily deactivates a daily until the given date
func (r *DailiesRepo) SnoozeDaily(ctx context.Context, dailyID, userID string, until time.Time, reason string) error {
	timer := utils.TrackDBOperation("update", "dailies")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": dailyID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"status":        model.DailySnoozed,
			"snooze_until":  until,
			"snooze_reason": reason,
			"updated_at":    time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "daily_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResumeDaily reactivates a snoozed daily and clears the snooze fields
func (r *DailiesRepo) ResumeDaily(ctx context.Context, dailyID, userID string) error {
	timer := utils.TrackDBOperation("update", "dailies")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": dailyID, "user_id": userID}
	update := bson.M{
		"$set":   bson.M{"status": model.DailyActive, "updated_at": time.Now()},
		"$unset": bson.M{"snooze_until": "", "snooze_reason": ""},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "daily_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetChecklistItem flips one checklist entry of a daily
func (r *DailiesRepo) SetChecklistItem(ctx context.Context, dailyID, userID, itemID string, completed bool) error {
	timer := utils.TrackDBOperation("update", "dailies")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": dailyID, "user_id": userID, "checklist.id": itemID}
	update := bson.M{
		"$set": bson.M{
			"checklist.$.completed": completed,
			"updated_at":            time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "daily_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Removes a specific daily from database
func (r *DailiesRepo) DeleteDaily(ctx context.Context, dailyID, userID string) error {
	timer := utils.TrackDBOperation("delete", "dailies")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": dailyID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "daily_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "daily_not_found")
		return ErrNotFound
	}
	return nil
}

// ResetStatuses flips every completed daily of a user back to active.
// Already-active dailies are untouched, so re-running is a no-op.
func (r *DailiesRepo) ResetStatuses(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update_many", "dailies")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "status": model.DailyCompleted},
		bson.M{"$set": bson.M{"status": model.DailyActive, "updated_at": time.Now()}})
	if err != nil {
		utils.TrackError("database", "daily_reset_failed")
	}
	return err
}

// DistinctUserIDs lists every user owning at least one daily
func (r *DailiesRepo) DistinctUserIDs(ctx context.Context) ([]string, error) {
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
