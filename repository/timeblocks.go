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

type TimeBlocksRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for time blocks
func GetTimeBlocksRepo(client *mongo.Client) *TimeBlocksRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	collectionName := utils.GetEnvAsString("TIMEBLOCKS_COLLECTION", "timeblocks")
	return &TimeBlocksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new time block into the database
func (r *TimeBlocksRepo) CreateTimeBlock(ctx context.Context, block *model.TimeBlock) error {
	timer := utils.TrackDBOperation("insert", "timeblocks")
	defer timer.ObserveDuration()

	if block.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, block)
	if err != nil {
		utils.TrackError("database", "timeblock_creation_failed")
		return err
	}
	return nil
}

// GetUserTimeBlocks returns a user's blocks, optionally filtered to one
// date, ordered by start time.
func (r *TimeBlocksRepo) GetUserTimeBlocks(ctx context.Context, userID, date string) ([]*model.TimeBlock, error) {
	timer := utils.TrackDBOperation("find", "timeblocks")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if date != "" {
		filter["date"] = date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "timeblock_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []*model.TimeBlock
	if err = cursor.All(ctx, &blocks); err != nil {
		utils.TrackError("database", "timeblock_decode_failed")
		return nil, err
	}
	return blocks, nil
}

// Retrieves a single time block scoped to its owner
func (r *TimeBlocksRepo) GetTimeBlockByID(ctx context.Context, userID, blockID string) (*model.TimeBlock, error) {
	timer := utils.TrackDBOperation("find_one", "timeblocks")
	defer timer.ObserveDuration()

	var block model.TimeBlock
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": blockID, "user_id": userID}).Decode(&block)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "timeblock_fetch_failed")
		return nil, err
	}
	return &block, nil
}

// UpdateTimeBlock overwrites the mutable fields of a block. Duration is
// recomputed by the caller before the write, never taken from input.
func (r *TimeBlocksRepo) UpdateTimeBlock(ctx context.Context, blockID, userID string, updates *model.TimeBlock) error {
	timer := utils.TrackDBOperation("update", "timeblocks")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": blockID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"title":        updates.Title,
			"date":         updates.Date,
			"start_time":   updates.StartTime,
			"end_time":     updates.EndTime,
			"duration":     updates.Duration,
			"type":         updates.Type,
			"reference_id": updates.ReferenceID,
			"color":        updates.Color,
			"updated_at":   time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "timeblock_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "timeblock_not_found")
		return ErrNotFound
	}
	return nil
}

// Removes a specific time block from database
func (r *TimeBlocksRepo) DeleteTimeBlock(ctx context.Context, blockID, userID string) error {
	timer := utils.TrackDBOperation("delete", "timeblocks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": blockID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "timeblock_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "timeblock_not_found")
		return ErrNotFound
	}
	return nil
}
