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

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for goals
func GetGoalsRepo(client *mongo.Client) *GoalsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	collectionName := utils.GetEnvAsString("GOALS_COLLECTION", "goals")
	return &GoalsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new goal into the database
func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if goal.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, goal)
	if err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}

// Retrieves all goals for a user, newest first
func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []*model.Goal
	if err = cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, err
	}
	return goals, nil
}

// Retrieves a single goal scoped to its owner
func (r *GoalsRepo) GetGoalByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	timer := utils.TrackDBOperation("find_one", "goals")
	defer timer.ObserveDuration()

	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": goalID, "user_id": userID}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal overwrites the mutable fields of a goal
func (r *GoalsRepo) UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": goalID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"title":        updates.Title,
			"description":  updates.Description,
			"timeframe":    updates.Timeframe,
			"priority":     updates.Priority,
			"status":       updates.Status,
			"progress":     updates.Progress,
			"linked_goals": updates.LinkedGoals,
			"tags":         updates.Tags,
			"updated_at":   time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return ErrNotFound
	}
	return nil
}

// SetProgress writes a goal's progress and flips status when it hits 100
func (r *GoalsRepo) SetProgress(ctx context.Context, goalID, userID string, progress int) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	set := bson.M{"progress": progress, "updated_at": time.Now()}
	if progress >= 100 {
		set["status"] = model.GoalCompleted
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID, "user_id": userID},
		bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Removes a specific goal from database
func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID, userID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return ErrNotFound
	}
	return nil
}
