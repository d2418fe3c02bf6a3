package repository

import (
	"context"
	"main/model"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for user bookkeeping records
func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	collectionName := utils.GetEnvAsString("USERS_COLLECTION", "users")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// FindUser returns the bookkeeping record, or nil when none exists yet
func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find_one", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("database", "user_fetch_failed")
		return nil, err
	}
	return &user, nil
}

// StampLastReset upserts the user's reset timestamp
func (r *UsersRepo) StampLastReset(ctx context.Context, userID string, at time.Time) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set":         bson.M{"last_reset_date": at, "updated_at": at},
		"$setOnInsert": bson.M{"created_at": at},
	}
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "user_reset_stamp_failed")
	}
	return err
}
