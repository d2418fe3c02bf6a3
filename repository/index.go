package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userDateIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_index"),
		},
	}

	// Habits, dailies, todos and goals share the list-by-user query shape.
	for _, name := range []string{"habits", "dailies", "todos", "goals"} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, userDateIndexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	completionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "habit_id", Value: 1},
				{Key: "completed_at", Value: -1},
			},
			Options: options.Index().SetName("user_habit_completions"),
		},
	}
	if _, err := db.Collection("habit_completions").Indexes().CreateMany(ctx, completionIndexes); err != nil {
		return fmt.Errorf("failed to create habit_completions indexes: %w", err)
	}

	timeblockIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "start_time", Value: 1},
			},
			Options: options.Index().SetName("user_date_blocks"),
		},
	}
	if _, err := db.Collection("timeblocks").Indexes().CreateMany(ctx, timeblockIndexes); err != nil {
		return fmt.Errorf("failed to create timeblocks indexes: %w", err)
	}

	ledgerIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_ledger_desc"),
		},
	}
	if _, err := db.Collection("coin_transactions").Indexes().CreateMany(ctx, ledgerIndexes); err != nil {
		return fmt.Errorf("failed to create coin_transactions indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
