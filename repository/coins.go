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

type CoinsRepo struct {
	Balances     *mongo.Collection
	Transactions *mongo.Collection
}

// Retrieves MongoDB collections for coin balances and the transaction ledger
func GetCoinsRepo(client *mongo.Client) *CoinsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	return &CoinsRepo{
		Balances:     client.Database(dbName).Collection(utils.GetEnvAsString("COINS_COLLECTION", "user_coins")),
		Transactions: client.Database(dbName).Collection(utils.GetEnvAsString("COIN_TRANSACTIONS_COLLECTION", "coin_transactions")),
	}
}

// GetOrInitUserCoins returns the user's balance, creating the zeroed record
// on first read.
func (r *CoinsRepo) GetOrInitUserCoins(ctx context.Context, userID string) (*model.UserCoins, error) {
	timer := utils.TrackDBOperation("find_one_and_update", "user_coins")
	defer timer.ObserveDuration()

	now := time.Now()
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"total_coins":         0,
			"level":               1,
			"coins_to_next_level": model.CoinsPerLevel,
			"created_at":          now,
			"updated_at":          now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var coins model.UserCoins
	if err := r.Balances.FindOneAndUpdate(ctx, filter, update, opts).Decode(&coins); err != nil {
		utils.TrackError("database", "coins_init_failed")
		return nil, err
	}
	return &coins, nil
}

// AddCoins applies one reward atomically. The $inc is a single server-side
// read-modify-write, so two near-simultaneous awards both land. The derived
// level fields are then written guarded by the observed total: a writer that
// lost the race no-ops and leaves the fresher derivation in place.
func (r *CoinsRepo) AddCoins(ctx context.Context, userID string, amount int) (*model.UserCoins, error) {
	timer := utils.TrackDBOperation("find_one_and_update", "user_coins")
	defer timer.ObserveDuration()

	if amount < 0 {
		return nil, errors.New("reward amount must not be negative")
	}

	now := time.Now()
	filter := bson.M{"_id": userID}
	update := bson.M{
		"$inc": bson.M{"total_coins": amount},
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var coins model.UserCoins
	if err := r.Balances.FindOneAndUpdate(ctx, filter, update, opts).Decode(&coins); err != nil {
		utils.TrackError("database", "coins_update_failed")
		return nil, err
	}

	coins.Level = model.LevelForCoins(coins.TotalCoins)
	coins.CoinsToNextLevel = model.CoinsToNext(coins.TotalCoins)

	derived := bson.M{
		"$set": bson.M{
			"level":               coins.Level,
			"coins_to_next_level": coins.CoinsToNextLevel,
		},
	}
	guard := bson.M{"_id": userID, "total_coins": coins.TotalCoins}
	if _, err := r.Balances.UpdateOne(ctx, guard, derived); err != nil {
		utils.TrackError("database", "coins_update_failed")
		return nil, err
	}

	return &coins, nil
}

// InsertTransaction appends one immutable ledger entry
func (r *CoinsRepo) InsertTransaction(ctx context.Context, tx *model.CoinTransaction) error {
	timer := utils.TrackDBOperation("insert", "coin_transactions")
	defer timer.ObserveDuration()

	if _, err := r.Transactions.InsertOne(ctx, tx); err != nil {
		utils.TrackError("database", "transaction_insert_failed")
		return err
	}
	return nil
}

// GetTransactions returns the user's reward history, newest first
func (r *CoinsRepo) GetTransactions(ctx context.Context, userID string) ([]*model.CoinTransaction, error) {
	timer := utils.TrackDBOperation("find", "coin_transactions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Transactions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "transaction_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []*model.CoinTransaction
	if err = cursor.All(ctx, &transactions); err != nil {
		utils.TrackError("database", "transaction_decode_failed")
		return nil, err
	}
	return transactions, nil
}
