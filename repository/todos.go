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

type TodosRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for todos
func GetTodosRepo(client *mongo.Client) *TodosRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "lifequest")
	collectionName := utils.GetEnvAsString("TODOS_COLLECTION", "todos")
	return &TodosRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new todo (following the model) into the database
func (r *TodosRepo) CreateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	if todo.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, todo)
	if err != nil {
		utils.TrackError("database", "todo_creation_failed")
		return err
	}
	return nil
}

// Retrieves all todos for a user, newest first
func (r *TodosRepo) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []*model.Todo
	if err = cursor.All(ctx, &todos); err != nil {
		utils.TrackError("database", "todo_decode_failed")
		return nil, err
	}
	return todos, nil
}

// Retrieves a single todo scoped to its owner
func (r *TodosRepo) GetTodoByID(ctx context.Context, userID, todoID string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("find_one", "todos")
	defer timer.ObserveDuration()

	var todo model.Todo
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": todoID, "user_id": userID}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo overwrites the mutable fields of a todo
func (r *TodosRepo) UpdateTodo(ctx context.Context, todoID, userID string, updates *model.Todo) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": todoID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"title":         updates.Title,
			"description":   updates.Description,
			"priority":      updates.Priority,
			"due_date":      updates.DueDate,
			"time_estimate": updates.TimeEstimate,
			"tags":          updates.Tags,
			"checklist":     updates.Checklist,
			"updated_at":    time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return ErrNotFound
	}
	return nil
}

// CompleteTodo moves an active todo to completed. The status check rides in
// the filter, so completing twice reports the conflict instead of double
// counting.
func (r *TodosRepo) CompleteTodo(ctx context.Context, todoID, userID string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": todoID, "user_id": userID, "status": model.TodoActive}
	update := bson.M{"$set": bson.M{"status": model.TodoCompleted, "updated_at": time.Now()}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo model.Todo
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyCompleteFailure(ctx, todoID, userID)
		}
		utils.TrackError("database", "todo_update_failed")
		return nil, err
	}

	utils.TrackCompletion("todo")
	return &todo, nil
}

// classifyCompleteFailure distinguishes a missing todo from one already
// completed after the filtered update matched nothing.
func (r *TodosRepo) classifyCompleteFailure(ctx context.Context, todoID, userID string) error {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"_id": todoID, "user_id": userID})
	if err != nil {
		return err
	}
	if count == 0 {
		utils.TrackError("database", "todo_not_found")
		return ErrNotFound
	}
	return ErrAlreadyCompleted
}

// SetChecklistItem flips one checklist entry of a todo
func (r *TodosRepo) SetChecklistItem(ctx context.Context, todoID, userID, itemID string, completed bool) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": todoID, "user_id": userID, "checklist.id": itemID}
	update := bson.M{
		"$set": bson.M{
			"checklist.$.completed": completed,
			"updated_at":            time.Now(),
		},
	}
	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Removes a specific todo from database
func (r *TodosRepo) DeleteTodo(ctx context.Context, todoID, userID string) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": todoID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return ErrNotFound
	}
	return nil
}
