package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/maxgads/gymmax/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoFoodEntryRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodEntryRepository(db *mongo.Database) *MongoFoodEntryRepository {
	return &MongoFoodEntryRepository{
		collection: db.Collection("food_entries"),
	}
}

func (r *MongoFoodEntryRepository) Create(ctx context.Context, entry *domain.FoodEntry) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to create food entry: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = domain.EntryID(oid.Hex())
	}
	return nil
}

func (r *MongoFoodEntryRepository) ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*domain.FoodEntry, error) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return r.ListByUserAndRange(ctx, userID, start, end)
}

func (r *MongoFoodEntryRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.FoodEntry, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*domain.FoodEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *MongoFoodEntryRepository) Update(ctx context.Context, entry *domain.FoodEntry) error {
	oid, err := primitive.ObjectIDFromHex(string(entry.ID))
	if err != nil {
		return domain.ErrInvalidID
	}

	// Date and quantity are preserved on edit.
	update := bson.M{
		"$set": bson.M{
			"food_name": entry.FoodName,
			"calories":  entry.Calories,
			"macros":    entry.Macros,
			"meal_type": entry.MealType,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid, "user_id": entry.UserID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *MongoFoodEntryRepository) Delete(ctx context.Context, userID string, id domain.EntryID) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
