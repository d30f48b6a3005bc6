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

type MongoRecipeRepository struct {
	collection *mongo.Collection
}

func NewMongoRecipeRepository(db *mongo.Database) *MongoRecipeRepository {
	return &MongoRecipeRepository{
		collection: db.Collection("recipes"),
	}
}

func (r *MongoRecipeRepository) Create(ctx context.Context, recipe *domain.SavedRecipe) error {
	recipe.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, recipe)
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = domain.RecipeID(oid.Hex())
	}
	return nil
}

func (r *MongoRecipeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SavedRecipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := []*domain.SavedRecipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *MongoRecipeRepository) Delete(ctx context.Context, userID string, id domain.RecipeID) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}
