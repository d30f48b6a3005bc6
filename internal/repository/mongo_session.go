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

type MongoSessionRepository struct {
	collection *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{
		collection: db.Collection("workout_sessions"),
	}
}

func (r *MongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) error {
	if session.PerformedAt.IsZero() {
		session.PerformedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		session.ID = domain.SessionID(oid.Hex())
	}
	return nil
}

func (r *MongoSessionRepository) GetByID(ctx context.Context, userID string, id domain.SessionID) (*domain.WorkoutSession, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var session domain.WorkoutSession
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *MongoSessionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.WorkoutSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "performed_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*domain.WorkoutSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *MongoSessionRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.WorkoutSession, error) {
	filter := bson.M{
		"user_id":      userID,
		"performed_at": bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "performed_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*domain.WorkoutSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *MongoSessionRepository) Delete(ctx context.Context, userID string, id domain.SessionID) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
