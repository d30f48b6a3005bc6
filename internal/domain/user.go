package domain

import (
	"context"
	"time"
)

// User is the authenticated identity. Authentication happens against
// Firebase; the service keeps its own user record keyed by Firebase UID.
type User struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	FirebaseUID string    `bson:"firebase_uid" json:"firebase_uid"`
	Email       string    `bson:"email" json:"email"`
	Name        string    `bson:"name" json:"name"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateFirebaseUID links a pre-provisioned user to a Firebase account.
	UpdateFirebaseUID(ctx context.Context, id string, firebaseUID string) error
}
