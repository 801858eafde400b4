package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account. The email is unique across the
// collection and is the key every authentication operation works with.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	FullName     string        `bson:"full_name,omitempty"`
	Bio          string        `bson:"bio,omitempty"`
	AvatarURL    string        `bson:"avatar_url,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}
