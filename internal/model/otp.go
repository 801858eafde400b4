package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OTP is a one-time passcode challenge. There is at most one live record per
// email: a new code overwrites the previous one.
type OTP struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Code      string        `bson:"code"`
	ExpiresAt time.Time     `bson:"expires_at"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
