package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/rattananon/product-store-api/internal/model"
)

// OTPRepository defines the persistence operations for one-time passcodes.
type OTPRepository interface {
	// GetOTP retrieves the live passcode record for an email.
	GetOTP(ctx context.Context, email string) (*model.OTP, error)

	// UpsertOTP stores a passcode for an email, overwriting any prior record.
	UpsertOTP(ctx context.Context, email, code string, expiresAt time.Time) error

	// DeleteOTP removes the passcode record for an email.
	DeleteOTP(ctx context.Context, email string) error
}

const otpCollection = "otps"

type otpMongoRepository struct {
	db *mongo.Database
}

// NewOTPMongoRepository creates the Mongo-backed OTP repository. The unique
// index on email makes the upsert overwrite semantics hold under concurrency;
// the TTL index reaps expired records so lazy deletion cannot accumulate.
func NewOTPMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) OTPRepository {
	collection := db.Collection(otpCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create otp indexes")
	}

	return &otpMongoRepository{db: db}
}

func (r *otpMongoRepository) GetOTP(ctx context.Context, email string) (*model.OTP, error) {
	result := r.db.Collection(otpCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var otp model.OTP
	if err := result.Decode(&otp); err != nil {
		return nil, err
	}

	return &otp, nil
}

func (r *otpMongoRepository) UpsertOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"code":       code,
			"expires_at": expiresAt,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	_, err := r.db.Collection(otpCollection).UpdateOne(
		ctx,
		bson.M{"email": email},
		update,
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *otpMongoRepository) DeleteOTP(ctx context.Context, email string) error {
	_, err := r.db.Collection(otpCollection).DeleteOne(ctx, bson.M{"email": email})
	return err
}
