package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rattananon/product-store-api/internal/model"
	"github.com/rattananon/product-store-api/internal/repository"
)

// UserUsecase defines profile operations for an authenticated user.
type UserUsecase interface {
	GetProfile(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email string, params UpdateProfileParams) (*model.User, error)
	DeleteAccount(ctx context.Context, email string) error
}

// UpdateProfileParams defines the optional profile fields to update.
// Only the fields that are not nil will be updated.
type UpdateProfileParams struct {
	FullName  *string
	Bio       *string
	AvatarURL *string
}

// ErrNothingToUpdate is returned when an update request carries no fields.
var ErrNothingToUpdate = errors.New("nothing to update")

type userUsecase struct {
	users repository.UserRepository
}

// NewUserUsecase creates the profile usecase.
func NewUserUsecase(users repository.UserRepository) UserUsecase {
	return &userUsecase{users: users}
}

func (u *userUsecase) GetProfile(ctx context.Context, email string) (*model.User, error) {
	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (u *userUsecase) DeleteAccount(ctx context.Context, email string) error {
	if err := u.users.DeleteUserByEmail(ctx, email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}

		return err
	}

	return nil
}

func (u *userUsecase) UpdateProfile(
	ctx context.Context,
	email string,
	params UpdateProfileParams,
) (*model.User, error) {
	if params.FullName == nil && params.Bio == nil && params.AvatarURL == nil {
		return nil, ErrNothingToUpdate
	}

	user, err := u.users.UpdateUserByEmail(ctx, email, repository.UpdateUserParams{
		FullName:  params.FullName,
		Bio:       params.Bio,
		AvatarURL: params.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
