package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rattananon/product-store-api/internal/auth"
	"github.com/rattananon/product-store-api/internal/clock"
	"github.com/rattananon/product-store-api/internal/mailer"
	"github.com/rattananon/product-store-api/internal/model"
	"github.com/rattananon/product-store-api/internal/ratelimit"
	"github.com/rattananon/product-store-api/internal/repository"
	"github.com/rattananon/product-store-api/internal/security"
)

// AuthUsecase defines the authentication and credential-lifecycle core:
// registration, login, OTP generation and verification, and bearer-token
// resolution.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, params LoginParams) (string, error)
	GenerateOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, email, code string) error
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Bio      string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// Expected, recoverable outcomes. Everything else that comes out of this
// package is an infrastructure fault and must not be conflated with these.
var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrOTPInvalidOrExpired = errors.New("invalid or expired otp")
	ErrUnauthenticated     = errors.New("unauthenticated")
)

// AuthDeps are the collaborators of the auth core. Mailer may be nil, in which
// case generated codes are not delivered by email. VerifyLimiter may be nil,
// which leaves OTP verification attempts unlimited (the source behavior).
type AuthDeps struct {
	Users         repository.UserRepository
	OTPs          repository.OTPRepository
	Tokens        *auth.TokenAuthenticator
	OTPLimiter    *ratelimit.Limiter
	VerifyLimiter *ratelimit.Limiter
	Mailer        mailer.Sender
	Clock         clock.Clock
	Logger        *zerolog.Logger
}

type authUsecase struct {
	deps      AuthDeps
	otpLength int
	otpTTL    time.Duration
}

// NewAuthUsecase creates the auth core. otpLength is the number of digits in
// generated passcodes; otpTTL is how long a passcode stays valid.
func NewAuthUsecase(deps AuthDeps, otpLength int, otpTTL time.Duration) AuthUsecase {
	return &authUsecase{
		deps:      deps,
		otpLength: otpLength,
		otpTTL:    otpTTL,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.deps.Users.CreateUser(ctx, &model.User{
		Email:        params.Email,
		PasswordHash: passwordHash,
		FullName:     params.FullName,
		Bio:          params.Bio,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			u.deps.Logger.Warn().Str("email", params.Email).Msg("registration rejected: email taken")
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.deps.Users.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Indistinguishable from a wrong password at the boundary.
			u.deps.Logger.Warn().Str("email", params.Email).Msg("login rejected: unknown email")
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if !security.VerifyPassword(params.Password, user.PasswordHash) {
		u.deps.Logger.Warn().Str("email", params.Email).Msg("login rejected: password mismatch")
		return "", ErrInvalidCredentials
	}

	return u.deps.Tokens.Issue(user.Email)
}

func (u *authUsecase) GenerateOTP(ctx context.Context, email string) (string, error) {
	if _, err := u.deps.Users.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrUserNotFound
		}

		return "", err
	}

	if !u.deps.OTPLimiter.Allow(email) {
		u.deps.Logger.Warn().Str("email", email).Msg("otp generation rate limited")
		return "", ErrRateLimited
	}

	code, err := security.GenerateNumericCode(u.otpLength)
	if err != nil {
		return "", err
	}

	expiresAt := u.deps.Clock.Now().Add(u.otpTTL)
	if err := u.deps.OTPs.UpsertOTP(ctx, email, code, expiresAt); err != nil {
		return "", err
	}

	if u.deps.Mailer != nil {
		// Delivery failure does not invalidate the stored code; the user can
		// request another one within the rate limit.
		if err := u.deps.Mailer.SendOTP(email, code, u.otpTTL); err != nil {
			u.deps.Logger.Error().Err(err).Str("email", email).Msg("failed to deliver otp email")
		}
	}

	return code, nil
}

func (u *authUsecase) VerifyOTP(ctx context.Context, email, code string) error {
	if u.deps.VerifyLimiter != nil && !u.deps.VerifyLimiter.Allow(email) {
		u.deps.Logger.Warn().Str("email", email).Msg("otp verification rate limited")
		return ErrRateLimited
	}

	record, err := u.deps.OTPs.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			u.deps.Logger.Warn().Str("email", email).Msg("otp verification failed: no challenge")
			return ErrOTPInvalidOrExpired
		}

		return err
	}

	if record.Code != code {
		u.deps.Logger.Warn().Str("email", email).Msg("otp verification failed: code mismatch")
		return ErrOTPInvalidOrExpired
	}

	// An expired record that has not been reaped yet must behave exactly as
	// if it were absent.
	if u.deps.Clock.Now().After(record.ExpiresAt) {
		u.deps.Logger.Warn().Str("email", email).Msg("otp verification failed: code expired")
		return ErrOTPInvalidOrExpired
	}

	if err := u.deps.OTPs.DeleteOTP(ctx, email); err != nil {
		return err
	}

	return nil
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (*model.User, error) {
	subject, err := u.deps.Tokens.Resolve(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := u.deps.Users.GetUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Subject deleted after the token was issued.
			return nil, ErrUnauthenticated
		}

		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
