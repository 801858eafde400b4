package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/rattananon/product-store-api/internal/audit"
	"github.com/rattananon/product-store-api/internal/auth"
	"github.com/rattananon/product-store-api/internal/clock"
	"github.com/rattananon/product-store-api/internal/config"
	"github.com/rattananon/product-store-api/internal/handler"
	"github.com/rattananon/product-store-api/internal/mailer"
	"github.com/rattananon/product-store-api/internal/ratelimit"
	"github.com/rattananon/product-store-api/internal/repository"
	"github.com/rattananon/product-store-api/internal/usecase"
	"github.com/rattananon/product-store-api/internal/validate"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}
	logger.Info().Str("db", cfg.MongoDBName).Msg("connected to mongodb")

	db := client.Database(cfg.MongoDBName)

	indexCtx, cancelIndex := context.WithTimeout(ctx, 30*time.Second)
	defer cancelIndex()

	userRepo := repository.NewUserMongoRepository(indexCtx, &logger, db)
	otpRepo := repository.NewOTPMongoRepository(indexCtx, &logger, db)
	productRepo := repository.NewProductMongoRepository(db)

	clk := clock.New()

	tokens := auth.NewTokenAuthenticator(
		cfg.TokenSecret,
		cfg.TokenIssuer,
		cfg.TokenIssuer,
		cfg.TokenExpiresIn,
		clk,
	)

	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender = mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		logger.Warn().Msg("SMTP not configured; otp codes will not be delivered by email")
	}

	var verifyLimiter *ratelimit.Limiter
	if cfg.OTPVerifyRateLimit > 0 {
		verifyLimiter = ratelimit.New(cfg.OTPVerifyRateLimit, cfg.OTPVerifyRateWindow, clk)
	}

	authUsecase := usecase.NewAuthUsecase(usecase.AuthDeps{
		Users:         userRepo,
		OTPs:          otpRepo,
		Tokens:        tokens,
		OTPLimiter:    ratelimit.New(cfg.OTPRateLimit, cfg.OTPRateWindow, clk),
		VerifyLimiter: verifyLimiter,
		Mailer:        sender,
		Clock:         clk,
		Logger:        &logger,
	}, cfg.OTPLength, cfg.OTPExpiresIn)

	userUsecase := usecase.NewUserUsecase(userRepo)
	productUsecase := usecase.NewProductUsecase(productRepo, audit.NewZerologRecorder(&logger))

	validator, err := validate.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build validator")
	}

	h := handler.New(authUsecase, userUsecase, productUsecase, validator, &logger)

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}
}
