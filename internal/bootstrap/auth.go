package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/taskhive/taskhive-api/config"
	"github.com/taskhive/taskhive-api/internal/adapters/devauth"
	"github.com/taskhive/taskhive-api/internal/adapters/googleid"
	redisadapter "github.com/taskhive/taskhive-api/internal/adapters/redis"
	"github.com/taskhive/taskhive-api/internal/adapters/sessiontoken"
	"github.com/taskhive/taskhive-api/internal/ports"
	"github.com/taskhive/taskhive-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth  config.AuthConfig
	Repos service.AuthRepos

	// RedisClient backs the token denylist. Optional; when nil, logout
	// is client-local and issued tokens stay valid until expiry.
	RedisClient redis.UniversalClient

	Logger *slog.Logger
}

// BuildAuthService wires the identity verifier, session token codec, and
// token denylist for the configured auth mode.
func BuildAuthService(ctx context.Context, cfg AuthConfig) (*service.AuthService, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Auth.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	codec, err := sessiontoken.NewCodec(sessiontoken.Config{
		Secret: []byte(cfg.Auth.Session.Secret),
		TTL:    cfg.Auth.Session.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("create session token codec: %w", err)
	}

	verifier, err := buildVerifier(ctx, cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	var denylist ports.TokenDenylist
	if cfg.RedisClient != nil {
		denylist = redisadapter.NewTokenDenylist(cfg.RedisClient)
	} else {
		logger.Info("token denylist disabled: logout is client-local until tokens expire")
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Verifier: verifier,
		Tokens:   codec,
		Repos:    cfg.Repos,
		Denylist: denylist,
	}), nil
}

//nolint:ireturn // the verifier implementation depends on the configured auth mode.
func buildVerifier(ctx context.Context, cfg config.AuthConfig, logger *slog.Logger) (ports.IdentityVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeMock:
		logger.Warn("mock auth enabled: any credential signs in as the configured dev identity",
			"email", cfg.DevAuth.Email)
		verifier, err := devauth.NewVerifier(devauth.Config{
			Email:   cfg.DevAuth.Email,
			Name:    cfg.DevAuth.Name,
			Picture: cfg.DevAuth.Picture,
		})
		if err != nil {
			return nil, fmt.Errorf("create dev verifier: %w", err)
		}
		return verifier, nil

	case config.AuthModeOAuth:
		if cfg.Google.ClientID == "" {
			return nil, errors.New("GOOGLE_CLIENT_ID is required when AUTH_MODE=oauth")
		}
		verifier, err := googleid.NewVerifier(ctx, googleid.Config{
			ClientID: cfg.Google.ClientID,
		})
		if err != nil {
			return nil, fmt.Errorf("create google verifier: %w", err)
		}
		return verifier, nil

	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Mode)
	}
}
