package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/taskhive/taskhive-api/config"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/internal/service"
	"go.uber.org/mock/gomock"
)

func testAuthRepos(t *testing.T) service.AuthRepos {
	t.Helper()
	ctrl := gomock.NewController(t)
	return service.AuthRepos{
		Users:   mocks.NewMockUserRepository(ctrl),
		History: mocks.NewMockLoginHistoryRepository(ctrl),
	}
}

func TestBuildAuthServiceMockMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := BuildAuthService(context.Background(), AuthConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeMock,
			Session: config.SessionConfig{
				Secret: "test-secret",
			},
			DevAuth: config.DevAuthConfig{
				Email: "dev@example.com",
				Name:  "Dev User",
			},
		},
		Repos:  testAuthRepos(t),
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("BuildAuthService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("BuildAuthService() = nil, want service")
	}
}

func TestBuildAuthServiceErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		auth    config.AuthConfig
		wantErr string
	}{
		{
			name: "missing session secret",
			auth: config.AuthConfig{
				Mode:    config.AuthModeMock,
				DevAuth: config.DevAuthConfig{Email: "dev@example.com"},
			},
			wantErr: "SESSION_SECRET",
		},
		{
			name: "oauth mode without client id",
			auth: config.AuthConfig{
				Mode:    config.AuthModeOAuth,
				Session: config.SessionConfig{Secret: "test-secret"},
			},
			wantErr: "GOOGLE_CLIENT_ID",
		},
		{
			name: "unsupported mode",
			auth: config.AuthConfig{
				Mode:    config.AuthMode("saml"),
				Session: config.SessionConfig{Secret: "test-secret"},
			},
			wantErr: "unsupported auth mode",
		},
		{
			name: "mock mode without dev email",
			auth: config.AuthConfig{
				Mode:    config.AuthModeMock,
				Session: config.SessionConfig{Secret: "test-secret"},
			},
			wantErr: "dev verifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := BuildAuthService(context.Background(), AuthConfig{
				Auth:   tt.auth,
				Repos:  testAuthRepos(t),
				Logger: logger,
			})
			if err == nil {
				t.Fatalf("BuildAuthService() = %v, want error containing %q", svc, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("BuildAuthService() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
