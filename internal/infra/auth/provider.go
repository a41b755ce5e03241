package auth

import (
	"context"
	"log/slog"

	"reminders/config"
	"reminders/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
)

// NewTokenVerifier selects the verifier named by auth.provider.
func NewTokenVerifier(ctx context.Context, cfg *config.Config, app *firebase.App, logger *slog.Logger) (service.TokenVerifier, error) {
	switch cfg.Auth.Provider {
	case config.AuthProviderJWT:
		logger.Info("Using shared-secret JWT verifier")

		return NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	case config.AuthProviderFirebase:
		if app == nil {
			return nil, errors.New("firebase auth provider requires a firebase section")
		}

		return NewFirebaseVerifier(ctx, app)
	default:
		return nil, errors.Errorf("unsupported auth provider: %s", cfg.Auth.Provider)
	}
}
