package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/service"
	"reminders/internal/usecase"
)

const bearerScheme = "bearer"

type authService struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthService creates the sign-in gate.
func NewAuthService(verifier service.TokenVerifier, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{verifier: verifier, logger: logger}
}

func (s *authService) AuthenticationState(ctx context.Context, bearer string) *usecase.AuthState {
	user, err := s.Authenticate(ctx, bearer)
	if err != nil {
		return &usecase.AuthState{
			State: entity.Unauthenticated,
			Route: entity.Unauthenticated.Route(),
		}
	}

	return &usecase.AuthState{
		State: entity.Authenticated,
		Route: entity.Authenticated.Route(),
		User:  user,
	}
}

// Authenticate accepts either a raw token or an Authorization header value.
func (s *authService) Authenticate(ctx context.Context, bearer string) (*entity.AuthUser, error) {
	token := parseBearer(bearer)
	if token == "" {
		return nil, domainerrors.ErrAuthenticationFailed
	}

	user, err := s.verifier.VerifyToken(ctx, token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrAuthenticationFailed
	}

	return user, nil
}

// parseBearer strips an optional Bearer scheme. A header carrying only the
// scheme yields an empty token.
func parseBearer(bearer string) string {
	fields := strings.Fields(bearer)
	switch {
	case len(fields) == 0:
		return ""
	case strings.EqualFold(fields[0], bearerScheme):
		if len(fields) != 2 {
			return ""
		}

		return fields[1]
	case len(fields) == 1:
		return fields[0]
	default:
		return ""
	}
}
