package service

import (
	"context"

	"reminders/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier turns a bearer token into the signed-in user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.AuthUser, error)
}
