package usecase

import (
	"context"

	"reminders/internal/domain/entity"
)

// AuthState is the sign-in state of a caller and the screen it should show.
type AuthState struct {
	State entity.AuthenticationState `json:"state"`
	Route string                     `json:"route"`
	User  *entity.AuthUser           `json:"user,omitempty"`
}

// AuthUsecase resolves bearer tokens.
type AuthUsecase interface {
	// AuthenticationState never fails. A missing or invalid token is simply
	// unauthenticated.
	AuthenticationState(ctx context.Context, bearer string) *AuthState

	// Authenticate returns the user behind the token or ErrAuthenticationFailed.
	Authenticate(ctx context.Context, bearer string) (*entity.AuthUser, error)
}
