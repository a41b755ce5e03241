package auth

import (
	"context"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier verifies Firebase ID tokens issued to the mobile app.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase Auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (*entity.AuthUser, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return &entity.AuthUser{
		UID:         decoded.UID,
		Email:       claimString(decoded.Claims, "email"),
		DisplayName: claimString(decoded.Claims, "name"),
	}, nil
}

func claimString(claims map[string]any, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}

	return ""
}
