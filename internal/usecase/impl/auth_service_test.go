package impl

import (
	"context"
	"testing"

	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/service"
	mockService "reminders/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := &entity.AuthUser{UID: "user-1", Email: "user@example.com"}

	tests := []struct {
		name    string
		bearer  string
		token   string
		verify  bool
		wantErr bool
	}{
		{name: "bearer header", bearer: "Bearer abc", token: "abc", verify: true},
		{name: "lower-case scheme", bearer: "bearer abc", token: "abc", verify: true},
		{name: "raw token", bearer: "abc", token: "abc", verify: true},
		{name: "empty", bearer: "", wantErr: true},
		{name: "scheme only", bearer: "Bearer ", wantErr: true},
		{name: "scheme only trimmed", bearer: "Bearer", wantErr: true},
		{name: "upper-case scheme only", bearer: "BEARER", wantErr: true},
		{name: "padded header", bearer: "  Bearer   abc  ", token: "abc", verify: true},
		{name: "extra fields", bearer: "Bearer abc def", wantErr: true},
		{name: "rejected", bearer: "Bearer bad", token: "bad", verify: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockService.NewMockTokenVerifier(t)
			if tt.verify {
				if tt.wantErr {
					verifier.EXPECT().VerifyToken(ctx, tt.token).Return(nil, service.ErrInvalidToken)
				} else {
					verifier.EXPECT().VerifyToken(ctx, tt.token).Return(user, nil)
				}
			}

			got, err := NewAuthService(verifier, newTestLogger()).Authenticate(ctx, tt.bearer)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestAuthService_AuthenticationState(t *testing.T) {
	ctx := context.Background()
	verifier := mockService.NewMockTokenVerifier(t)
	svc := NewAuthService(verifier, newTestLogger())

	verifier.EXPECT().VerifyToken(ctx, "good").Return(&entity.AuthUser{UID: "user-1"}, nil)

	state := svc.AuthenticationState(ctx, "Bearer good")
	assert.Equal(t, entity.Authenticated, state.State)
	assert.Equal(t, "reminders", state.Route)
	assert.Equal(t, "user-1", state.User.UID)

	state = svc.AuthenticationState(ctx, "")
	assert.Equal(t, entity.Unauthenticated, state.State)
	assert.Equal(t, "sign_in", state.Route)
	assert.Nil(t, state.User)
}
