// Package auth provides concrete implementations of the token verifier.
package auth

import (
	"context"
	"time"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtVerifier validates HS256 tokens signed with a shared secret. It stands
// in for Firebase during local development.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// Claims carried by development tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTVerifier creates a verifier for the given secret. An empty issuer
// disables the issuer check.
func NewJWTVerifier(secret, issuer string) (service.TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{secret: []byte(secret), issuer: issuer}, nil
}

// VerifyToken parses the token and maps its subject to the user id.
func (v *jwtVerifier) VerifyToken(_ context.Context, tokenString string) (*entity.AuthUser, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, errMessage(err))
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "missing subject")
	}

	return &entity.AuthUser{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}

// SignToken issues a development token for user. cmd/devtoken prints one.
func SignToken(secret, issuer string, user entity.AuthUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Name:  user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

func errMessage(err error) string {
	if err == nil {
		return "token not valid"
	}

	return err.Error()
}
