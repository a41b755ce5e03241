// Package firebase initializes the Firebase Admin SDK app shared by the
// messaging and auth clients.
package firebase

import (
	"context"

	"reminders/config"
	"reminders/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp creates the Firebase app. With no credentials path the SDK falls
// back to application default credentials.
func NewApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// Provide builds the app when a firebase section is configured and returns
// nil otherwise. Consumers fall back to local implementations on nil.
func Provide(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	return NewApp(ctx, cfg.Firebase)
}
