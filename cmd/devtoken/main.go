// Command devtoken prints an HS256 bearer token accepted by the API when
// auth.provider is "jwt".
//
//	devtoken -uid user-1 -email user@example.com -ttl 24h
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"reminders/config"
	"reminders/internal/domain/entity"
	"reminders/internal/infra/auth"

	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, config.New); err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, loadConfig func() (*config.Config, error)) error {
	cmd := flag.NewFlagSet("devtoken", flag.ContinueOnError)
	uid := cmd.String("uid", "", "User id placed in the token subject")
	email := cmd.String("email", "", "Optional email claim")
	name := cmd.String("name", "", "Optional display name claim")
	ttl := cmd.Duration("ttl", 24*time.Hour, "Token lifetime")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if *uid == "" {
		return errors.New("-uid is required")
	}
	if *ttl <= 0 {
		return errors.New("-ttl must be positive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Auth.Provider != config.AuthProviderJWT {
		return errors.Errorf("auth.provider is %q, dev tokens need %q", cfg.Auth.Provider, config.AuthProviderJWT)
	}

	token, err := auth.SignToken(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, entity.AuthUser{
		UID:         *uid,
		Email:       *email,
		DisplayName: *name,
	}, *ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)

	return errors.WithStack(err)
}
