package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"reminders/config"
	"reminders/internal/errors"
	"reminders/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Dispatcher *Dispatcher
	Logger     *slog.Logger
}

// PushHandler receives Pub/Sub push deliveries, from Google or from the local
// HTTP emulation.
type PushHandler struct {
	cfg        *config.WorkerConfig
	dispatcher *Dispatcher
	logger     *slog.Logger
	validate   func(r *http.Request, audience string) (*idtoken.Payload, error)
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.Worker
	if cfg == nil {
		cfg = &config.WorkerConfig{}
	}

	return &PushHandler{
		cfg:        cfg,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
		validate:   validateGoogleToken,
	}
}

// HandlePush acknowledges every well-formed message with 200 so Pub/Sub never
// redelivers it. A malformed envelope gets 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.cfg.VerifyPushToken {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push pubsub.PushMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	attrs := func(key string) string { return push.Message.Attributes[key] }
	if err := h.dispatcher.Dispatch(c.Request().Context(), attrs, data); err != nil {
		h.logger.Error("[Worker] Dropping message",
			slog.String("message_id", push.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	return c.NoContent(http.StatusOK)
}

// verify checks the OIDC token Google attaches to authenticated push requests.
func (h *PushHandler) verify(req *http.Request) error {
	audience := h.cfg.PushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validate(req, audience)
	if err != nil {
		return err
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}
	if want := h.cfg.PushServiceAccount; want != "" {
		if email, _ := payload.Claims["email"].(string); email != want {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}

func validateGoogleToken(req *http.Request, audience string) (*idtoken.Payload, error) {
	header := req.Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, errors.New("missing bearer token")
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate token")
	}

	return payload, nil
}
