package notification

import (
	"context"
	"log/slog"

	"reminders/internal/domain/service"

	"github.com/google/uuid"
)

// logService stands in for FCM when Firebase is not configured. Every push
// is logged and reported as delivered.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that only logs.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	s.logger.InfoContext(ctx, "[LogNotification] Push",
		slog.String("token", token),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return "log-" + uuid.NewString(), nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "[LogNotification] Multicast push",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return len(tokens), 0, nil, nil
}
