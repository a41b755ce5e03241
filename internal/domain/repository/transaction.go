package repository

import "context"

// TransactionManager runs repository work atomically without exposing the
// database driver to the use case layer.
type TransactionManager interface {
	// Execute runs fn inside one transaction. An error from fn rolls it back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewReminderRepository() ReminderRepository
	NewDeviceRepository() DeviceRepository
	NewNotificationLogRepository() NotificationLogRepository
}
