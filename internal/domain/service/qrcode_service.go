package service

import "reminders/internal/domain/entity"

// QRCodeService renders QR codes for sharing reminders.
type QRCodeService interface {
	// GenerateReminderQR encodes the reminder's location as a PNG QR code.
	GenerateReminderQR(reminder *entity.Reminder) ([]byte, error)
}
