// Package qrcode renders share codes for reminders.
package qrcode

import (
	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a service producing size x size PNGs. The level is
// one of L, M, Q or H and falls back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateReminderQR encodes the reminder's geo URI so any maps app can open it.
func (s *qrcodeService) GenerateReminderQR(reminder *entity.Reminder) ([]byte, error) {
	if reminder == nil {
		return nil, errors.New("reminder is required")
	}

	code, err := qrcode.New(reminder.GeoURI(), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
