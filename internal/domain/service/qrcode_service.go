package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCatQR generates a QR code for sharing a shelter cat
	GenerateCatQR(catID uuid.UUID) ([]byte, error)

	// ParseCatQR parses QR code data and returns the cat ID
	ParseCatQR(qrData string) (uuid.UUID, error)
}
