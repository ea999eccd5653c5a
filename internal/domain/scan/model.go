package scan

import (
	"time"

	"github.com/google/uuid"
)

type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

// Event is one recorded scan. Events are only ever appended.
type Event struct {
	ID         uuid.UUID  `json:"id"`
	QRCodeID   uuid.UUID  `json:"qr_code_id"`
	IPHash     string     `json:"ip_hash"`
	DeviceType DeviceType `json:"device_type"`
	OS         string     `json:"os"`
	Browser    string     `json:"browser"`
	Referrer   string     `json:"referrer"`
	ScannedAt  time.Time  `json:"scanned_at"`
}

// Metadata is the part of an inbound request the recorder needs.
type Metadata struct {
	ForwardedFor string
	RealIP       string
	UserAgent    string
	Referrer     string
}
