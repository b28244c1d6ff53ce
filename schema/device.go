package schema

import (
	"time"
)

// Device - a registered client installation, identified by the uuid the
// client generated on first launch
type Device struct {
	DeviceID  string    `json:"device_id" gorm:"primary_key"`
	PushToken string    `json:"push_token"`
	Platform  string    `json:"platform"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
