package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	RESCUE_PENDING   = "PENDING"
	RESCUE_RESPONDED = "RESPONDED"
	RESCUE_EXPIRED   = "EXPIRED"
)

type RescueRequest struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Requester   string    `json:"requester"`
	Responder   string    `json:"responder"`
	Subject     string    `json:"subject"`
	Details     string    `json:"details"`
	ContactInfo string    `json:"contact_info"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	State       string    `json:"state" sql:"default:'PENDING'"`
	CreatedAt   time.Time `json:"created_at"`
}
