package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/sagip-ph/sagip-api/consts"
	"github.com/sagip-ph/sagip-api/schema"
)

var (
	ErrRequestNotExist     = fmt.Errorf("the request is either answered or not open for you")
	ErrMultipleRequestMade = fmt.Errorf("making multiple requests is not allowed")
)

// RequestRescue create a rescue entry. The partial unique index on
// requester allows one open request per device.
func (s *SagipStore) RequestRescue(deviceID, subject, details, contactInfo string, latitude, longitude float64) (*schema.RescueRequest, error) {
	rescue := schema.RescueRequest{
		Requester:   deviceID,
		Subject:     subject,
		Details:     details,
		ContactInfo: contactInfo,
		Latitude:    latitude,
		Longitude:   longitude,
	}

	if err := s.ormDB.Create(&rescue).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrMultipleRequestMade
		}
		return nil, err
	}
	return &rescue, nil
}

// ListRescues first queries devices last seen within 5KM and returns the
// rescue requests those devices made
func (s *SagipStore) ListRescues(deviceID string, latitude, longitude float64) ([]schema.RescueRequest, error) {
	rescues := []schema.RescueRequest{}

	devices, err := s.mongo.NearbyDevices(consts.NEARBY_DISTANCE_RANGE, schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		return nil, err
	}

	if err := s.ormDB.Raw(
		`SELECT * FROM rescue_requests
		JOIN unnest(?::text[]) WITH ORDINALITY device(requester, index) USING (requester)
		WHERE (requester = ? OR responder = ? OR state = ?) AND created_at > now() - INTERVAL '24 hours'
		ORDER BY device.index, state;`, // HARDCODED: 24 hours of expiration
		pq.Array(devices),
		deviceID,
		deviceID,
		schema.RESCUE_PENDING,
	).Scan(&rescues).Error; err != nil {
		return nil, err
	}

	return rescues, nil
}

func (s *SagipStore) GetRescue(rescueID string) (*schema.RescueRequest, error) {
	var rescue schema.RescueRequest

	if err := s.ormDB.Where("id = ?", rescueID).First(&rescue).Error; err != nil {
		return nil, err
	}

	return &rescue, nil
}

// AnswerRescue set a request to `RESPONDED`. A request could be updated only
// when its state is `PENDING` and the responder is not the same as the
// requester.
func (s *SagipStore) AnswerRescue(deviceID string, rescueID string) error {
	result := s.ormDB.Model(schema.RescueRequest{}).
		Where("id = ? AND requester != ? AND state = ?", rescueID, deviceID, schema.RESCUE_PENDING).
		Updates(map[string]interface{}{
			"state":     schema.RESCUE_RESPONDED,
			"responder": deviceID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// ExpireRescues expires rescue requests that are older than 24 hours
func (s *SagipStore) ExpireRescues() error {
	return s.ormDB.Model(schema.RescueRequest{}).Set("gorm:query_option", "FOR UPDATE").
		Where("state = ? AND created_at <= now() - interval '24 hours'", schema.RESCUE_PENDING).
		Update("state", schema.RESCUE_EXPIRED).Error
}
