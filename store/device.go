package store

import (
	"github.com/sagip-ph/sagip-api/schema"
)

// RegisterDevice is to register a device into the sagip system. An id that
// is already registered has its push token and language refreshed instead.
func (s *SagipStore) RegisterDevice(deviceID, pushToken, platform, language string) (*schema.Device, error) {
	d := schema.Device{
		DeviceID:  deviceID,
		PushToken: pushToken,
		Platform:  platform,
		Language:  language,
	}

	if err := s.ormDB.Where(schema.Device{DeviceID: deviceID}).Assign(schema.Device{
		PushToken: pushToken,
		Platform:  platform,
		Language:  language,
	}).FirstOrCreate(&d).Error; err != nil {
		return nil, err
	}

	return &d, nil
}

// GetDevice returns a device instance of a given device id
func (s *SagipStore) GetDevice(deviceID string) (*schema.Device, error) {
	var d schema.Device
	if err := s.ormDB.Where("device_id = ?", deviceID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDevicePresence forwards the latest reported location into the
// presence collection.
func (s *SagipStore) UpdateDevicePresence(deviceID string, latitude, longitude float64) error {
	return s.mongo.UpsertPresence(deviceID, latitude, longitude)
}

// DeleteDevice removes a device from our system permanently
func (s *SagipStore) DeleteDevice(deviceID string) error {
	return s.ormDB.Delete(schema.Device{}, "device_id = ?", deviceID).Error
}
