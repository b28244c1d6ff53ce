package store

import (
	"github.com/jinzhu/gorm"

	"github.com/sagip-ph/sagip-api/schema"
)

// sagip main datastore
type SagipCore interface {
	Ping() error

	// Device
	RegisterDevice(deviceID, pushToken, platform, language string) (*schema.Device, error)
	GetDevice(deviceID string) (*schema.Device, error)
	UpdateDevicePresence(deviceID string, latitude, longitude float64) error
	DeleteDevice(deviceID string) error

	// Rescue
	RequestRescue(deviceID, subject, details, contactInfo string, latitude, longitude float64) (*schema.RescueRequest, error)
	GetRescue(rescueID string) (*schema.RescueRequest, error)
	ListRescues(deviceID string, latitude, longitude float64) ([]schema.RescueRequest, error)
	AnswerRescue(deviceID string, rescueID string) error
	ExpireRescues() error
}

// SagipStore is an implementation of SagipCore
type SagipStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewSagipStore(ormDB *gorm.DB, mongo MongoStore) *SagipStore {
	return &SagipStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *SagipStore) Ping() error {
	return s.ormDB.DB().Ping()
}
