package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sagip-ph/sagip-api/schema"
)

const (
	presenceUpdateInterval = 5 * time.Minute
)

// Presence - operations for device last-seen locations
type Presence interface {
	UpsertPresence(deviceID string, latitude, longitude float64) error
	NearbyDevices(distance int, cords schema.Location) ([]string, error)
}

// UpsertPresence keeps one document per device with the place it was last
// seen. Samples arriving faster than the update interval are dropped so a
// chatty client does not hammer the geo index.
func (m *mongoDB) UpsertPresence(deviceID string, latitude, longitude float64) error {
	c := m.client.Database(m.database).Collection(schema.PresenceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var latest schema.Presence
	err := c.FindOne(ctx, bson.M{"device_id": deviceID}).Decode(&latest)
	if nil != err && err != mongo.ErrNoDocuments {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"device_id": deviceID,
			"error":     err,
		}).Error("query latest presence")
		return err
	}

	now := time.Now().UTC()

	// update too frequently, ignore
	if err == nil && now.Sub(time.Unix(latest.Timestamp, 0)) < presenceUpdateInterval {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"device_id": deviceID,
		}).Debug("drop presence update")
		return nil
	}

	current := schema.Presence{
		DeviceID: deviceID,
		Location: *schema.NewGeoJSON(schema.Location{
			Latitude:  latitude,
			Longitude: longitude,
		}),
		Timestamp: now.Unix(),
	}

	if _, err := c.ReplaceOne(ctx, bson.M{"device_id": deviceID}, current, options.Replace().SetUpsert(true)); nil != err {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"device_id": deviceID,
			"error":     err,
		}).Error("upsert presence")
		return err
	}

	return nil
}

// NearbyDevices - find devices last seen within distance meters
// return matches by device id, nearest first
func (m *mongoDB) NearbyDevices(distance int, cords schema.Location) ([]string, error) {
	query := distanceQuery(distance, cords)
	c := m.client.Database(m.database).Collection(schema.PresenceCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby devices with error: %s", err)
		return []string{}, fmt.Errorf("nearby devices query with error: %s", err)
	}

	deviceIDs := make([]string, 0)
	var record schema.Presence

	// iterate
	for cur.Next(ctx) {
		err = cur.Decode(&record)
		if nil != err {
			log.WithField("prefix", mongoLogPrefix).Infof("query nearby devices with error: %s", err)
			return []string{}, fmt.Errorf("nearby devices query decode record with error: %s", err)
		}
		deviceIDs = append(deviceIDs, record.DeviceID)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby devices query gets %d devices", len(deviceIDs))

	return deviceIDs, nil
}

// $nearSphere provides documents from nearest to farthest
// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}}
}
