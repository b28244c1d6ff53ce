package schema

const (
	PresenceCollection = "presence"
)

// Presence - the latest reported location of a device, one document per
// device, used for proximity alert targeting
type Presence struct {
	DeviceID  string  `bson:"device_id"`
	Location  GeoJSON `bson:"location"`
	Timestamp int64   `bson:"ts"`
}
