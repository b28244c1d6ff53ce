package consts

// distance ranges in meters
const (
	// NEARBY_DISTANCE_RANGE scopes rescue listings to responders close
	// enough to act.
	NEARBY_DISTANCE_RANGE = 5000

	// ALERT_DISTANCE_RANGE is how far from an escalated area centroid
	// devices still get paged.
	ALERT_DISTANCE_RANGE = 10000
)
