package schema

const (
	ReportCollection = "incidentReport"
)

// ReportSource tells where a report entered the system.
type ReportSource string

const (
	SourceCommunity ReportSource = "community"
	SourceOfficial  ReportSource = "official"
)

// Common hazard tags. Type is free form; clients and feed adapters may
// submit tags that are not listed here.
const (
	HazardFlood      = "flood"
	HazardLandslide  = "landslide"
	HazardLightning  = "lightning"
	HazardStormSurge = "storm_surge"
	HazardRoadBlock  = "road_block"
)

// IncidentReport the struct to store a single geotagged incident
type IncidentReport struct {
	ID          string       `json:"id" bson:"id"`
	Location    *GeoJSON     `json:"location,omitempty" bson:"location,omitempty"`
	Severity    Severity     `json:"severity" bson:"severity"`
	Timestamp   int64        `json:"ts" bson:"ts"`
	NeedsRescue bool         `json:"needs_rescue" bson:"needs_rescue"`
	Source      ReportSource `json:"source" bson:"source"`
	Type        string       `json:"type" bson:"type"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Reporter    string       `json:"-" bson:"reporter,omitempty"`
	Deleted     bool         `json:"-" bson:"deleted,omitempty"`
}

// LatLng returns the report coordinates when they are usable for spatial
// computation. Reports without a location, with a malformed point or with
// non-finite coordinates count as having none.
func (r IncidentReport) LatLng() (Location, bool) {
	if r.Location == nil || len(r.Location.Coordinates) < 2 {
		return Location{}, false
	}

	loc := Location{
		Latitude:  r.Location.Coordinates[1],
		Longitude: r.Location.Coordinates[0],
	}
	if !loc.Valid() {
		return Location{}, false
	}

	return loc, true
}
