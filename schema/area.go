package schema

const (
	AreaStateCollection = "areaState"
)

// AreaSeverity - aggregate state of one hotspot cluster, ordered by Score
// in ranking responses
type AreaSeverity struct {
	ID                  string           `json:"id" bson:"id"`
	Severity            Severity         `json:"severity" bson:"severity"`
	Score               float64          `json:"score" bson:"score"`
	ReportCount         int              `json:"report_count" bson:"report_count"`
	SeverityCounts      map[Severity]int `json:"severity_counts" bson:"severity_counts"`
	RescueCount         int              `json:"rescue_count" bson:"rescue_count"`
	LastReportTimestamp int64            `json:"last_report_ts" bson:"last_report_ts"`
	Centroid            Location         `json:"centroid" bson:"centroid"`
	Bounds              []Location       `json:"bounds,omitempty" bson:"bounds,omitempty"`
}

// AreaState is the last severity the ranking worker computed for an area.
// Only the escalation diff reads it. Area ids move with their centroids,
// so the centroid is the matching key, not the id.
type AreaState struct {
	AreaID    string   `bson:"area_id"`
	Severity  Severity `bson:"severity"`
	Score     float64  `bson:"score"`
	Centroid  GeoJSON  `bson:"centroid"`
	Timestamp int64    `bson:"ts"`
}
