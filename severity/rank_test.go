package severity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/severity"
)

func TestRankAreas(t *testing.T) {
	rescue := newReport(schema.SeverityMedium, 18*time.Hour, 14.6527, 121.1049)
	rescue.NeedsRescue = true

	reports := []schema.IncidentReport{
		// Marikina riverside: fresh critical plus an aging medium
		newReport(schema.SeverityCritical, time.Hour, 14.6507, 121.1029),
		rescue,
		// Pasig: a lone low report, eight kilometers south
		newReport(schema.SeverityLow, 2*time.Hour, 14.5764, 121.0851),
	}

	areas := severity.RankAreas(reports, testNow, severity.DefaultTimeWindowHours, 10)
	assert.Len(t, areas, 2)

	first := areas[0]
	assert.Equal(t, schema.SeverityCritical, first.Severity)
	assert.InDelta(t, 4.78, first.Score, 0.01)
	assert.Equal(t, 2, first.ReportCount)
	assert.Equal(t, 1, first.SeverityCounts[schema.SeverityCritical])
	assert.Equal(t, 1, first.SeverityCounts[schema.SeverityMedium])
	assert.Equal(t, 1, first.RescueCount)
	assert.Equal(t, testNow.Add(-time.Hour).Unix(), first.LastReportTimestamp)
	assert.InDelta(t, 14.6517, first.Centroid.Latitude, 1e-4)
	assert.Len(t, first.Bounds, 5)
	assert.Equal(t, first.Bounds[0], first.Bounds[4])

	second := areas[1]
	assert.Equal(t, schema.SeverityLow, second.Severity)
	assert.Equal(t, 0, second.RescueCount)
	assert.True(t, first.Score > second.Score)
}

func TestRankAreasWindowFilter(t *testing.T) {
	reports := []schema.IncidentReport{
		newReport(schema.SeverityCritical, 3*time.Hour, 14.6, 121.0),
		newReport(schema.SeverityCritical, 200*time.Hour, 14.6, 121.0), // outside the window
	}

	areas := severity.RankAreas(reports, testNow, severity.DefaultTimeWindowHours, 10)
	assert.Len(t, areas, 1)
	assert.Equal(t, 1, areas[0].ReportCount)
}

func TestRankAreasWindowEdgeIsIncluded(t *testing.T) {
	edge := newReport(schema.SeverityLow, 168*time.Hour, 14.6, 121.0)

	areas := severity.RankAreas([]schema.IncidentReport{edge}, testNow, severity.DefaultTimeWindowHours, 10)
	assert.Len(t, areas, 1)
}

func TestRankAreasLimit(t *testing.T) {
	reports := make([]schema.IncidentReport, 0, 5)
	for i := 0; i < 5; i++ {
		reports = append(reports, newReport(schema.SeverityHigh, time.Hour, 14.0+float64(i), 121.0))
	}

	areas := severity.RankAreas(reports, testNow, severity.DefaultTimeWindowHours, 3)
	assert.Len(t, areas, 3)

	all := severity.RankAreas(reports, testNow, severity.DefaultTimeWindowHours, 0)
	assert.Len(t, all, 5)
}

func TestRankAreasStableTieOrder(t *testing.T) {
	// equal scores keep cluster creation order
	a := newReport(schema.SeverityHigh, time.Hour, 14.0, 121.0)
	b := newReport(schema.SeverityHigh, time.Hour, 15.0, 121.0)

	areas := severity.RankAreas([]schema.IncidentReport{a, b}, testNow, severity.DefaultTimeWindowHours, 10)
	assert.Len(t, areas, 2)
	assert.Equal(t, areas[0].Score, areas[1].Score)
	assert.InDelta(t, 14.0, areas[0].Centroid.Latitude, 1e-9)
	assert.InDelta(t, 15.0, areas[1].Centroid.Latitude, 1e-9)
}

func TestRankAreasDeterministic(t *testing.T) {
	reports := []schema.IncidentReport{
		newReport(schema.SeverityCritical, time.Hour, 14.6507, 121.1029),
		newReport(schema.SeverityMedium, 6*time.Hour, 14.6527, 121.1049),
		newReport(schema.SeverityLow, 2*time.Hour, 14.5764, 121.0851),
		newReport(schema.SeverityHigh, 3*time.Hour, 10.3157, 123.8854),
	}

	first := severity.RankAreas(reports, testNow, severity.DefaultTimeWindowHours, 10)
	second := severity.RankAreas(reports, testNow, severity.DefaultTimeWindowHours, 10)
	assert.Equal(t, first, second)
}

func TestRankAreasEmpty(t *testing.T) {
	assert.Empty(t, severity.RankAreas(nil, testNow, severity.DefaultTimeWindowHours, 10))
}
