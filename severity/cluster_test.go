package severity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sagip-ph/sagip-api/geo"
	"github.com/sagip-ph/sagip-api/schema"
	"github.com/sagip-ph/sagip-api/severity"
)

func TestClusterReports(t *testing.T) {
	reports := []schema.IncidentReport{
		newReport(schema.SeverityHigh, time.Hour, 14.6, 121.000),
		newReport(schema.SeverityLow, time.Hour, 14.6, 121.010), // ~1.1 km away, joins
		newReport(schema.SeverityLow, time.Hour, 14.6, 121.100), // ~10 km away, new cluster
	}

	clusters := severity.ClusterReports(reports, severity.ClusterRadiusMeters)
	assert.Len(t, clusters, 2)
	assert.Len(t, clusters[0].Reports, 2)
	assert.Len(t, clusters[1].Reports, 1)
	assert.InDelta(t, 121.005, clusters[0].Centroid.Longitude, 1e-9)
}

func TestClusterChaining(t *testing.T) {
	// the running centroid drifts toward each joined report, so a trail
	// of reports can chain into one cluster even when its ends are
	// farther apart than the join radius
	a := newReport(schema.SeverityLow, time.Hour, 14.6, 121.000)
	b := newReport(schema.SeverityLow, time.Hour, 14.6, 121.022)
	c := newReport(schema.SeverityLow, time.Hour, 14.6, 121.033)

	endToEnd := geo.Distance(
		schema.Location{Latitude: 14.6, Longitude: 121.000},
		schema.Location{Latitude: 14.6, Longitude: 121.033},
	)
	assert.True(t, endToEnd > severity.ClusterRadiusMeters)

	clusters := severity.ClusterReports([]schema.IncidentReport{a, b, c}, severity.ClusterRadiusMeters)
	assert.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Reports, 3)
}

func TestClusterInputOrderDependence(t *testing.T) {
	a := newReport(schema.SeverityLow, time.Hour, 14.6, 121.000)
	b := newReport(schema.SeverityLow, time.Hour, 14.6, 121.022)
	c := newReport(schema.SeverityLow, time.Hour, 14.6, 121.033)

	forward := severity.ClusterReports([]schema.IncidentReport{a, b, c}, severity.ClusterRadiusMeters)
	assert.Len(t, forward, 1)

	// walking the same trail from the far end leaves a stranded
	reversed := severity.ClusterReports([]schema.IncidentReport{c, b, a}, severity.ClusterRadiusMeters)
	assert.Len(t, reversed, 2)
}

func TestClusterFirstMatchWins(t *testing.T) {
	// a report in range of two clusters joins the older one even when
	// the younger one is closer
	a := newReport(schema.SeverityLow, time.Hour, 14.6, 121.000)
	b := newReport(schema.SeverityLow, time.Hour, 14.6, 121.040)
	c := newReport(schema.SeverityLow, time.Hour, 14.6, 121.021)

	clusters := severity.ClusterReports([]schema.IncidentReport{a, b, c}, severity.ClusterRadiusMeters)
	assert.Len(t, clusters, 2)
	assert.Len(t, clusters[0].Reports, 2)
	assert.Len(t, clusters[1].Reports, 1)
}

func TestClusterLabelTracksCentroid(t *testing.T) {
	a := newReport(schema.SeverityLow, time.Hour, 14.60, 121.000)
	b := newReport(schema.SeverityLow, time.Hour, 14.61, 121.010)

	clusters := severity.ClusterReports([]schema.IncidentReport{a, b}, severity.ClusterRadiusMeters)
	assert.Len(t, clusters, 1)
	assert.Equal(t, "14.6050,121.0050", clusters[0].ID)
	assert.Equal(t, severity.AreaID(clusters[0].Centroid), clusters[0].ID)
}

func TestClusterDropsReportsWithoutLocation(t *testing.T) {
	reports := []schema.IncidentReport{
		{Severity: schema.SeverityHigh, Timestamp: testNow.Unix()},
		newReport(schema.SeverityLow, time.Hour, 14.6, 121.0),
	}

	clusters := severity.ClusterReports(reports, severity.ClusterRadiusMeters)
	assert.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Reports, 1)
}
