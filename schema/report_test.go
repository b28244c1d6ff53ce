package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportLatLng(t *testing.T) {
	r := IncidentReport{
		Location: NewGeoJSON(Location{Latitude: 14.676, Longitude: 121.0437}),
	}

	loc, ok := r.LatLng()
	assert.True(t, ok)
	assert.Equal(t, 14.676, loc.Latitude)
	assert.Equal(t, 121.0437, loc.Longitude)
}

func TestReportLatLngAbsent(t *testing.T) {
	_, ok := IncidentReport{}.LatLng()
	assert.False(t, ok)

	short := IncidentReport{Location: &GeoJSON{Type: "Point", Coordinates: []float64{121.0437}}}
	_, ok = short.LatLng()
	assert.False(t, ok)

	nan := IncidentReport{Location: &GeoJSON{Type: "Point", Coordinates: []float64{math.NaN(), 14.676}}}
	_, ok = nan.LatLng()
	assert.False(t, ok)

	inf := IncidentReport{Location: &GeoJSON{Type: "Point", Coordinates: []float64{121.0437, math.Inf(1)}}}
	_, ok = inf.LatLng()
	assert.False(t, ok)
}
