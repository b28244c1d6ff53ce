package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagip-ph/sagip-api/schema"
)

func TestDistance(t *testing.T) {
	// one degree of longitude on the equator
	d := Distance(schema.Location{Latitude: 0, Longitude: 0}, schema.Location{Latitude: 0, Longitude: 1})
	assert.InDelta(t, 111319.5, d, 1)

	// Quezon Memorial Circle to Manila City Hall, roughly ten kilometers
	qc := schema.Location{Latitude: 14.6515, Longitude: 121.0493}
	manila := schema.Location{Latitude: 14.5895, Longitude: 120.9815}
	assert.InDelta(t, 10050, Distance(qc, manila), 100)

	assert.Equal(t, 0.0, Distance(qc, qc))
	assert.Equal(t, Distance(qc, manila), Distance(manila, qc))
}

func TestCentroid(t *testing.T) {
	c := Centroid([]schema.Location{
		{Latitude: 14.0, Longitude: 121.0},
		{Latitude: 15.0, Longitude: 122.0},
		{Latitude: 16.0, Longitude: 123.0},
	})
	assert.Equal(t, 15.0, c.Latitude)
	assert.Equal(t, 122.0, c.Longitude)
}

func TestCentroidSkipsInvalidPoints(t *testing.T) {
	c := Centroid([]schema.Location{
		{Latitude: 14.0, Longitude: 121.0},
		{Latitude: math.Inf(1), Longitude: 121.0},
		{Latitude: 16.0, Longitude: 123.0},
	})
	assert.Equal(t, 15.0, c.Latitude)
	assert.Equal(t, 122.0, c.Longitude)
}

func TestCentroidFallback(t *testing.T) {
	assert.Equal(t, PhilippinesCenter, Centroid(nil))
	assert.Equal(t, PhilippinesCenter, Centroid([]schema.Location{
		{Latitude: math.NaN(), Longitude: 121.0},
	}))
}

func TestBoundingRing(t *testing.T) {
	ring := BoundingRing([]schema.Location{
		{Latitude: 14.5, Longitude: 120.9},
		{Latitude: 14.7, Longitude: 121.1},
	})

	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4])
	assert.InDelta(t, 14.49, ring[0].Latitude, 1e-9)
	assert.InDelta(t, 120.89, ring[0].Longitude, 1e-9)
	assert.InDelta(t, 14.49, ring[1].Latitude, 1e-9)
	assert.InDelta(t, 121.11, ring[1].Longitude, 1e-9)
	assert.InDelta(t, 14.71, ring[2].Latitude, 1e-9)
	assert.InDelta(t, 121.11, ring[2].Longitude, 1e-9)
	assert.InDelta(t, 14.71, ring[3].Latitude, 1e-9)
	assert.InDelta(t, 120.89, ring[3].Longitude, 1e-9)
}

func TestBoundingRingSinglePoint(t *testing.T) {
	ring := BoundingRing([]schema.Location{{Latitude: 14.6, Longitude: 121.0}})

	assert.Len(t, ring, 5)
	assert.InDelta(t, 14.59, ring[0].Latitude, 1e-9)
	assert.InDelta(t, 14.61, ring[2].Latitude, 1e-9)
	assert.InDelta(t, 120.99, ring[0].Longitude, 1e-9)
	assert.InDelta(t, 121.01, ring[2].Longitude, 1e-9)
}

func TestBoundingRingEmpty(t *testing.T) {
	assert.Nil(t, BoundingRing(nil))
	assert.Nil(t, BoundingRing([]schema.Location{
		{Latitude: math.NaN(), Longitude: math.NaN()},
	}))
}
