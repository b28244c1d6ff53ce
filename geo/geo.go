package geo

import (
	"math"

	"github.com/sagip-ph/sagip-api/schema"
)

const (
	// EarthRadiusMeters is the WGS84 equatorial radius.
	EarthRadiusMeters = 6378137.0

	// boundsPadding widens a bounding ring by roughly a kilometer so map
	// overlays do not clip reports sitting right on the edge.
	boundsPadding = 0.01
)

// PhilippinesCenter is the fallback centroid for an empty point set,
// roughly the geographic center of the archipelago.
var PhilippinesCenter = schema.Location{Latitude: 12.8797, Longitude: 121.7740}

// Distance returns the great-circle distance between two points in meters
// using the haversine formula. Callers gate out malformed coordinates with
// Location.Valid before measuring.
func Distance(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Centroid returns the arithmetic mean of the valid points. An empty or
// fully invalid set falls back to PhilippinesCenter so consumers always
// get usable coordinates.
func Centroid(points []schema.Location) schema.Location {
	var latSum, lngSum float64
	count := 0

	for _, p := range points {
		if !p.Valid() {
			continue
		}
		latSum += p.Latitude
		lngSum += p.Longitude
		count++
	}

	if count == 0 {
		return PhilippinesCenter
	}

	return schema.Location{
		Latitude:  latSum / float64(count),
		Longitude: lngSum / float64(count),
	}
}

// BoundingRing returns the padded bounding box of the valid points as a
// closed five-point ring, counter-clockwise from the southwest corner.
// The first and last points are identical. It returns nil when no point
// is valid.
func BoundingRing(points []schema.Location) []schema.Location {
	minLat, minLng := math.Inf(1), math.Inf(1)
	maxLat, maxLng := math.Inf(-1), math.Inf(-1)
	found := false

	for _, p := range points {
		if !p.Valid() {
			continue
		}
		found = true
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLng = math.Min(minLng, p.Longitude)
		maxLng = math.Max(maxLng, p.Longitude)
	}

	if !found {
		return nil
	}

	minLat -= boundsPadding
	minLng -= boundsPadding
	maxLat += boundsPadding
	maxLng += boundsPadding

	return []schema.Location{
		{Latitude: minLat, Longitude: minLng},
		{Latitude: minLat, Longitude: maxLng},
		{Latitude: maxLat, Longitude: maxLng},
		{Latitude: maxLat, Longitude: minLng},
		{Latitude: minLat, Longitude: minLng},
	}
}
