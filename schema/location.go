package schema

import "math"

// AddressComponent - administrative names attached to a resolved location
type AddressComponent struct {
	Country  string `bson:"country" json:"country"`
	Province string `bson:"province" json:"province"`
	City     string `bson:"city" json:"city"`
}

// Location - a point on the map, optionally decorated with resolved
// administrative names
type Location struct {
	Latitude         float64 `bson:"latitude" json:"latitude"`
	Longitude        float64 `bson:"longitude" json:"longitude"`
	Address          string  `bson:"address,omitempty" json:"address,omitempty"`
	AddressComponent `bson:",inline"`
}

// Valid reports whether both coordinates are finite numbers. Non-finite
// values come from malformed submissions and count as no location at all.
func (l Location) Valid() bool {
	return !math.IsNaN(l.Latitude) && !math.IsInf(l.Latitude, 0) &&
		!math.IsNaN(l.Longitude) && !math.IsInf(l.Longitude, 0)
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoJSON converts a location into the mongo point format. GeoJSON
// coordinates are longitude first.
func NewGeoJSON(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}
