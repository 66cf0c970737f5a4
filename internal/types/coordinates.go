package types

import "fmt"

// GeoPoint is a latitude/longitude pair in decimal degrees
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Offset returns the point moved by the given deltas
func (p GeoPoint) Offset(dLat, dLon float64) GeoPoint {
	return GeoPoint{
		Latitude:  p.Latitude + dLat,
		Longitude: p.Longitude + dLon,
	}
}

// Valid reports whether the point lies inside the WGS84 coordinate range
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Latitude, p.Longitude)
}
