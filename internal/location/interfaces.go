package location

import (
	"context"

	"idconsole/internal/providers/openstreetmap"
)

// Service resolves a postal address near a sampled coordinate
type Service interface {
	// Resolve runs the bounded retry loop. It never fails; an unresolved
	// Result carries an empty address.
	Resolve(ctx context.Context, req Request) Result
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}
