package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"idconsole/internal/country"
	"idconsole/internal/providers/openstreetmap"
	"idconsole/internal/types"
)

const (
	DefaultMaxAttempts    = 5
	DefaultAttemptTimeout = 3 * time.Second

	// UnknownCity is used when a usable response names no locality
	UnknownCity = "Unknown City"
)

// ErrUnusableAddress marks a response without street or locality data
var ErrUnusableAddress = errors.New("address has no street or locality")

// Request describes one resolution
type Request struct {
	Country country.Code
	// Anchor, when set, is sampled unperturbed first and with small jitter after
	Anchor *types.GeoPoint
	// Rand drives sampling and synthesized fields. It must not be shared
	// across goroutines.
	Rand *rand.Rand
}

// Result is the outcome of a resolution
type Result struct {
	Address types.Address
	// Point is the coordinate that produced Address
	Point    types.GeoPoint
	Attempts int
}

// Resolved reports whether an attempt produced a usable address
func (r Result) Resolved() bool {
	return r.Address.Resolved()
}

// Options tunes the retry loop and the Nominatim client. Zero values take
// the defaults.
type Options struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	BaseURL        string
	UserAgent      string
}

// locationService implements the Service interface
type locationService struct {
	locationProvider ReverseGeocodeProvider
	maxAttempts      int
	attemptTimeout   time.Duration
	logger           *slog.Logger
}

// NewLocationService creates a resolver backed by Nominatim
func NewLocationService(logger *slog.Logger, opts Options) Service {
	return NewLocationServiceWithProvider(logger, openstreetmap.NewClient(logger, opts.BaseURL, opts.UserAgent), opts)
}

// NewLocationServiceWithProvider creates a resolver with a custom provider.
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(logger *slog.Logger, provider ReverseGeocodeProvider, opts Options) Service {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = DefaultAttemptTimeout
	}
	return &locationService{
		locationProvider: provider,
		maxAttempts:      opts.MaxAttempts,
		attemptTimeout:   opts.AttemptTimeout,
		logger:           logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, req Request) Result {
	rnd := req.Rand
	if rnd == nil {
		rnd = country.NewRand()
	}

	sampler := country.NewSampler(rnd, req.Country)
	if req.Anchor != nil {
		sampler = country.NewAnchoredSampler(rnd, *req.Anchor)
	}

	var res Result
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		// The caller went away, remaining attempts would fail the same way
		if err := ctx.Err(); err != nil {
			s.logger.Debug("stopping reverse geocoding",
				"country", req.Country,
				"attempts", res.Attempts,
				"error", err,
			)
			break
		}
		res.Attempts = attempt + 1
		point := sampler.Sample(attempt)

		address, err := s.attempt(ctx, rnd, req.Country, point)
		if err != nil {
			s.logger.Debug("discarding reverse geocode attempt",
				"attempt", res.Attempts,
				"country", req.Country,
				"latitude", point.Latitude,
				"longitude", point.Longitude,
				"error", err,
			)
			continue
		}

		res.Address = address
		res.Point = point
		s.logger.Debug("resolved address",
			"attempt", res.Attempts,
			"country", req.Country,
			"city", address.City,
		)
		return res
	}

	s.logger.Warn("reverse geocoding exhausted",
		"country", req.Country,
		"attempts", res.Attempts,
	)
	return res
}

// attempt runs one lookup under its own timeout
func (s *locationService) attempt(ctx context.Context, rnd *rand.Rand, c country.Code, point types.GeoPoint) (types.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()

	resp, err := s.locationProvider.Lookup(ctx, point.Latitude, point.Longitude)
	if err != nil {
		return types.Address{}, fmt.Errorf("failed to get location: %w", err)
	}
	return translateAddress(rnd, c, resp)
}

// usable reports whether the lookup names a street or some locality
func usable(a openstreetmap.AddressInfo) bool {
	return a.Road != "" || a.City != "" || a.Town != "" ||
		a.Suburb != "" || a.Village != "" || a.County != ""
}

// translateAddress converts an OpenStreetMap reverse lookup response to a domain Address
func translateAddress(rnd *rand.Rand, c country.Code, resp *openstreetmap.LookupAPIResponse) (types.Address, error) {
	if resp == nil {
		return types.Address{}, fmt.Errorf("lookup response is nil")
	}
	a := resp.Address
	if !usable(a) {
		return types.Address{}, ErrUnusableAddress
	}

	address := types.Address{
		HouseNumber: a.HouseNumber,
		Road:        a.Road,
		City:        firstOf(a.City, a.Town, a.Village, a.County),
		State:       firstOf(a.State, a.Region),
		Zip:         a.Postcode,
	}
	if address.HouseNumber == "" {
		address.HouseNumber = country.HouseNumber(rnd)
	}
	if address.City == "" {
		address.City = UnknownCity
	}
	if address.Zip == "" {
		address.Zip = country.Zip(rnd, c)
	}
	address.Full = types.JoinAddress(
		address.HouseNumber,
		address.Road,
		address.City,
		address.State,
		address.Zip,
		string(c),
	)
	return address, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
