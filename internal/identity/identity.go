// Package identity assembles a complete fake identity from a resolved
// address and a resolved person profile.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"idconsole/internal/country"
	"idconsole/internal/location"
	"idconsole/internal/person"
	"idconsole/internal/timezone"
	"idconsole/internal/types"
)

// Anchor is a caller location resolved upstream, e.g. from edge headers
type Anchor struct {
	Country country.Code
	Point   types.GeoPoint
}

// Request carries the optional caller inputs. With neither field set a
// country is chosen at random.
type Request struct {
	Country country.Code
	Anchor  *Anchor
}

// Option configures an Assembler
type Option func(*Assembler)

// WithRand replaces the per-request random source factory
func WithRand(newRand func() *rand.Rand) Option {
	return func(a *Assembler) {
		a.newRand = newRand
	}
}

// WithIDs replaces the identity ID generator
func WithIDs(newID func() string) Option {
	return func(a *Assembler) {
		a.newID = newID
	}
}

// WithTimezones enables timezone annotation of addresses
func WithTimezones(tz timezone.Service) Option {
	return func(a *Assembler) {
		a.timezones = tz
	}
}

type Assembler struct {
	locations location.Service
	people    person.Service
	timezones timezone.Service
	newRand   func() *rand.Rand
	newID     func() string
	logger    *slog.Logger
}

func NewAssembler(logger *slog.Logger, locations location.Service, people person.Service, opts ...Option) *Assembler {
	a := &Assembler{
		locations: locations,
		people:    people,
		newRand:   country.NewRand,
		newID:     uuid.NewString,
		logger:    logger.With("component", "identity-assembler"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble always returns a fully populated identity. Upstream failures
// degrade to fallback data and are only logged.
func (a *Assembler) Assemble(ctx context.Context, req Request) types.Identity {
	rnd := a.newRand()
	c, anchor := a.effectiveCountry(rnd, req)

	var (
		wg          sync.WaitGroup
		resolved    location.Result
		profile     types.Person
		fromService bool
	)

	// Address and person lookups are independent, run them in parallel.
	// rnd belongs to the address goroutine until Wait returns.
	wg.Add(2)

	go func() {
		defer wg.Done()
		resolved = a.resolveAddress(ctx, rnd, c, anchor)
	}()

	go func() {
		defer wg.Done()
		profile, fromService = a.resolvePerson(ctx, c)
	}()

	wg.Wait()

	id := types.Identity{
		ID:      a.newID(),
		Country: string(c),
		Address: resolved.Address,
		Person:  profile,
		Source: types.Source{
			Address:  types.SourceGeocoder,
			Person:   types.SourceFallback,
			Attempts: resolved.Attempts,
		},
	}
	if fromService {
		id.Source.Person = types.SourceService
	}

	point := resolved.Point
	if !resolved.Resolved() {
		id.Address = fallbackAddress(rnd, c)
		id.Source.Address = types.SourceFallback
		point = fallbackPoint(c, anchor)
	}
	id.Address.Timezone = a.timezoneFor(point)

	// The phone never comes from the person service
	id.Person.Phone = country.Phone(rnd, c)

	a.logger.Info("assembled identity",
		"id", id.ID,
		"country", id.Country,
		"address_source", id.Source.Address,
		"person_source", id.Source.Person,
		"attempts", id.Source.Attempts,
	)

	return id
}

func (a *Assembler) effectiveCountry(rnd *rand.Rand, req Request) (country.Code, *types.GeoPoint) {
	switch {
	case req.Country != "":
		return req.Country, nil
	case req.Anchor != nil:
		c := req.Anchor.Country
		if c == "" {
			c = country.Default
		}
		point := req.Anchor.Point
		return c, &point
	default:
		return country.Random(rnd), nil
	}
}

func (a *Assembler) resolveAddress(ctx context.Context, rnd *rand.Rand, c country.Code, anchor *types.GeoPoint) (res location.Result) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("address resolution panicked", "country", c, "panic", fmt.Sprint(r))
			res = location.Result{}
		}
	}()
	return a.locations.Resolve(ctx, location.Request{
		Country: c,
		Anchor:  anchor,
		Rand:    rnd,
	})
}

func (a *Assembler) resolvePerson(ctx context.Context, c country.Code) (p types.Person, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("person resolution panicked", "country", c, "panic", fmt.Sprint(r))
			p, ok = person.FallbackPersona, false
		}
	}()
	return a.people.Resolve(ctx, c)
}

func (a *Assembler) timezoneFor(point types.GeoPoint) string {
	if a.timezones == nil {
		return ""
	}
	name, err := a.timezones.Lookup(point)
	if err != nil {
		a.logger.Debug("no timezone for point", "point", point.String(), "error", err)
		return ""
	}
	return name
}

// fallbackPoint locates an unresolved address: the caller's own position
// when known, else the country's first anchor.
func fallbackPoint(c country.Code, anchor *types.GeoPoint) types.GeoPoint {
	if anchor != nil {
		return *anchor
	}
	return c.Anchors()[0]
}

func fallbackAddress(rnd *rand.Rand, c country.Code) types.Address {
	return types.Address{
		Road: country.FallbackRoad,
		City: country.FallbackCity,
		Zip:  country.Zip(rnd, c),
		Full: country.FallbackAddress(c),
	}
}

// EmbedJSON serializes v for inclusion in an HTML page or inline script.
// Markup characters are emitted as \u escapes so "</script>" cannot close
// the surrounding element.
func EmbedJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
