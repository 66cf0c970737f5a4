package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idconsole/internal/country"
	"idconsole/internal/location"
	"idconsole/internal/person"
	"idconsole/internal/providers/openstreetmap"
	"idconsole/internal/providers/randomuser"
	"idconsole/internal/timezone"
	"idconsole/internal/types"
)

var (
	frPhone = regexp.MustCompile(`^\+33 [67]\d{8}$`)
	usPhone = regexp.MustCompile(`^\+1 \(\d{3}\) \d{3}-\d{4}$`)
	digits5 = regexp.MustCompile(`^\d{5}$`)
)

type geocoder struct {
	calls   atomic.Int32
	points  []types.GeoPoint
	respond func(n int) (*openstreetmap.LookupAPIResponse, error)
}

func (g *geocoder) Lookup(_ context.Context, lat, lon float64) (*openstreetmap.LookupAPIResponse, error) {
	n := int(g.calls.Add(1))
	g.points = append(g.points, types.NewGeoPoint(lat, lon))
	return g.respond(n)
}

func unusable(int) (*openstreetmap.LookupAPIResponse, error) {
	return &openstreetmap.LookupAPIResponse{}, nil
}

type profiles struct {
	user        *randomuser.Result
	err         error
	nationality string
}

func (p *profiles) GetUser(_ context.Context, nationality string) (*randomuser.Result, error) {
	p.nationality = nationality
	return p.user, p.err
}

func ada() *randomuser.Result {
	u := &randomuser.Result{Gender: "female"}
	u.Name.First = "Ada"
	u.Name.Last = "Lovelace"
	u.Picture.Large = "url"
	return u
}

type fixedTimezones struct{ name string }

func (f fixedTimezones) Lookup(types.GeoPoint) (string, error) {
	if f.name == "" {
		return "", errors.New("no zone")
	}
	return f.name, nil
}

type recordingTimezones struct {
	points []types.GeoPoint
}

func (r *recordingTimezones) Lookup(p types.GeoPoint) (string, error) {
	r.points = append(r.points, p)
	return "zone", nil
}

func newAssembler(t *testing.T, g *geocoder, p *profiles, opts ...Option) *Assembler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{
		WithRand(func() *rand.Rand { return country.NewSeededRand(11) }),
		WithIDs(func() string { return "test-id" }),
	}, opts...)
	return NewAssembler(
		logger,
		location.NewLocationServiceWithProvider(logger, g, location.Options{}),
		person.NewPersonServiceWithProvider(logger, p),
		opts...,
	)
}

func TestAssemble_Success(t *testing.T) {
	g := &geocoder{respond: func(n int) (*openstreetmap.LookupAPIResponse, error) {
		if n < 3 {
			return nil, errors.New("timeout")
		}
		return &openstreetmap.LookupAPIResponse{Address: openstreetmap.AddressInfo{
			Road: "Rue de Rivoli",
			City: "Paris",
		}}, nil
	}}
	p := &profiles{user: ada()}
	a := newAssembler(t, g, p, WithTimezones(fixedTimezones{"Europe/Paris"}))

	id := a.Assemble(context.Background(), Request{Country: country.FR})

	assert.Equal(t, "test-id", id.ID)
	assert.Equal(t, "FR", id.Country)
	assert.EqualValues(t, 3, g.calls.Load())
	assert.Equal(t, 3, id.Source.Attempts)
	assert.Equal(t, types.SourceGeocoder, id.Source.Address)
	assert.Equal(t, types.SourceService, id.Source.Person)

	assert.Contains(t, id.Address.Full, "Rue de Rivoli, Paris")
	assert.True(t, strings.HasSuffix(id.Address.Full, ", FR"), id.Address.Full)
	assert.Equal(t, "Europe/Paris", id.Address.Timezone)

	assert.Equal(t, "Ada Lovelace", id.Person.Name)
	assert.Equal(t, "Female", id.Person.Gender)
	assert.Equal(t, "url", id.Person.PhotoURL)
	assert.Regexp(t, frPhone, id.Person.Phone)
	assert.Equal(t, "FR", p.nationality)
}

func TestAssemble_GeocoderExhausted(t *testing.T) {
	g := &geocoder{respond: unusable}
	a := newAssembler(t, g, &profiles{user: ada()})

	id := a.Assemble(context.Background(), Request{Country: country.DE})

	assert.EqualValues(t, location.DefaultMaxAttempts, g.calls.Load())
	assert.Equal(t, types.SourceFallback, id.Source.Address)
	assert.Equal(t, "Fallback Road, Anime City, DE", id.Address.Full)
	assert.Equal(t, country.FallbackRoad, id.Address.Road)
	assert.Equal(t, country.FallbackCity, id.Address.City)
	assert.Regexp(t, digits5, id.Address.Zip)
	assert.Equal(t, "Ada Lovelace", id.Person.Name, "person resolution must not depend on address outcome")
}

func TestAssemble_PersonFallback(t *testing.T) {
	g := &geocoder{respond: func(int) (*openstreetmap.LookupAPIResponse, error) {
		return &openstreetmap.LookupAPIResponse{Address: openstreetmap.AddressInfo{City: "Lyon"}}, nil
	}}
	a := newAssembler(t, g, &profiles{err: randomuser.ErrUnexpectedStatus})

	id := a.Assemble(context.Background(), Request{Country: country.FR})

	want := person.FallbackPersona
	want.Phone = id.Person.Phone
	assert.Equal(t, want, id.Person)
	assert.Regexp(t, frPhone, id.Person.Phone)
	assert.Equal(t, types.SourceFallback, id.Source.Person)
	assert.Equal(t, types.SourceGeocoder, id.Source.Address)
	assert.Equal(t, "Lyon", id.Address.City)
}

func TestAssemble_EverythingFails(t *testing.T) {
	g := &geocoder{respond: func(int) (*openstreetmap.LookupAPIResponse, error) {
		return nil, errors.New("down")
	}}
	a := newAssembler(t, g, &profiles{err: errors.New("down")})

	id := a.Assemble(context.Background(), Request{Country: "XX"})

	assert.Equal(t, "XX", id.Country)
	assert.Equal(t, "Fallback Road, Anime City, XX", id.Address.Full)
	assert.Regexp(t, digits5, id.Address.Zip)
	assert.Equal(t, person.FallbackPersona.Name, id.Person.Name)
	assert.Regexp(t, usPhone, id.Person.Phone, "unsupported countries use the default phone format")
	assert.NotEmpty(t, id.ID)
}

func TestAssemble_AnchorSetsCountryAndSeed(t *testing.T) {
	anchor := types.NewGeoPoint(35.6895, 139.6917)
	g := &geocoder{respond: unusable}
	p := &profiles{user: ada()}
	a := newAssembler(t, g, p)

	id := a.Assemble(context.Background(), Request{Anchor: &Anchor{Country: country.JP, Point: anchor}})

	assert.Equal(t, "JP", id.Country)
	require.NotEmpty(t, g.points)
	assert.Equal(t, anchor, g.points[0])
	assert.Equal(t, "US", p.nationality)
}

func TestAssemble_ExplicitCountryBeatsAnchor(t *testing.T) {
	g := &geocoder{respond: unusable}
	a := newAssembler(t, g, &profiles{user: ada()})

	anchor := types.NewGeoPoint(35.6895, 139.6917)
	id := a.Assemble(context.Background(), Request{
		Country: country.UK,
		Anchor:  &Anchor{Country: country.JP, Point: anchor},
	})

	assert.Equal(t, "UK", id.Country)
	require.NotEmpty(t, g.points)
	assert.NotEqual(t, anchor, g.points[0])
}

func TestAssemble_RandomCountry(t *testing.T) {
	g := &geocoder{respond: unusable}
	a := newAssembler(t, g, &profiles{user: ada()})

	id := a.Assemble(context.Background(), Request{})

	assert.True(t, country.Code(id.Country).Supported(), "random country %q must be supported", id.Country)
	assert.Equal(t, country.FallbackAddress(country.Code(id.Country)), id.Address.Full)
}

type panickingLocations struct{}

func (panickingLocations) Resolve(context.Context, location.Request) location.Result {
	panic("boom")
}

type panickingPeople struct{}

func (panickingPeople) Resolve(context.Context, country.Code) (types.Person, bool) {
	panic("boom")
}

func TestAssemble_RecoversFromPanics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := NewAssembler(logger, panickingLocations{}, panickingPeople{})

	var id types.Identity
	require.NotPanics(t, func() {
		id = a.Assemble(context.Background(), Request{Country: country.US})
	})

	assert.Equal(t, country.FallbackAddress(country.US), id.Address.Full)
	assert.Equal(t, person.FallbackPersona.Name, id.Person.Name)
	assert.Regexp(t, usPhone, id.Person.Phone)
}

func TestAssemble_TimezoneFailureLeavesEmpty(t *testing.T) {
	g := &geocoder{respond: unusable}
	a := newAssembler(t, g, &profiles{user: ada()}, WithTimezones(fixedTimezones{}))

	id := a.Assemble(context.Background(), Request{Country: country.US})
	assert.Empty(t, id.Address.Timezone)
	assert.NotEmpty(t, id.Address.Full)
}

func TestEmbedJSON(t *testing.T) {
	id := types.Identity{
		ID: "x",
		Person: types.Person{
			Name: `</script><script>alert("x")</script>`,
		},
		Address: types.Address{Full: "A & B <C>"},
	}

	out, err := EmbedJSON(id)
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "</script")
	assert.NotContains(t, s, "<")
	assert.NotContains(t, s, ">")
	assert.NotContains(t, s, "&")
	assert.Contains(t, s, `\u003c/script\u003e`)
	assert.False(t, strings.HasSuffix(s, "\n"))
}

func TestAssemble_FallbackTimezoneUsesAnchor(t *testing.T) {
	amsterdam := types.NewGeoPoint(52.37, 4.89)

	t.Run("anchored caller", func(t *testing.T) {
		tz := &recordingTimezones{}
		a := newAssembler(t, &geocoder{respond: unusable}, &profiles{user: ada()}, WithTimezones(tz))

		id := a.Assemble(context.Background(), Request{
			Anchor: &Anchor{Country: "NL", Point: amsterdam},
		})

		assert.Equal(t, types.SourceFallback, id.Source.Address)
		require.Len(t, tz.points, 1)
		assert.Equal(t, amsterdam, tz.points[0])
	})

	t.Run("explicit country", func(t *testing.T) {
		tz := &recordingTimezones{}
		a := newAssembler(t, &geocoder{respond: unusable}, &profiles{user: ada()}, WithTimezones(tz))

		a.Assemble(context.Background(), Request{Country: country.JP})

		require.Len(t, tz.points, 1)
		assert.Equal(t, country.JP.Anchors()[0], tz.points[0])
	})

	t.Run("real zone", func(t *testing.T) {
		tzSvc, err := timezone.NewService()
		require.NoError(t, err)
		a := newAssembler(t, &geocoder{respond: unusable}, &profiles{user: ada()}, WithTimezones(tzSvc))

		id := a.Assemble(context.Background(), Request{
			Anchor: &Anchor{Country: "NL", Point: amsterdam},
		})

		assert.Equal(t, "Europe/Amsterdam", id.Address.Timezone)
	})
}
