package country

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// Fallback address parts used when no reverse geocoding attempt succeeds
const (
	FallbackRoad = "Fallback Road"
	FallbackCity = "Anime City"
)

// NewRand returns a generator seeded from the runtime source. The result is
// not safe for concurrent use; callers create one per request.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand returns a deterministic generator
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Zip synthesizes a postal code in the local format of c
func Zip(r *rand.Rand, c Code) string {
	return c.rules().zip(r)
}

// Phone synthesizes a phone number with the international prefix of c
func Phone(r *rand.Rand, c Code) string {
	return c.rules().phone(r)
}

// HouseNumber returns a street number in [1,2000]
func HouseNumber(r *rand.Rand) string {
	return strconv.Itoa(between(r, 1, 2000))
}

// FallbackAddress is the display string used when the resolver gives up
func FallbackAddress(c Code) string {
	if c == "" {
		c = Default
	}
	return FallbackRoad + ", " + FallbackCity + ", " + string(c)
}

// between returns an integer in [lo,hi]
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// digits returns n random decimal digits
func digits(r *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + r.IntN(10)))
	}
	return b.String()
}
