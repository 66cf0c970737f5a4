package country

import (
	"math/rand/v2"

	"idconsole/internal/types"
)

// Jitter half-widths in degrees
const (
	CountryJitter = 0.025
	AnchorJitter  = 0.005
)

// Sampler yields the point to reverse geocode on a given attempt (0-based)
type Sampler interface {
	Sample(attempt int) types.GeoPoint
}

// NewSampler returns a sampler that draws around the anchors of c on every
// attempt. Unsupported codes draw around the Default anchors.
func NewSampler(r *rand.Rand, c Code) Sampler {
	return &countrySampler{rnd: r, anchors: c.rules().anchors}
}

// NewAnchoredSampler returns a sampler that starts at point and drifts by at
// most AnchorJitter on later attempts
func NewAnchoredSampler(r *rand.Rand, point types.GeoPoint) Sampler {
	return &anchoredSampler{rnd: r, anchor: point}
}

type countrySampler struct {
	rnd     *rand.Rand
	anchors []types.GeoPoint
}

func (s *countrySampler) Sample(int) types.GeoPoint {
	anchor := s.anchors[s.rnd.IntN(len(s.anchors))]
	return anchor.Offset(jitter(s.rnd, CountryJitter), jitter(s.rnd, CountryJitter))
}

type anchoredSampler struct {
	rnd    *rand.Rand
	anchor types.GeoPoint
}

func (s *anchoredSampler) Sample(attempt int) types.GeoPoint {
	if attempt == 0 {
		return s.anchor
	}
	return s.anchor.Offset(jitter(s.rnd, AnchorJitter), jitter(s.rnd, AnchorJitter))
}

// jitter returns a uniform offset in [-span, span)
func jitter(r *rand.Rand, span float64) float64 {
	return (r.Float64()*2 - 1) * span
}
