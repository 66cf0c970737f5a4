// Package country holds the per-country data tables used to synthesize
// identities: sampling anchors, postal code and phone formats, and the
// nationality hints sent to the person service.
package country

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"idconsole/internal/types"
)

// Code is a two-letter country code. The set follows the codes the
// identity console has always used, so the United Kingdom is "UK".
type Code string

const (
	US Code = "US"
	UK Code = "UK"
	FR Code = "FR"
	DE Code = "DE"
	CN Code = "CN"
	TW Code = "TW"
	HK Code = "HK"
	JP Code = "JP"
	IN Code = "IN"
	AU Code = "AU"
	BR Code = "BR"
	CA Code = "CA"
	RU Code = "RU"
	ZA Code = "ZA"
	MX Code = "MX"
	KR Code = "KR"
	IT Code = "IT"
	ES Code = "ES"
	TR Code = "TR"
	SA Code = "SA"
	AR Code = "AR"
	EG Code = "EG"
	NG Code = "NG"
	ID Code = "ID"
)

// Default is the country whose tables serve unsupported codes
const Default = US

// ErrInvalidCode is returned by Parse for input that is not two ASCII letters
var ErrInvalidCode = errors.New("invalid country code")

var all = []Code{
	US, UK, FR, DE, CN, TW, HK, JP, IN, AU, BR, CA,
	RU, ZA, MX, KR, IT, ES, TR, SA, AR, EG, NG, ID,
}

// All returns the supported countries in display order
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// Random picks a supported country uniformly
func Random(r *rand.Rand) Code {
	return all[r.IntN(len(all))]
}

// Parse normalizes a user supplied code. Well-formed codes outside the
// supported set are accepted; their data comes from the Default tables.
func Parse(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 || !isLetter(s[0]) || !isLetter(s[1]) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return Code(s), nil
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// Supported reports whether c has its own data tables
func (c Code) Supported() bool {
	_, ok := table[c]
	return ok
}

// Name returns the English display name, or the code itself when unsupported
func (c Code) Name() string {
	if r, ok := table[c]; ok {
		return r.name
	}
	return string(c)
}

// CallingCode returns the international dialing prefix, e.g. "+44"
func (c Code) CallingCode() string {
	return c.rules().callingCode
}

// Anchors returns the sampling anchors for c
func (c Code) Anchors() []types.GeoPoint {
	anchors := c.rules().anchors
	out := make([]types.GeoPoint, len(anchors))
	copy(out, anchors)
	return out
}

func (c Code) String() string {
	return string(c)
}

func (c Code) rules() rules {
	if r, ok := table[c]; ok {
		return r
	}
	return table[Default]
}
