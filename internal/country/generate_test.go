package country

import (
	"errors"
	"regexp"
	"strconv"
	"testing"
)

var phonePatterns = map[Code]*regexp.Regexp{
	US: regexp.MustCompile(`^\+1 \([2-9]\d{2}\) [2-9]\d{2}-\d{4}$`),
	UK: regexp.MustCompile(`^\+44 7\d{9}$`),
	FR: regexp.MustCompile(`^\+33 [67]\d{8}$`),
	DE: regexp.MustCompile(`^\+49 1[5-7]\d \d{8}$`),
	CN: regexp.MustCompile(`^\+86 1[3-9]\d \d{8}$`),
	TW: regexp.MustCompile(`^\+886 9\d{8}$`),
	HK: regexp.MustCompile(`^\+852 [5-9]\d{7}$`),
	JP: regexp.MustCompile(`^\+81 (7\d|8\d|90)-\d{4}-\d{4}$`),
	IN: regexp.MustCompile(`^\+91 [6-9]\d{3} \d{6}$`),
	AU: regexp.MustCompile(`^\+61 4\d{8}$`),
	BR: regexp.MustCompile(`^\+55 [1-9]\d 9\d{8}$`),
	CA: regexp.MustCompile(`^\+1 \([2-9]\d{2}\) [2-9]\d{2}-\d{4}$`),
	RU: regexp.MustCompile(`^\+7 9\d{9}$`),
	ZA: regexp.MustCompile(`^\+27 [6-8]\d \d{7}$`),
	MX: regexp.MustCompile(`^\+52 [1-9]\d \d{8}$`),
	KR: regexp.MustCompile(`^\+82 10-\d{4}-\d{4}$`),
	IT: regexp.MustCompile(`^\+39 3\d{9}$`),
	ES: regexp.MustCompile(`^\+34 6\d{8}$`),
	TR: regexp.MustCompile(`^\+90 5\d{9}$`),
	SA: regexp.MustCompile(`^\+966 5\d{8}$`),
	AR: regexp.MustCompile(`^\+54 9 [1-9]\d \d{8}$`),
	EG: regexp.MustCompile(`^\+20 1[0-2]\d{8}$`),
	NG: regexp.MustCompile(`^\+234 (7\d|8\d|90)\d{8}$`),
	ID: regexp.MustCompile(`^\+62 8\d{9}$`),
}

var (
	fiveDigitZip = regexp.MustCompile(`^[1-9]\d{4}$`)
	zipPatterns  = map[Code]*regexp.Regexp{
		US: fiveDigitZip,
		CN: regexp.MustCompile(`^[1-9]\d{5}$`),
		UK: regexp.MustCompile(`^SW1A [1-9]AA$`),
		JP: regexp.MustCompile(`^[1-9]\d{2}-[1-9]\d{3}$`),
	}
)

func zipPattern(c Code) *regexp.Regexp {
	if re, ok := zipPatterns[c]; ok {
		return re
	}
	return fiveDigitZip
}

func TestEveryCountryHasRules(t *testing.T) {
	if len(All()) != 24 {
		t.Fatalf("All() returned %d countries, want 24", len(All()))
	}
	for _, c := range All() {
		r, ok := table[c]
		if !ok {
			t.Errorf("%s: no rules", c)
			continue
		}
		if r.name == "" || r.callingCode == "" {
			t.Errorf("%s: missing name or calling code", c)
		}
		if len(r.anchors) == 0 {
			t.Errorf("%s: no anchors", c)
		}
		if r.zip == nil || r.phone == nil {
			t.Errorf("%s: missing zip or phone rule", c)
		}
		if _, ok := phonePatterns[c]; !ok {
			t.Errorf("%s: no phone pattern under test", c)
		}
	}
	if len(table) != len(All()) {
		t.Errorf("table has %d entries, enumeration has %d", len(table), len(All()))
	}
}

func TestPhone(t *testing.T) {
	r := NewSeededRand(1)
	for _, c := range All() {
		t.Run(string(c), func(t *testing.T) {
			re := phonePatterns[c]
			for range 50 {
				got := Phone(r, c)
				if !re.MatchString(got) {
					t.Fatalf("Phone(%s) = %q, want match for %s", c, got, re)
				}
			}
		})
	}
}

func TestPhoneStartsWithCallingCode(t *testing.T) {
	r := NewSeededRand(2)
	for _, c := range All() {
		got := Phone(r, c)
		want := c.CallingCode() + " "
		if got[:len(want)] != want {
			t.Errorf("Phone(%s) = %q, want prefix %q", c, got, want)
		}
	}
}

func TestZip(t *testing.T) {
	r := NewSeededRand(3)
	for _, c := range All() {
		t.Run(string(c), func(t *testing.T) {
			re := zipPattern(c)
			for range 50 {
				got := Zip(r, c)
				if !re.MatchString(got) {
					t.Fatalf("Zip(%s) = %q, want match for %s", c, got, re)
				}
			}
		})
	}
}

func TestUnsupportedCountryUsesDefault(t *testing.T) {
	r := NewSeededRand(4)
	for _, c := range []Code{"XX", "ZZ", "GB", ""} {
		t.Run("code "+string(c), func(t *testing.T) {
			if c.Supported() {
				t.Fatalf("%q should not be supported", c)
			}
			for range 20 {
				if got := Zip(r, c); !fiveDigitZip.MatchString(got) {
					t.Errorf("Zip(%q) = %q, want five digits", c, got)
				}
				if got := Phone(r, c); !phonePatterns[Default].MatchString(got) {
					t.Errorf("Phone(%q) = %q, want US format", c, got)
				}
			}
			if got := c.CallingCode(); got != "+1" {
				t.Errorf("CallingCode(%q) = %q, want +1", c, got)
			}
		})
	}
}

func TestHouseNumber(t *testing.T) {
	r := NewSeededRand(5)
	for range 500 {
		n, err := strconv.Atoi(HouseNumber(r))
		if err != nil {
			t.Fatalf("HouseNumber not numeric: %v", err)
		}
		if n < 1 || n > 2000 {
			t.Fatalf("HouseNumber = %d, want [1,2000]", n)
		}
	}
}

func TestFallbackAddress(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{FR, "Fallback Road, Anime City, FR"},
		{"XX", "Fallback Road, Anime City, XX"},
		{"", "Fallback Road, Anime City, US"},
	}
	for _, tt := range tests {
		if got := FallbackAddress(tt.code); got != tt.want {
			t.Errorf("FallbackAddress(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Code
		wantErr bool
	}{
		{"US", US, false},
		{"fr", FR, false},
		{" jp ", JP, false},
		{"xx", "XX", false},
		{"", "", true},
		{"USA", "", true},
		{"1A", "", true},
		{"<s", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCode) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidCode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNationality(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{US, "US"},
		{UK, "GB"},
		{FR, "FR"},
		{CN, "US"},
		{TW, "US"},
		{HK, "US"},
		{JP, "US"},
		{KR, "US"},
		{IN, "IN"},
		{RU, ""},
		{NG, ""},
		{"XX", ""},
	}
	for _, tt := range tests {
		if got := Nationality(tt.code); got != tt.want {
			t.Errorf("Nationality(%s) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestRandomIsSupported(t *testing.T) {
	r := NewSeededRand(6)
	seen := make(map[Code]bool)
	for range 2000 {
		c := Random(r)
		if !c.Supported() {
			t.Fatalf("Random returned unsupported %q", c)
		}
		seen[c] = true
	}
	if len(seen) != len(All()) {
		t.Errorf("Random covered %d countries, want %d", len(seen), len(All()))
	}
}
