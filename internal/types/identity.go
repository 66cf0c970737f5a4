package types

// Data origins reported in Source
const (
	SourceGeocoder = "geocoder"
	SourceService  = "service"
	SourceFallback = "fallback"
)

// Identity is the assembled result returned to callers. Every field is
// populated regardless of upstream failures.
type Identity struct {
	ID      string  `json:"id"`
	Country string  `json:"country"`
	Address Address `json:"address"`
	Person  Person  `json:"person"`
	Source  Source  `json:"source"`
}

// Source records where each half of an identity came from
type Source struct {
	Address  string `json:"address"`
	Person   string `json:"person"`
	Attempts int    `json:"attempts"`
}
