package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"idconsole/internal/types"
)

// ErrNotFound is returned for points outside every timezone polygon
var ErrNotFound = errors.New("timezone not found")

// Service provides timezone lookup functionality
type Service interface {
	Lookup(point types.GeoPoint) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf loads its polygon set into memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Lookup returns IANA names like "Europe/Paris" or "Asia/Tokyo"
func (s *service) Lookup(point types.GeoPoint) (string, error) {
	name := s.finder.GetTimezoneName(point.Longitude, point.Latitude)
	if name == "" {
		return "", fmt.Errorf("%w for %s", ErrNotFound, point)
	}
	return name, nil
}
