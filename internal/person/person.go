// Package person resolves the profile half of an identity from the
// random user service, substituting a fixed persona when it is unavailable.
package person

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"idconsole/internal/country"
	"idconsole/internal/providers/randomuser"
	"idconsole/internal/types"
)

// FallbackPersona replaces the whole profile when the lookup fails
var FallbackPersona = types.Person{
	Name:     "Miku Hatsune",
	Gender:   "Female",
	PhotoURL: "https://ui-avatars.com/api/?name=Miku+Hatsune&background=39c5bb&color=fff&size=128",
}

// ProfileProvider fetches one random profile, optionally biased by nationality
type ProfileProvider interface {
	GetUser(ctx context.Context, nationality string) (*randomuser.Result, error)
}

// Service resolves a person profile. Phone is always left empty.
type Service interface {
	Resolve(ctx context.Context, c country.Code) (types.Person, bool)
}

type personService struct {
	provider ProfileProvider
	logger   *slog.Logger
}

// NewPersonService creates a service backed by randomuser.me, or the
// compatible service at baseURL
func NewPersonService(logger *slog.Logger, baseURL, userAgent string) Service {
	return NewPersonServiceWithProvider(logger, randomuser.NewClient(logger, baseURL, userAgent))
}

// NewPersonServiceWithProvider creates a service with a custom provider.
// This is useful for testing with mock providers
func NewPersonServiceWithProvider(logger *slog.Logger, provider ProfileProvider) Service {
	return &personService{
		provider: provider,
		logger:   logger.With("component", "person-service"),
	}
}

// Resolve issues exactly one lookup. The boolean reports whether the
// profile came from the service rather than the fallback persona.
func (s *personService) Resolve(ctx context.Context, c country.Code) (types.Person, bool) {
	nat := country.Nationality(c)

	user, err := s.provider.GetUser(ctx, nat)
	if err == nil {
		err = validate(user)
	}
	if err != nil {
		s.logger.Warn("using fallback persona",
			"country", c,
			"nationality", nat,
			"error", err,
		)
		return FallbackPersona, false
	}

	return mapUser(user), true
}

func validate(user *randomuser.Result) error {
	if user == nil {
		return fmt.Errorf("user response is nil")
	}
	if user.Name.First == "" && user.Name.Last == "" {
		return fmt.Errorf("user response has no name")
	}
	if strings.TrimSpace(user.Gender) == "" {
		return fmt.Errorf("user response has no gender")
	}
	if user.Picture.Large == "" {
		return fmt.Errorf("user response has no picture")
	}
	return nil
}

func mapUser(user *randomuser.Result) types.Person {
	return types.Person{
		Name:     strings.TrimSpace(user.Name.First + " " + user.Name.Last),
		Gender:   capitalize(user.Gender),
		PhotoURL: user.Picture.Large,
	}
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
