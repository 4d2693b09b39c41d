package validate

import (
	"context"
	"log/slog"
	"talentscout/app/client/nominatim"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
	"github.com/samber/do"
)

// Service answers yes/no validation questions about candidate contact fields.
// It never returns an error to the dialogue engine: anything that cannot be
// verified counts as invalid.
type Service struct {
	nominatimClient *nominatim.Client
	validate        *validator.Validate
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		nominatimClient: do.MustInvoke[*nominatim.Client](di),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (s *Service) Email(email string) bool {
	if email == "" {
		return false
	}

	if err := s.validate.Var(email, "email"); err != nil {
		slog.Warn("Email validation failed", "email", email)
		return false
	}

	return true
}

func (s *Service) Phone(phone string) bool {
	parsed, err := phonenumbers.Parse(phone, "")
	if err != nil {
		slog.Warn("Phone number parsing failed", "phone", phone, "error", err)
		return false
	}

	if !phonenumbers.IsValidNumber(parsed) {
		slog.Warn("Phone number is not valid", "phone", phone)
		return false
	}

	return true
}

func (s *Service) Location(ctx context.Context, location string) bool {
	found, err := s.nominatimClient.Lookup(ctx, location)
	if err != nil {
		slog.Warn("Location lookup failed", "location", location, "error", err)
		return false
	}

	if !found {
		slog.Warn("Location not recognized", "location", location)
	}

	return found
}
