package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stellar/internal/domain"
	"stellar/internal/ports"
)

// Service manages stored people. Birth classifications are validated on the
// way in so the repository only ever holds in-domain values.
type Service struct {
	people ports.PersonRepository
	eph    ports.Ephemeris
}

// New builds the service. eph may be nil when no ephemeris collaborator is
// configured; CreateFromBirth then refuses.
func New(people ports.PersonRepository, eph ports.Ephemeris) *Service {
	return &Service{people: people, eph: eph}
}

func (s *Service) Create(ctx context.Context, name string, kind domain.PersonKind, birth domain.BirthProfile) (domain.Person, error) {
	if name == "" {
		return domain.Person{}, fmt.Errorf("name is required")
	}
	if kind != domain.PersonUser && kind != domain.PersonPartner {
		return domain.Person{}, fmt.Errorf("person kind %q: unknown", kind)
	}
	if err := birth.Validate(); err != nil {
		return domain.Person{}, fmt.Errorf("birth profile: %w", err)
	}
	p := domain.Person{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      kind,
		Birth:     birth,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.people.Create(ctx, p); err != nil {
		return domain.Person{}, err
	}
	return p, nil
}

// CreateFromBirth derives the lunar classification from birth particulars via
// the ephemeris collaborator, then stores the person like Create does.
func (s *Service) CreateFromBirth(ctx context.Context, name string, kind domain.PersonKind, gender domain.Gender, details ports.BirthDetails) (domain.Person, error) {
	if s.eph == nil {
		return domain.Person{}, fmt.Errorf("ephemeris is not configured")
	}
	birth, err := s.eph.LunarPosition(ctx, details)
	if err != nil {
		return domain.Person{}, fmt.Errorf("derive birth profile: %w", err)
	}
	birth.Gender = gender
	return s.Create(ctx, name, kind, birth)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Person, error) {
	return s.people.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.people.Delete(ctx, id)
}
