package ports

import (
	"context"

	"stellar/internal/domain"
)

// BirthDetails is what the external ephemeris collaborator needs to derive a
// lunar classification. The engine itself never sees these.
type BirthDetails struct {
	Date      string  // YYYY-MM-DD
	Time      string  // HH:MM
	Timezone  string  // IANA name
	Latitude  float64
	Longitude float64
}

// Ephemeris derives the (sign, asterism, subdivision) triple from birth
// particulars. Implemented by the external computation service adapter.
type Ephemeris interface {
	LunarPosition(ctx context.Context, birth BirthDetails) (domain.BirthProfile, error)
}

// Compatibility produces verdicts, either statelessly from raw classifications
// or cached per stored pair.
type Compatibility interface {
	Evaluate(a, b domain.BirthProfile, kind domain.ReportKind) (domain.CompatibilityResult, error)
	Report(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind) (domain.CompatibilityResult, error)
}

// Profiles manages stored people (users and saved partners).
type Profiles interface {
	Create(ctx context.Context, name string, kind domain.PersonKind, birth domain.BirthProfile) (domain.Person, error)
	CreateFromBirth(ctx context.Context, name string, kind domain.PersonKind, gender domain.Gender, details BirthDetails) (domain.Person, error)
	Get(ctx context.Context, id string) (domain.Person, error)
	Delete(ctx context.Context, id string) error
}
