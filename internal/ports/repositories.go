package ports

import (
	"context"

	"stellar/internal/domain"
)

// PersonRepository stores birth profiles for users and saved partners.
type PersonRepository interface {
	Create(ctx context.Context, p domain.Person) error
	Get(ctx context.Context, id string) (domain.Person, error)
	Delete(ctx context.Context, id string) error
}

// ResultRepository is the external cache of verdicts, keyed by the evaluation
// inputs. The engine stays unaware of it.
type ResultRepository interface {
	Get(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind) (domain.CompatibilityResult, bool, error)
	Put(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind, res domain.CompatibilityResult) error
}
