package compatibility

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stellar/internal/ashtakoota"
	"stellar/internal/domain"
	"stellar/internal/ports"
)

// Service wraps the pure engine with profile lookup and the external result
// cache. The engine never learns about either.
type Service struct {
	people  ports.PersonRepository
	results ports.ResultRepository
	engine  *ashtakoota.Engine
	log     *zap.Logger
}

func New(people ports.PersonRepository, results ports.ResultRepository, engine *ashtakoota.Engine, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{people: people, results: results, engine: engine, log: log}
}

// Evaluate is the stateless path: raw classifications in, verdict out.
func (s *Service) Evaluate(a, b domain.BirthProfile, kind domain.ReportKind) (domain.CompatibilityResult, error) {
	return s.engine.Evaluate(a, b, kind)
}

// Report returns the stored verdict for a pair when one exists and computes
// and stores it otherwise.
func (s *Service) Report(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind) (domain.CompatibilityResult, error) {
	if !kind.Valid() {
		return domain.CompatibilityResult{}, fmt.Errorf("report kind %q: unknown", kind)
	}
	if cached, ok, err := s.results.Get(ctx, subjectID, counterpartID, kind); err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("result cache: %w", err)
	} else if ok {
		return cached, nil
	}

	subject, err := s.people.Get(ctx, subjectID)
	if err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("subject %s: %w", subjectID, err)
	}
	counterpart, err := s.people.Get(ctx, counterpartID)
	if err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("counterpart %s: %w", counterpartID, err)
	}

	res, err := s.engine.Evaluate(subject.Birth, counterpart.Birth, kind)
	if err != nil {
		return domain.CompatibilityResult{}, err
	}
	if err := s.results.Put(ctx, subjectID, counterpartID, kind, res); err != nil {
		// The verdict is still good; losing the cache write is not fatal.
		s.log.Warn("storing compatibility result failed",
			zap.String("subject", subjectID),
			zap.String("counterpart", counterpartID),
			zap.Error(err))
	}
	s.log.Info("compatibility computed",
		zap.String("subject", subjectID),
		zap.String("counterpart", counterpartID),
		zap.String("kind", string(kind)),
		zap.Float64("total", res.Total))
	return res, nil
}
