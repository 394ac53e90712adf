package ports

import (
	"context"

	"stellar/internal/domain"
)

// MatchJob is a queued request to precompute one pair's verdict.
type MatchJob struct {
	ID            string
	SubjectID     string
	CounterpartID string
	Kind          domain.ReportKind
}

// JobRepository supports enqueueing, claiming and finishing match jobs.
type JobRepository interface {
	Enqueue(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind) (jobID string, err error)
	ClaimNext(ctx context.Context) (job MatchJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
}
