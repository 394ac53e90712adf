package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"stellar/internal/domain"
	"stellar/internal/ports"
)

// Enqueue inserts a queued match job for a pair. Duplicate queued jobs for the
// same key are collapsed onto the existing row.
func (db *DB) Enqueue(ctx context.Context, subjectID, counterpartID string, kind domain.ReportKind) (string, error) {
	var jobID string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO match_jobs (subject_id, counterpart_id, report_kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (subject_id, counterpart_id, report_kind) WHERE status = 'queued'
		DO UPDATE SET queued_at = match_jobs.queued_at
		RETURNING id
	`, subjectID, counterpartID, string(kind)).Scan(&jobID)
	return jobID, err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.MatchJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var kind string
	err = tx.QueryRow(ctx, `
		SELECT id, subject_id, counterpart_id, report_kind FROM match_jobs
		WHERE status = 'queued'
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`).Scan(&job.ID, &job.SubjectID, &job.CounterpartID, &kind)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	job.Kind = domain.ReportKind(kind)

	if _, err = tx.Exec(ctx, `
		UPDATE match_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
	`, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `UPDATE match_jobs SET status='completed', finished_at=now() WHERE id=$1`, jobID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `UPDATE match_jobs SET status='failed', finished_at=now(), failure=$2 WHERE id=$1`, jobID, reason)
	return err
}
