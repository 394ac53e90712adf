package matchrunner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"stellar/internal/ports"
)

// Processor performs the work for one claimed match job.
type Processor interface {
	Process(ctx context.Context, job ports.MatchJob) error
}

// ReportProcessor computes a pair's verdict through the compatibility service,
// which also stores it. Idempotent: re-running a job hits the cache.
type ReportProcessor struct {
	Compat ports.Compatibility
}

func (p ReportProcessor) Process(ctx context.Context, job ports.MatchJob) error {
	if _, err := p.Compat.Report(ctx, job.SubjectID, job.CounterpartID, job.Kind); err != nil {
		return fmt.Errorf("job %s: %w", job.ID, err)
	}
	return nil
}

// Run starts worker goroutines that claim queued match jobs and process them.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, log *zap.Logger) {
	if concurrency < 1 {
		return
	}
	if log == nil {
		log = zap.NewNop()
	}
	jobsCh := make(chan ports.MatchJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						log.Warn("job claim failed", zap.Error(err))
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				if err := processor.Process(ctx, job); err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					log.Warn("match job failed", zap.Int("worker", idx), zap.String("job", job.ID), zap.Error(err))
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID); err != nil {
					log.Warn("completing match job failed", zap.Int("worker", idx), zap.String("job", job.ID), zap.Error(err))
				}
			}
		}(i)
	}
}
