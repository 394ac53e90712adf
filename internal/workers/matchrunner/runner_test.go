package matchrunner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar/internal/ashtakoota"
	"stellar/internal/domain"
	"stellar/internal/ports"
	compatsvc "stellar/internal/services/compatibility"
)

type memPeople map[string]domain.Person

func (m memPeople) Create(_ context.Context, p domain.Person) error { m[p.ID] = p; return nil }
func (m memPeople) Get(_ context.Context, id string) (domain.Person, error) {
	p, ok := m[id]
	if !ok {
		return domain.Person{}, domain.ErrNotFound
	}
	return p, nil
}
func (m memPeople) Delete(_ context.Context, id string) error { delete(m, id); return nil }

type memResults struct {
	mu    sync.Mutex
	store map[string]domain.CompatibilityResult
}

func (m *memResults) Get(_ context.Context, a, b string, kind domain.ReportKind) (domain.CompatibilityResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.store[a+"|"+b+"|"+string(kind)]
	return res, ok, nil
}

func (m *memResults) Put(_ context.Context, a, b string, kind domain.ReportKind, res domain.CompatibilityResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[a+"|"+b+"|"+string(kind)] = res
	return nil
}

type memJobs struct {
	mu        sync.Mutex
	queue     []ports.MatchJob
	completed []string
	failed    []string
}

func (m *memJobs) Enqueue(_ context.Context, a, b string, kind domain.ReportKind) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := a + ":" + b
	m.queue = append(m.queue, ports.MatchJob{ID: id, SubjectID: a, CounterpartID: b, Kind: kind})
	return id, nil
}

func (m *memJobs) ClaimNext(context.Context) (ports.MatchJob, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return ports.MatchJob{}, false, nil
	}
	job := m.queue[0]
	m.queue = m.queue[1:]
	return job, true, nil
}

func (m *memJobs) MarkCompleted(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = append(m.completed, id)
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, id string, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, id)
	return nil
}

func (m *memJobs) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.completed), len(m.failed)
}

func TestRunProcessesQueuedJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	people := memPeople{
		"u1": {ID: "u1", Birth: domain.BirthProfile{Sign: 5, Asterism: 14, Subdivision: 2}},
		"p1": {ID: "p1", Birth: domain.BirthProfile{Sign: 5, Asterism: 14, Subdivision: 2}},
	}
	results := &memResults{store: map[string]domain.CompatibilityResult{}}
	svc := compatsvc.New(people, results, ashtakoota.NewEngine(), nil)

	jobs := &memJobs{}
	_, err := jobs.Enqueue(ctx, "u1", "p1", domain.ReportRomantic)
	require.NoError(t, err)
	_, err = jobs.Enqueue(ctx, "u1", "missing", domain.ReportRomantic)
	require.NoError(t, err)

	Run(ctx, jobs, ReportProcessor{Compat: svc}, 2, 5*time.Millisecond, nil)

	require.Eventually(t, func() bool {
		done, failed := jobs.counts()
		return done == 1 && failed == 1
	}, 2*time.Second, 10*time.Millisecond)

	_, ok, err := results.Get(ctx, "u1", "p1", domain.ReportRomantic)
	require.NoError(t, err)
	assert.True(t, ok, "verdict stored by the processor")
}
