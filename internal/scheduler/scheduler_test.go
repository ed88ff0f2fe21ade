package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/internal/scheduler/jobs"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

type flakyJob struct {
	name     string
	schedule string
	failures int32
	runs     int32
}

func (j *flakyJob) Name() string     { return j.name }
func (j *flakyJob) Schedule() string { return j.schedule }

func (j *flakyJob) Run(ctx context.Context) error {
	n := atomic.AddInt32(&j.runs, 1)
	if n <= j.failures {
		return errors.New("transient")
	}
	return nil
}

func TestAddJob(t *testing.T) {
	s := New(logger.Nop())

	require.NoError(t, s.AddJob(&flakyJob{name: "b", schedule: "@hourly"}))
	require.NoError(t, s.AddJob(&flakyJob{name: "a", schedule: "0 */5 * * * *"}))

	err := s.AddJob(&flakyJob{name: "a", schedule: "@hourly"})
	assert.EqualError(t, err, "job a already exists")

	err = s.AddJob(&flakyJob{name: "bad", schedule: "not a schedule"})
	assert.Error(t, err)

	assert.Equal(t, []string{"a", "b"}, s.GetAllJobs())

	require.NoError(t, s.RemoveJob("a"))
	assert.Error(t, s.RemoveJob("a"))
	assert.Equal(t, []string{"b"}, s.GetAllJobs())
}

func TestRunJobRetries(t *testing.T) {
	s := New(logger.Nop(), WithRetry(2, time.Millisecond))
	job := &flakyJob{name: "flaky", schedule: "@hourly", failures: 2}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunJob(context.Background(), "flaky")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&job.runs))

	history, err := s.GetJobHistory("flaky")
	require.NoError(t, err)
	require.Len(t, history.Results, 1)
	assert.Equal(t, 1.0, history.GetSuccessRate())
}

func TestRunJobExhausted(t *testing.T) {
	s := New(logger.Nop(), WithRetry(1, time.Millisecond))
	job := &flakyJob{name: "broken", schedule: "@hourly", failures: 10}
	require.NoError(t, s.AddJob(job))

	result, err := s.RunJob(context.Background(), "broken")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "transient", result.Error)
	assert.Equal(t, int32(2), atomic.LoadInt32(&job.runs))

	_, err = s.RunJob(context.Background(), "missing")
	assert.Error(t, err)
}

func TestJobHistoryBounded(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < maxHistory+20; i++ {
		h.AddResult(JobResult{Success: i%2 == 0})
	}
	assert.Len(t, h.Results, maxHistory)
	assert.InDelta(t, 0.5, h.GetSuccessRate(), 1e-9)
	assert.Zero(t, (&JobHistory{}).GetSuccessRate())
}

func TestCacheReportJob(t *testing.T) {
	calls := 0
	job := jobs.NewCacheReportJob(func() contracts.CacheStats {
		calls++
		return contracts.CacheStats{PriceEntries: 2}
	}, "0 */5 * * * *", logger.Nop())

	s := New(logger.Nop())
	require.NoError(t, s.AddJob(job))

	result, err := s.RunJob(context.Background(), jobs.CacheReportName)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, calls)
}
