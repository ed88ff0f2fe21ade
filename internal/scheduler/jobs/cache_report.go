package jobs

import (
	"context"

	"github.com/wonny/pairlens/backend/internal/contracts"
	"github.com/wonny/pairlens/backend/pkg/logger"
)

// CacheReportName is the scheduler name of the cache report job
const CacheReportName = "cache_report"

// StatsFunc returns the current cache occupancy
type StatsFunc func() contracts.CacheStats

// CacheReportJob periodically logs cache occupancy.
// Entries are never swept here; expiry stays lazy on read.
type CacheReportJob struct {
	stats    StatsFunc
	schedule string
	logger   *logger.Logger
}

// NewCacheReportJob creates a new cache report job
func NewCacheReportJob(stats StatsFunc, schedule string, log *logger.Logger) *CacheReportJob {
	return &CacheReportJob{
		stats:    stats,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *CacheReportJob) Name() string {
	return CacheReportName
}

// Schedule returns the cron schedule
func (j *CacheReportJob) Schedule() string {
	return j.schedule
}

// Run logs the cache stats
func (j *CacheReportJob) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := j.stats()
	j.logger.WithFields(map[string]interface{}{
		"price_entries":       s.PriceEntries,
		"pairs_entries":       s.PairsEntries,
		"correlation_entries": s.CorrelationEntries,
		"total":               s.Total(),
	}).Info("Cache report")

	return nil
}
