package jobs

import (
	"fmt"
	"log/slog"
)

type job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the background jobs together.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
	logger  *slog.Logger
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager wires the stock summary job. An empty schedule disables it.
func NewJobManager(summaries stockSummarizer, schedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{logger: logger}
	if schedule != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "stock summary",
			job:  NewStockSummaryJob(summaries, schedule, logger),
		})
	}
	return jm
}

// StartAll starts every job. If one fails, the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj)
	}
	if len(jm.jobs) == 0 {
		jm.logger.Info("No background jobs configured")
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
