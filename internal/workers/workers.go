package workers

import (
	"context"
	"time"
)

// Jobs runs a set of background jobs as one unit. Nil jobs are skipped so
// optional jobs can be passed unconditionally.
type Jobs struct {
	jobs []Job
}

func NewJobs(jobs ...Job) *Jobs {
	return &Jobs{jobs: jobs}
}

func (j *Jobs) Start(ctx context.Context, retryInterval time.Duration) {
	for _, job := range j.jobs {
		if job == nil {
			continue
		}
		job.Start(ctx, retryInterval)
	}
}

// Stop stops jobs in reverse start order.
func (j *Jobs) Stop() {
	for i := len(j.jobs) - 1; i >= 0; i-- {
		if j.jobs[i] == nil {
			continue
		}
		j.jobs[i].Stop()
	}
}
