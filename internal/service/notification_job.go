package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// PushRunner is one websocket connection lifetime: Run blocks until the
// connection drops or ctx is cancelled. The adapter's push client
// implements it.
type PushRunner interface {
	Run(ctx context.Context) error
}

// NotificationJob keeps the live push channel alive for the duration of a
// session: it dials, forwards incoming entries into the feed, and redials
// after the retry interval when the connection drops.
type NotificationJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped first. If retryInterval is zero or negative it defaults
	// to 15 seconds.
	Start(ctx context.Context, retryInterval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has fully
	// terminated. Safe to call when the job is not running.
	Stop()
}

type notificationJob struct {
	feed    NotificationFeed
	dial    func(out chan<- models.Notification) (PushRunner, error)
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNotificationJob creates an idle job. dial builds a fresh push client
// delivering into out; it is called once per connection attempt so every
// redial gets a clean connection state.
func NewNotificationJob(feed NotificationFeed, dial func(out chan<- models.Notification) (PushRunner, error), log *logger.Logger) NotificationJob {
	return &notificationJob{feed: feed, dial: dial, logger: log}
}

func (j *notificationJob) Start(ctx context.Context, retryInterval time.Duration) {
	if retryInterval <= 0 {
		retryInterval = 15 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(2)
	j.mu.Unlock()

	out := make(chan models.Notification, 16)

	go func() {
		defer j.wg.Done()
		for {
			select {
			case <-jobCtx.Done():
				return
			case entry := <-out:
				j.feed.Publish(entry)
			}
		}
	}()

	go func() {
		defer j.wg.Done()
		for {
			j.runOnce(jobCtx, out)

			select {
			case <-jobCtx.Done():
				return
			case <-time.After(retryInterval):
			}
		}
	}()
}

func (j *notificationJob) runOnce(ctx context.Context, out chan<- models.Notification) {
	runner, err := j.dial(out)
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "notificationJob.runOnce").Msg("could not set up push client")
		return
	}

	if err = runner.Run(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "notificationJob.runOnce").Msg("push connection lost")
	}
}

func (j *notificationJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
