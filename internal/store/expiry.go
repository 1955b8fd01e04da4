package store

import (
	"time"

	"github.com/Black-Room-Studios/livevibe-server/pkg/logger"
)

// TaskRunner executes a task once after the given delay.
type TaskRunner interface {
	Schedule(d time.Duration, task func())
}

// TimerRunner runs tasks on real timers.
type TimerRunner struct{}

func (TimerRunner) Schedule(d time.Duration, task func()) {
	time.AfterFunc(d, task)
}

// Remover is the slice of the post store the scheduler needs.
type Remover interface {
	Remove(postID string) (string, bool)
}

// AssetDeleter reclaims a stored asset by its reference.
type AssetDeleter interface {
	Delete(ref string) error
}

// ExpiryScheduler guarantees a post is removed no later than its lifetime
// after insertion, whether or not any query sweeps it first. The timer path
// and the query-driven sweep race harmlessly: Remove is idempotent and yields
// the asset reference at most once, so exactly one delete request is issued.
type ExpiryScheduler struct {
	runner TaskRunner
	assets AssetDeleter
	log    logger.Logger
}

// NewExpiryScheduler creates an ExpiryScheduler.
func NewExpiryScheduler(runner TaskRunner, assets AssetDeleter, log logger.Logger) *ExpiryScheduler {
	return &ExpiryScheduler{
		runner: runner,
		assets: assets,
		log:    log,
	}
}

// Watch schedules the one-shot removal of postID after ttl. If the post is
// still present when the timer fires, its asset is reclaimed best-effort.
func (e *ExpiryScheduler) Watch(posts Remover, postID string, ttl time.Duration) {
	e.runner.Schedule(ttl, func() {
		ref, ok := posts.Remove(postID)
		if !ok {
			// Already gone, swept by a query.
			return
		}
		e.log.Debug("post expired", "post_id", postID)
		if err := e.assets.Delete(ref); err != nil {
			e.log.Warn("failed to delete expired asset", "ref", ref, "err", err)
		}
	})
}
