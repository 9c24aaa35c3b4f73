package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

const (
	defaultSessionCheckInterval = 30 * time.Second
	defaultRefreshSkew          = 30 * time.Second
)

type clientSessionJob struct {
	auth        adapter.AuthClient
	authService ClientAuthService
	now         func() time.Time
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that refreshes the access
// token through auth on a ticker and persists the result through
// authService. The job is idle until Start is called.
func NewClientSessionJob(auth adapter.AuthClient, authService ClientAuthService, logger *logger.Logger) ClientSessionJob {
	return &clientSessionJob{auth: auth, authService: authService, now: time.Now, logger: logger}
}

// Start implements ClientSessionJob. It stops any previously running job,
// then launches a background goroutine that checks the session every
// interval. Zero or negative interval and skew fall back to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSessionJob) Start(ctx context.Context, interval, skew time.Duration) {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}
	if skew <= 0 {
		skew = defaultRefreshSkew
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx, skew)
			}
		}
	}()
}

// tick refreshes when the token expires within skew. Anonymous sessions and
// tokens without an expiry are left alone: there is nothing to keep alive.
func (j *clientSessionJob) tick(ctx context.Context, skew time.Duration) {
	if j.auth.Token() == "" {
		return
	}

	expiry, ok := j.auth.SessionExpiry()
	if !ok || expiry.Sub(j.now()) > skew {
		return
	}

	if err := j.auth.Refresh(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "*clientSessionJob.tick").Msg("proactive refresh failed")
	}

	if err := j.authService.Persist(ctx); err != nil {
		j.logger.Err(err).Str("func", "*clientSessionJob.tick").Msg("failed to persist session")
	}
}

// Stop implements ClientSessionJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
