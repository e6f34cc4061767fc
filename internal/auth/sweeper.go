package auth

import (
	"log"
	"sync"
	"time"

	"github.com/badekart/badekart-backend/internal/db"
)

// SessionSweeper periodically deletes expired session rows. It is an explicit
// object rather than a package-level timer: the purge function, clock, and
// interval are all injected so the loop can be driven in tests without a
// database or real time.
type SessionSweeper struct {
	interval time.Duration
	now      func() time.Time
	purge    func(before time.Time) (int64, error)

	mu          sync.Mutex
	subscribers []func(purged int64)
	stop        chan struct{}
	done        chan struct{}
}

// NewSessionSweeper returns a sweeper with the production purge (a single
// DELETE against the sessions table). Interval must be positive.
func NewSessionSweeper(interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		interval: interval,
		now:      time.Now,
		purge: func(before time.Time) (int64, error) {
			res := db.DB.Where("expires_at < ?", before).Delete(&Session{})
			return res.RowsAffected, res.Error
		},
	}
}

// NewSessionSweeperWith is the fully-injected constructor used by tests.
func NewSessionSweeperWith(interval time.Duration, now func() time.Time, purge func(time.Time) (int64, error)) *SessionSweeper {
	return &SessionSweeper{interval: interval, now: now, purge: purge}
}

// Subscribe registers a callback invoked after every sweep with the number of
// sessions purged. Callbacks run on the sweeper goroutine.
func (s *SessionSweeper) Subscribe(fn func(purged int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SweepOnce runs a single purge and notifies subscribers.
func (s *SessionSweeper) SweepOnce() {
	purged, err := s.purge(s.now())
	if err != nil {
		log.Printf("[auth] session sweep failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("[auth] purged %d expired sessions", purged)
	}

	s.mu.Lock()
	subs := make([]func(int64), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(purged)
	}
}

func (s *SessionSweeper) Start() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.SweepOnce()
			case <-stop:
				return
			}
		}
	}()
}

func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}
