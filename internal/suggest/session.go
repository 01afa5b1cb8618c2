package suggest

import (
	"context"
	"strings"
	"sync"
	"time"
)

const DefaultDelay = 250 * time.Millisecond

// Session runs suggestion cycles for a stream of inputs where only the latest
// input matters. Submitting a new input cancels the cycle in flight, and a
// cancelled cycle never delivers its items.
type Session struct {
	suggester *Suggester
	delay     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSession(suggester *Suggester, delay time.Duration) *Session {
	if delay < 0 {
		delay = 0
	}
	return &Session{suggester: suggester, delay: delay}
}

// Submit starts a cycle for input. deliver receives the items unless the
// cycle is superseded first; it is called with the session lock held and must
// not call Submit.
func (s *Session) Submit(ctx context.Context, input string, deliver func([]Item)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if strings.TrimSpace(input) == "" {
		s.mu.Unlock()
		return
	}
	cycleCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()

		if !s.wait(cycleCtx) {
			return
		}

		items := s.suggester.Suggest(cycleCtx, input)

		s.mu.Lock()
		defer s.mu.Unlock()
		if cycleCtx.Err() != nil {
			return
		}
		deliver(items)
	}()
}

func (s *Session) wait(ctx context.Context) bool {
	if s.delay == 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Wait blocks until every started cycle has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels the cycle in flight and waits for it to return.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
}
