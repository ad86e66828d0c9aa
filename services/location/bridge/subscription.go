package bridge

import (
	"context"
	"sync"

	"github.com/piresc/locationd/services/location/models"
)

// subscription buffers actions for one consumer. The queue is unbounded so
// that enqueue never blocks the platform callback goroutine.
type subscription struct {
	mu     sync.Mutex
	queue  []models.Action
	signal chan struct{}
	out    chan models.Action
	cancel context.CancelFunc
}

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{
		signal: make(chan struct{}, 1),
		out:    make(chan models.Action),
		cancel: cancel,
	}
}

func (s *subscription) enqueue(a models.Action) {
	s.mu.Lock()
	s.queue = append(s.queue, a)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *subscription) next() (models.Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil, false
	}
	a := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return a, true
}

// pump moves queued actions to out in order until ctx is done, then runs
// release and closes out.
func (s *subscription) pump(ctx context.Context, release func()) {
	defer close(s.out)
	defer release()

	for {
		if ctx.Err() != nil {
			return
		}

		a, ok := s.next()
		if !ok {
			select {
			case <-s.signal:
				continue
			case <-ctx.Done():
				return
			}
		}

		select {
		case s.out <- a:
		case <-ctx.Done():
			return
		}
	}
}
