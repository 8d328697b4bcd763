package observables

import (
	"context"
	"sync"
)

// Subject is a hot observable that multicasts the events pushed into it to all of its current subscribers.
// Once a Subject received a terminal event, later subscribers receive that terminal event immediately.
// The zero value is ready to use.
type Subject[T any] struct {
	mu          sync.Mutex
	subscribers []*subscriber[T]
	terminated  bool
	err         error
}

var (
	_ Observable[any] = (*Subject[any])(nil)
	_ Observer[any]   = (*Subject[any])(nil)
)

// NewSubject returns a new Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe implements Observable.
func (s *Subject[T]) Subscribe(ctx context.Context, observer Observer[T]) {
	if contextDone(ctx) {
		return
	}

	if observer == nil {
		observer = ObserverFuncs[T]{}
	}

	ctx, cancel := context.WithCancelCause(ctx)

	sub := &subscriber[T]{
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
	}

	s.mu.Lock()

	if s.terminated {
		err := s.err
		s.mu.Unlock()

		if err != nil {
			sub.Error(err)
			return
		}

		sub.Complete()

		return
	}

	s.subscribers = append(s.prune(), sub)

	s.mu.Unlock()
}

// Next pushes elem to all current subscribers.
func (s *Subject[T]) Next(elem T) {
	for _, sub := range s.active(false, nil) {
		sub.Next(elem)
	}
}

// Complete completes all current subscribers.
// Calls after the first Complete or Error are ignored.
func (s *Subject[T]) Complete() {
	for _, sub := range s.active(true, nil) {
		sub.Complete()
	}
}

// Error fails all current subscribers with err.
// Calls after the first Complete or Error are ignored.
func (s *Subject[T]) Error(err error) {
	for _, sub := range s.active(true, err) {
		sub.Error(err)
	}
}

// active removes subscribers whose subscription has ended, and returns a snapshot of the remaining ones.
// If terminate is true, the Subject is marked terminated with err, and its subscribers are released.
// The snapshot allows subscribers to reenter the Subject while events are being delivered.
func (s *Subject[T]) active(terminate bool, err error) []*subscriber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminated {
		return nil
	}

	subs := s.prune()
	s.subscribers = subs

	snapshot := make([]*subscriber[T], len(subs))
	copy(snapshot, subs)

	if terminate {
		s.terminated = true
		s.err = err
		s.subscribers = nil
	}

	return snapshot
}

// prune returns the subscribers whose subscription has not ended, reusing the backing array.
// s.mu must be held.
func (s *Subject[T]) prune() []*subscriber[T] {
	subs := s.subscribers[:0]
	for _, sub := range s.subscribers {
		if !contextDone(sub.ctx) {
			subs = append(subs, sub)
		}
	}

	clear(s.subscribers[len(subs):])

	return subs
}
