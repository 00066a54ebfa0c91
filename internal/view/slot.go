package view

import (
	"context"
	"sync"

	"booking-portal/internal/infra/backend"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is the rendered form of a Slot.
type State[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
	Error  string `json:"error,omitempty"`
}

// Slot holds one asynchronously loaded piece of view state. Every load takes
// a ticket from Begin; only the holder of the latest ticket may settle the
// slot, so a slow earlier response can never overwrite a newer one.
type Slot[T any] struct {
	mu    sync.Mutex
	seq   uint64
	state State[T]
}

func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{state: State[T]{Status: StatusIdle}}
}

// Begin starts a load and returns its ticket. Earlier tickets become stale.
func (s *Slot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state.Status = StatusLoading
	s.state.Error = ""
	return s.seq
}

// Resolve applies v if ticket is still the latest. It reports whether the
// value was applied.
func (s *Slot[T]) Resolve(ticket uint64, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.seq {
		return false
	}
	s.state = State[T]{Status: StatusSuccess, Data: v}
	return true
}

// Fail records err as the user-facing message if ticket is still the latest.
// The last good data is kept.
func (s *Slot[T]) Fail(ticket uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket != s.seq {
		return false
	}
	s.state.Status = StatusError
	s.state.Error = backend.Message(err)
	return true
}

// Update changes the settled value in place without issuing a ticket.
func (s *Slot[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Data = fn(s.state.Data)
}

func (s *Slot[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load runs fn under a fresh ticket and settles the slot with its outcome.
func (s *Slot[T]) Load(ctx context.Context, fn func(context.Context) (T, error)) error {
	ticket := s.Begin()
	v, err := fn(ctx)
	if err != nil {
		s.Fail(ticket, err)
		return err
	}
	s.Resolve(ticket, v)
	return nil
}
