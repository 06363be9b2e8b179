// Package fetch holds the async view-state machinery every screen shares:
// a single-operation state cell with a stale-result guard, and a tagged
// outcome type for settle-all fan-outs.
package fetch

// Phase tracks where a single asynchronous operation stands.
type Phase int

const (
	// Idle means no request has been issued yet.
	Idle Phase = iota
	// Loading means a request is in flight.
	Loading
	// Success means the last request resolved and Value holds the payload.
	Success
	// Error means the last request failed and Err holds the reason.
	Error
)

// State is the per-screen view-state cell for one asynchronous operation.
// Triggering is re-entrant: Begin from Success or Error simply returns to
// Loading. Each Begin bumps an internal generation; a Resolve carrying a
// stale generation is a no-op, which is what protects a screen from results
// that land after a newer request was issued or the screen was torn down.
// Nothing cancels the underlying request, and nothing times it out: a hung
// request leaves the cell Loading until a newer trigger supersedes it.
type State[T any] struct {
	phase Phase
	value T
	err   error
	gen   uint64
}

// Phase returns the current phase.
func (s *State[T]) Phase() Phase { return s.phase }

// Loading reports whether a request is in flight.
func (s *State[T]) Loading() bool { return s.phase == Loading }

// Value returns the last successful payload. Only meaningful in Success.
func (s *State[T]) Value() T { return s.value }

// Err returns the failure of the last attempt. Only meaningful in Error.
func (s *State[T]) Err() error { return s.err }

// Begin moves the cell to Loading and returns the generation token the
// eventual Resolve must present.
func (s *State[T]) Begin() uint64 {
	s.gen++
	s.phase = Loading
	s.err = nil
	return s.gen
}

// Resolve settles the generation gen with a value or an error. It reports
// whether the result was applied; stale generations are dropped silently.
func (s *State[T]) Resolve(gen uint64, value T, err error) bool {
	if gen != s.gen || s.phase != Loading {
		return false
	}
	if err != nil {
		s.phase = Error
		s.err = err
		return true
	}
	s.phase = Success
	s.value = value
	s.err = nil
	return true
}

// Reset returns the cell to Idle and invalidates any in-flight generation,
// the "screen torn down" case.
func (s *State[T]) Reset() {
	var zero T
	s.gen++
	s.phase = Idle
	s.value = zero
	s.err = nil
}

// Outcome is the settled result of one unit inside a fan-out.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the outcome carries a value.
func (o Outcome[T]) Ok() bool { return o.Err == nil }

// Settled wraps a value into a successful outcome.
func Settled[T any](v T) Outcome[T] { return Outcome[T]{Value: v} }

// Failed wraps an error into a failed outcome.
func Failed[T any](err error) Outcome[T] { return Outcome[T]{Err: err} }
