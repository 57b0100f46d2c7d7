package trackclient

import (
	"context"
	"errors"
	"sync"
)

// State is the submission lifecycle: Idle → Submitting → {Success, Error}.
// Editing the identifier or resubmitting leaves a terminal state again.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrSubmissionInFlight is returned when Submit is called while a lookup
// is outstanding; resubmission is disabled until it settles.
var ErrSubmissionInFlight = errors.New("a lookup is already in progress")

// Tracker drives the form state machine around a Client. One submission at
// a time; no automatic retry — the caller must resubmit.
type Tracker struct {
	client *Client

	mu      sync.Mutex
	state   State
	id      string
	record  *Record
	lastErr error
}

// NewTracker creates an idle Tracker.
func NewTracker(client *Client) *Tracker {
	return &Tracker{client: client, state: StateIdle}
}

// SetID records a new candidate identifier. Any prior outcome is cleared
// and the tracker returns to idle. Ignored while a submission is in flight.
func (t *Tracker) SetID(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateSubmitting {
		return
	}
	t.id = id
	t.state = StateIdle
	t.record = nil
	t.lastErr = nil
}

// Submit performs one lookup for the current identifier and settles into
// Success or Error. Validation failures block the request entirely and
// settle into Error without any network call.
func (t *Tracker) Submit(ctx context.Context) (*Record, error) {
	t.mu.Lock()
	if t.state == StateSubmitting {
		t.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	id := t.id
	t.state = StateSubmitting
	t.record = nil
	t.lastErr = nil
	t.mu.Unlock()

	record, err := t.client.Track(ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.state = StateError
		t.lastErr = err
		return nil, err
	}
	t.state = StateSuccess
	t.record = record
	return record, nil
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Record returns the last successful record, or nil.
func (t *Tracker) Record() *Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record
}

// Err returns the last failure, or nil.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}
