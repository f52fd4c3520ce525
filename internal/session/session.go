// Package session holds the state of one calculator form: the selected
// tool, its raw inputs and the most recent results. A submit computes the
// rows immediately but commits them only after a short display delay, and
// any edit, tool change or Close in the meantime discards the pending
// commit.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/engine"
	"github.com/rshade/calckit/internal/logging"
)

// DefaultDelay is how long a submit stays in Calculating.
const DefaultDelay = 600 * time.Millisecond

// ErrClosed is returned by mutations after Close.
const ErrClosed = constError("session closed")

type constError string

func (e constError) Error() string { return string(e) }

// State is the lifecycle phase of a calculator.
type State int

// Calculator states.
const (
	Idle State = iota
	Calculating
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Calculating:
		return "calculating"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Computer is the part of the dispatcher a session needs.
type Computer interface {
	Compute(ctx context.Context, toolID string, in engine.RawInputs) ([]calc.ResultRow, error)
	Defaults(toolID string) engine.RawInputs
}

// Snapshot is a copy of a calculator's state.
type Snapshot struct {
	ID      string
	ToolID  string
	State   State
	Inputs  engine.RawInputs
	Edited  bool
	Results []calc.ResultRow
	Err     error
}

// Calculator is one form's state machine. It is safe for concurrent use.
type Calculator struct {
	id       string
	computer Computer
	delay    time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	toolID  string
	inputs  engine.RawInputs
	edited  bool
	state   State
	results []calc.ResultRow
	err     error
	closed  bool

	// generation increments whenever a pending commit becomes stale.
	generation uint64
	cancel     context.CancelFunc
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithDelay sets the Calculating delay. Zero commits on the next tick.
func WithDelay(d time.Duration) Option {
	return func(c *Calculator) { c.delay = max(0, d) }
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) { c.logger = l }
}

// New creates a calculator for toolID with the tool's default inputs.
func New(computer Computer, toolID string, opts ...Option) *Calculator {
	c := &Calculator{
		id:       logging.NewTraceID(),
		computer: computer,
		delay:    DefaultDelay,
		logger:   zerolog.Nop(),
		toolID:   toolID,
		inputs:   computer.Defaults(toolID),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.ComponentLogger(c.logger, "session").With().Str("session_id", c.id).Logger()
	return c
}

// ID returns the session's ULID.
func (c *Calculator) ID() string { return c.id }

// Snapshot returns the current state.
func (c *Calculator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Calculator) snapshotLocked() Snapshot {
	return Snapshot{
		ID:      c.id,
		ToolID:  c.toolID,
		State:   c.state,
		Inputs:  c.inputs,
		Edited:  c.edited,
		Results: append([]calc.ResultRow(nil), c.results...),
		Err:     c.err,
	}
}

// SetField edits one raw input. Any pending commit is discarded and the
// calculator returns to Idle.
func (c *Calculator) SetField(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.inputs.Set(key, value); err != nil {
		return err
	}
	c.edited = true
	c.resetLocked()
	return nil
}

// SetLocale changes the locale used for date output.
func (c *Calculator) SetLocale(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputs.Locale = locale
}

// SetTool switches to toolID and restores its defaults.
func (c *Calculator) SetTool(toolID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	locale := c.inputs.Locale
	c.toolID = toolID
	c.inputs = c.computer.Defaults(toolID)
	c.inputs.Locale = locale
	c.edited = false
	c.resetLocked()
	c.logger.Debug().Str("tool", toolID).Msg("tool changed")
	return nil
}

// resetLocked drops results and invalidates any pending commit.
func (c *Calculator) resetLocked() {
	c.invalidateLocked()
	c.state = Idle
	c.results = nil
	c.err = nil
}

func (c *Calculator) invalidateLocked() {
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Submit computes the current inputs and enters Calculating. The returned
// channel receives the Ready snapshot once the delay elapses and is then
// closed. It is closed without a value when the commit is superseded, ctx is
// cancelled or the calculator is closed.
func (c *Calculator) Submit(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(out)
		return out
	}
	c.invalidateLocked()
	gen := c.generation
	toolID, inputs := c.toolID, c.inputs
	pending, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = Calculating
	c.mu.Unlock()

	rows, err := c.computer.Compute(pending, toolID, inputs)

	go func() {
		defer close(out)
		defer cancel()

		timer := time.NewTimer(c.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-pending.Done():
			c.abandon(gen)
			return
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generation != gen || c.closed {
			return
		}
		c.state = Ready
		c.results = rows
		c.err = err
		c.cancel = nil
		c.logger.Debug().Str("tool", toolID).Int("rows", len(rows)).Err(err).Msg("results committed")
		out <- c.snapshotLocked()
	}()
	return out
}

// abandon returns to Idle when the caller's context ended a commit that is
// still current.
func (c *Calculator) abandon(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation == gen && c.state == Calculating {
		c.state = Idle
		c.cancel = nil
	}
}

// Close discards pending work. Later mutations return ErrClosed.
func (c *Calculator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.invalidateLocked()
	c.closed = true
	if c.state == Calculating {
		c.state = Idle
	}
}
