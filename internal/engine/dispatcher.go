// Package engine dispatches calculator requests. It resolves a tool id to a
// handler, coerces the raw form strings against the tool's field schema and
// calls the matching calculation in internal/calc.
package engine

import (
	"context"
	"crypto/rand"
	"io"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/calckit/internal/calc"
	"github.com/rshade/calckit/internal/logging"
	"github.com/rshade/calckit/internal/registry"
	"github.com/rshade/calckit/internal/units"
)

// PlaceholderLabel labels the single row returned for unknown tools.
const PlaceholderLabel = "Result"

// Dispatcher maps tool ids to calculations. It holds no per-request state
// and is safe for concurrent use.
type Dispatcher struct {
	catalog  *registry.Catalog
	handlers map[string]handler
	strict   bool
	rates    units.Rates
	paycheck calc.BracketSet
	federal  calc.BracketSet
	now      func() time.Time
	random   io.Reader
	logger   zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithStrictInputs selects strict validation (the default) or the permissive
// mode in which malformed numbers flow through as NaN.
func WithStrictInputs(strict bool) Option {
	return func(d *Dispatcher) { d.strict = strict }
}

// WithRates replaces the currency table.
func WithRates(rates units.Rates) Option {
	return func(d *Dispatcher) { d.rates = rates }
}

// WithBracketSet selects the federal brackets used by the paycheck tool.
func WithBracketSet(set calc.BracketSet) Option {
	return func(d *Dispatcher) { d.paycheck = set }
}

// WithClock sets the source of "today" for date tools.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithRandom sets the entropy source for the password generator.
func WithRandom(r io.Reader) Option {
	return func(d *Dispatcher) { d.random = r }
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logging.ComponentLogger(l, "engine") }
}

// WithCatalog replaces the embedded tool catalog.
func WithCatalog(c *registry.Catalog) Option {
	return func(d *Dispatcher) { d.catalog = c }
}

// New creates a Dispatcher over the embedded catalog.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: handlers,
		strict:   true,
		rates:    units.DefaultRates(),
		paycheck: calc.PaycheckBrackets2025,
		federal:  calc.StandaloneBrackets2024,
		now:      time.Now,
		random:   rand.Reader,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.catalog == nil {
		d.catalog = registry.Default()
	}
	return d
}

// Catalog returns the catalog the dispatcher resolves descriptors from.
func (d *Dispatcher) Catalog() *registry.Catalog {
	return d.catalog
}

// Strict reports whether malformed inputs are rejected.
func (d *Dispatcher) Strict() bool {
	return d.strict
}

// Tools lists every handled tool id in sorted order.
func (d *Dispatcher) Tools() []string {
	ids := make([]string, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Handles reports whether id has a handler.
func (d *Dispatcher) Handles(id string) bool {
	_, ok := d.handlers[id]
	return ok
}

// Defaults returns the starting form values for toolID. Unknown ids get the
// defaults of the fallback form.
func (d *Dispatcher) Defaults(toolID string) RawInputs {
	in, err := InputsFromMap(d.catalog.Resolve(toolID).Defaults())
	if err != nil {
		// Parse rejects unknown field keys, so catalog defaults always map.
		return RawInputs{}
	}
	return in
}

// FillDefaults returns in with every blank field the tool binds replaced by
// its default. Locale is kept.
func (d *Dispatcher) FillDefaults(toolID string, in RawInputs) RawInputs {
	for key, def := range d.catalog.Resolve(toolID).Defaults() {
		if in.Get(key) == "" {
			_ = in.Set(key, def)
		}
	}
	return in
}

// Placeholder is the result set returned for tools without a handler.
func Placeholder() []calc.ResultRow {
	return []calc.ResultRow{calc.Total(PlaceholderLabel, "Choose a calculator to see results")}
}

// Compute runs toolID over the raw inputs. In strict mode a malformed input
// returns a *ValidationError and no rows. Unknown tool ids return the
// placeholder rows and no error.
func (d *Dispatcher) Compute(ctx context.Context, toolID string, in RawInputs) ([]calc.ResultRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := d.log(ctx)

	h, ok := d.handlers[toolID]
	if !ok {
		log.Warn().Ctx(ctx).Str("tool", toolID).Msg("no handler for tool, returning placeholder")
		return Placeholder(), nil
	}

	a := &args{
		tool:   d.catalog.Resolve(toolID),
		in:     in,
		strict: d.strict,
		now:    d.today(),
	}
	rows := h(d, a)

	if a.err != nil {
		log.Debug().Ctx(ctx).
			Str("tool", toolID).
			Str("field", a.err.Field).
			Str("reason", a.err.Reason).
			Msg("input validation failed")
		return nil, a.err
	}
	if a.problem != "" {
		rows = calc.ErrorRow(a.problem)
	}

	log.Debug().Ctx(ctx).
		Str("tool", toolID).
		Int("rows", len(rows)).
		Bool("error_row", calc.HasError(rows)).
		Msg("computed")
	return rows, nil
}

func (d *Dispatcher) today() time.Time {
	t := d.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (d *Dispatcher) log(ctx context.Context) zerolog.Logger {
	if l := logging.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return logging.ComponentLogger(*l, "engine")
	}
	return d.logger
}
