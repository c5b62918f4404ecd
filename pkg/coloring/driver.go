package coloring

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcolor/pkg/dataset"
	"github.com/matzehuels/graphcolor/pkg/graph"
	"github.com/matzehuels/graphcolor/pkg/observability"
)

// State is the state of a single budget attempt.
type State int

const (
	// Running means another round will be attempted.
	Running State = iota
	// Converged means every node holds a color.
	Converged
	// Stalled means a round finished without coloring any new node.
	Stalled
	// RoundLimit means the attempt ran out of rounds while still progressing.
	RoundLimit
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Stalled:
		return "stalled"
	case RoundLimit:
		return "round-limit"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name produced by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	for _, c := range []State{Running, Converged, Stalled, RoundLimit} {
		if c.String() == string(b) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", b)
}

// Terminal reports whether no further rounds follow s.
func (s State) Terminal() bool { return s != Running }

// next is the driver's transition function. before and after are the
// uncolored counts around the most recent round and rounds is the number of
// rounds run so far.
func next(before, after, rounds, maxRounds int) State {
	switch {
	case after == 0:
		return Converged
	case after == before:
		return Stalled
	case rounds >= maxRounds:
		return RoundLimit
	default:
		return Running
	}
}

// Options configures the coloring driver, the budget search and the
// validator.
type Options struct {
	// Partitions is the number of dataset partitions (0 = dataset.DefaultPartitions).
	Partitions int
	// Workers bounds the goroutines per dataset primitive (0 = GOMAXPROCS).
	Workers int
	// MaxRounds caps the rounds of a single budget attempt (0 = |nodes|+1).
	MaxRounds int
	// Logger receives per-attempt and per-round progress. Nil discards output.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Outcome is the result of one budget attempt.
type Outcome struct {
	Budget    int           `json:"budget"`
	State     State         `json:"state"`
	Rounds    int           `json:"rounds"`
	Uncolored int           `json:"uncolored"`
	Duration  time.Duration `json:"duration"`
	Colors    map[int]int   `json:"-"`
}

// Converged reports whether the attempt colored every node.
func (o Outcome) Converged() bool { return o.State == Converged }

// Driver runs rounds for a single color budget until a terminal state.
//
// The zero value is not usable - use NewDriver.
type Driver struct {
	ds        *dataset.Dataset[graph.Node]
	budget    int
	maxRounds int
	rounds    int
	uncolored int
	state     State
	logger    *log.Logger
}

// NewDriver resets every node of ds to graph.Uncolored and prepares an
// attempt with the given budget. ds is not modified.
func NewDriver(ctx context.Context, ds *dataset.Dataset[graph.Node], budget int, opts Options) (*Driver, error) {
	reset, err := dataset.Map(ctx, ds, func(n graph.Node) graph.Node {
		n.Color = graph.Uncolored
		return n
	})
	if err != nil {
		return nil, err
	}
	uncolored, err := countUncolored(ctx, reset)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		ds:        reset,
		budget:    budget,
		maxRounds: opts.MaxRounds,
		uncolored: uncolored,
		state:     Running,
		logger:    opts.logger(),
	}
	if d.maxRounds <= 0 {
		d.maxRounds = reset.Len() + 1
	}
	if uncolored == 0 {
		d.state = Converged
	}
	return d, nil
}

// Step runs one round and advances the state machine. Calling Step in a
// terminal state is a no-op.
func (d *Driver) Step(ctx context.Context) (State, error) {
	if d.state.Terminal() {
		return d.state, nil
	}
	ds, err := Round(ctx, d.ds, d.budget)
	if err != nil {
		return d.state, err
	}
	after, err := countUncolored(ctx, ds)
	if err != nil {
		return d.state, err
	}

	d.rounds++
	d.state = next(d.uncolored, after, d.rounds, d.maxRounds)
	d.ds, d.uncolored = ds, after

	d.logger.Debug("round", "budget", d.budget, "round", d.rounds, "uncolored", after, "state", d.state)
	observability.Coloring().OnRound(ctx, d.budget, d.rounds, after)
	return d.state, nil
}

// Run steps until a terminal state is reached.
func (d *Driver) Run(ctx context.Context) (State, error) {
	for !d.state.Terminal() {
		if _, err := d.Step(ctx); err != nil {
			return d.state, err
		}
	}
	return d.state, nil
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Rounds returns the number of rounds run so far.
func (d *Driver) Rounds() int { return d.rounds }

// Uncolored returns the uncolored count after the latest round.
func (d *Driver) Uncolored() int { return d.uncolored }

// Dataset returns the node collection after the latest round.
func (d *Driver) Dataset() *dataset.Dataset[graph.Node] { return d.ds }

// Color runs a complete attempt with the given budget. A non-converged
// attempt is not an error; errors only come from context cancellation.
func Color(ctx context.Context, ds *dataset.Dataset[graph.Node], budget int, opts Options) (Outcome, error) {
	start := time.Now()
	observability.Coloring().OnAttemptStart(ctx, budget)

	d, err := NewDriver(ctx, ds, budget, opts)
	if err != nil {
		return Outcome{Budget: budget}, err
	}
	if _, err := d.Run(ctx); err != nil {
		return Outcome{Budget: budget, State: d.state, Rounds: d.rounds, Uncolored: d.uncolored}, err
	}
	colors, err := TakeSnapshot(ctx, d.ds)
	if err != nil {
		return Outcome{Budget: budget}, err
	}

	out := Outcome{
		Budget:    budget,
		State:     d.state,
		Rounds:    d.rounds,
		Uncolored: d.uncolored,
		Duration:  time.Since(start),
		Colors:    colors.colors,
	}
	observability.Coloring().OnAttemptComplete(ctx, budget, out.State.String(), out.Rounds, out.Duration)
	return out, nil
}

func countUncolored(ctx context.Context, ds *dataset.Dataset[graph.Node]) (int, error) {
	return ds.Count(ctx, func(n graph.Node) bool { return !n.IsColored() })
}
