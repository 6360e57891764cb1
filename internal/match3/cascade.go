package match3

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxPasses bounds a single cascade.
const DefaultMaxPasses = 80

// State is the lifecycle state of a Resolver.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateAborted
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// PassEvent describes one cascade pass.
type PassEvent struct {
	Pass    int     // 1-based
	Chain   int     // multiplier applied to this pass
	Matches []Coord // matched cells, row-major
	Runs    []Run

	// Filled after the clear; zero when seen from Resolver.OnPass.
	BasePoints int
	Gained     int
}

// Result summarises a finished cascade.
type Result struct {
	TotalScore    int
	PassesRun     int
	MaxChain      int
	HaltedByLimit bool
	// Rejected is set when another cascade was already running on the
	// resolver; nothing was done.
	Rejected bool
}

// Resolver repeatedly clears matches, collapses and refills a board until
// no run remains, multiplying each pass's points by a growing chain
// counter. A Resolver runs at most one cascade at a time.
type Resolver struct {
	Scoring   ScoringConfig
	MaxPasses int
	Rng       Source
	Logger    *log.Logger
	// OnPass is called once per pass with the matched cells, before they
	// are cleared.
	OnPass func(PassEvent)

	state State
}

// NewResolver returns a resolver with the default scoring and pass limit.
func NewResolver(rng Source) *Resolver {
	return &Resolver{
		Scoring:   DefaultScoring(),
		MaxPasses: DefaultMaxPasses,
		Rng:       rng,
	}
}

var discard = log.New(io.Discard)

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		return discard
	}
	return r.Logger
}

func (r *Resolver) maxPasses() int {
	if r.MaxPasses <= 0 {
		return DefaultMaxPasses
	}
	return r.MaxPasses
}

// State returns the resolver state.
func (r *Resolver) State() State {
	return r.state
}

// Busy reports whether a cascade is in progress.
func (r *Resolver) Busy() bool {
	return r.state == StateResolving
}

// Begin starts a stepwise cascade on b. It returns false and does nothing
// if a cascade from this resolver has not finished yet.
func (r *Resolver) Begin(b *Board) (*Cascade, bool) {
	if r.state == StateResolving {
		r.logger().Warn("cascade already in progress, ignoring")
		return nil, false
	}
	r.state = StateResolving
	return &Cascade{r: r, b: b, chain: 1}, true
}

// Resolve runs a whole cascade on b and returns its result.
func (r *Resolver) Resolve(b *Board) Result {
	c, ok := r.Begin(b)
	if !ok {
		return Result{Rejected: true}
	}
	for {
		if _, more := c.Next(); !more {
			return c.Result()
		}
	}
}

// Cascade is one in-flight resolution. Calling Next until it returns false
// produces the same board states as Resolver.Resolve, which lets a caller
// pause between passes.
type Cascade struct {
	r      *Resolver
	b      *Board
	pass   int
	chain  int
	result Result
	done   bool
}

// Done reports whether the cascade has finished.
func (c *Cascade) Done() bool {
	return c.done
}

// Pending returns the cells the next pass would clear, or nil when the
// cascade is done or the board is stable. The board is not modified.
func (c *Cascade) Pending() []Coord {
	if c.done {
		return nil
	}
	return FindMatches(c.b)
}

// Next runs one pass: find matches, clear and score them with the current
// chain multiplier, collapse and refill. It returns false once the board
// is stable or the pass limit stopped the cascade.
func (c *Cascade) Next() (PassEvent, bool) {
	if c.done {
		return PassEvent{}, false
	}
	r := c.r
	logger := r.logger()

	if c.pass >= r.maxPasses() {
		if HasMatch(c.b) {
			logger.Warn("cascade hit pass limit, stopping", "max_passes", r.maxPasses(), "score", c.result.TotalScore)
			c.result.HaltedByLimit = true
			c.finish(StateAborted)
		} else {
			c.finish(StateIdle)
		}
		return PassEvent{}, false
	}

	matches := FindMatches(c.b)
	if len(matches) == 0 {
		c.finish(StateIdle)
		return PassEvent{}, false
	}

	ev := PassEvent{
		Pass:    c.pass + 1,
		Chain:   c.chain,
		Matches: matches,
		Runs:    FindRuns(c.b),
	}
	if r.OnPass != nil {
		r.OnPass(ev)
	}

	scoring := r.Scoring
	ev.BasePoints = ClearAndScore(c.b, Cells(matches), &ClearOptions{Scoring: &scoring})
	ev.Gained = ev.BasePoints * c.chain
	c.result.TotalScore += ev.Gained

	Collapse(c.b)
	Refill(c.b, r.Rng)

	logger.Debug("cascade pass",
		"pass", ev.Pass,
		"chain", ev.Chain,
		"matches", len(matches),
		"base", ev.BasePoints,
		"gained", ev.Gained,
	)

	c.pass++
	c.result.PassesRun = c.pass
	c.result.MaxChain = c.chain
	c.chain++
	return ev, true
}

// Result returns the totals so far; final once Done is true.
func (c *Cascade) Result() Result {
	return c.result
}

func (c *Cascade) finish(s State) {
	c.done = true
	c.r.state = s
}
