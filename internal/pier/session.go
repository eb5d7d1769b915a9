package pier

// State is the calculation state of a Session
type State int

const (
	StateStale State = iota
	StateConverged
	StateNotConverged
	StateNotComputable
)

func (s State) String() string {
	switch s {
	case StateConverged:
		return "converged"
	case StateNotConverged:
		return "not converged"
	case StateNotComputable:
		return "not computable"
	}
	return "stale"
}

// Session tracks an editable pier case. Every input change marks the
// session stale until Solve is called again, and the last converged depth
// is kept as the reported depth when a later solve fails.
//
// A Session is not safe for concurrent use.
type Session struct {
	input  Input
	opts   []Option
	state  State
	result *Result
	solved Input   // input of result
	depth  float64 // last reported depth (in)
}

// NewSession creates a stale session for the given input. The options are
// applied to every Solve.
func NewSession(in Input, opts ...Option) *Session {
	return &Session{
		input: in,
		opts:  opts,
		state: StateStale,
		depth: DefaultPriorDepth,
	}
}

// Input returns the current input
func (s *Session) Input() Input {
	return s.input
}

// Update replaces the input with the value returned by f and marks the
// session stale.
func (s *Session) Update(f func(Input) Input) {
	s.input = f(s.input)
	s.state = StateStale
}

// Set replaces the input and marks the session stale
func (s *Session) Set(in Input) {
	s.Update(func(Input) Input { return in })
}

// SetConstrained toggles the constrained condition. Enabling it clears the
// 12 ft limitation.
func (s *Session) SetConstrained(v bool) {
	s.Update(func(in Input) Input { return in.WithConstrained(v) })
}

// SetDepthLimitation toggles the 12 ft limitation. Enabling it clears the
// constrained condition.
func (s *Session) SetDepthLimitation(v bool) {
	s.Update(func(in Input) Input { return in.WithDepthLimitation(v) })
}

// State returns the calculation state
func (s *Session) State() State {
	return s.state
}

// NeedsRecalculation reports whether the input changed since the last solve
func (s *Session) NeedsRecalculation() bool {
	return s.state == StateStale
}

// Depth returns the last reported embedment depth (in)
func (s *Session) Depth() float64 {
	return s.depth
}

// Result returns the result of the last solve, or nil
func (s *Session) Result() *Result {
	return s.result
}

// Solve recalculates the embedment depth for the current input. The last
// converged depth seeds the search only while the input is unchanged since
// that solve.
func (s *Session) Solve() (*Result, error) {
	opts := make([]Option, 0, len(s.opts)+2)
	opts = append(opts, s.opts...)
	opts = append(opts, WithPriorDepth(s.depth))
	if s.result != nil && s.result.Converged && s.solved == s.input {
		opts = append(opts, WithSeed(s.depth))
	}

	result, err := Solve(s.input, opts...)
	if result == nil {
		// invalid input leaves the session stale
		return nil, err
	}

	s.result = result
	s.solved = s.input
	s.depth = result.Depth
	switch result.Status {
	case StatusConverged:
		s.state = StateConverged
	case StatusNotComputable:
		s.state = StateNotComputable
	default:
		s.state = StateNotConverged
	}
	return result, err
}
