package nav

// State is the nav width state.
type State int

const (
	Expanded State = iota
	Collapsed
)

// Next returns the opposite state.
func (s State) Next() State {
	if s == Expanded {
		return Collapsed
	}
	return Expanded
}

func (s State) String() string {
	switch s {
	case Expanded:
		return "expanded"
	case Collapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// StateFromOffset recovers the state from a live offset value. An empty
// value or the full width means Expanded, so the next toggle collapses; the
// mini width means Collapsed. ok is false for any other value.
func StateFromOffset(offset string, w Widths) (s State, ok bool) {
	switch {
	case offset == "" || offset == w.Full():
		return Expanded, true
	case offset == w.Mini():
		return Collapsed, true
	default:
		return Expanded, false
	}
}
