package autocomplete

// State is the widget's visual state. Exactly one holds at a time.
type State int

const (
	// StateClosed - passive display shown, no text field.
	StateClosed State = iota
	// StateOpen - text field shown and focused, no search requested yet.
	StateOpen
	// StateSearching - a search request was emitted for the current text.
	StateSearching
	// StateSelected - an option was committed; passive display shows its label.
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSearching:
		return "searching"
	case StateSelected:
		return "selected"
	}
	return "unknown"
}

// Custom pseudo-states exposed for styling.
const (
	PseudoOpen      = "open"
	PseudoSearching = "searching"
	PseudoSelected  = "selected"
)

// editing reports whether the text field is rendered in this state.
func (s State) editing() bool {
	return s == StateOpen || s == StateSearching
}

// pseudoStates maps a visual state to its custom state set. "open" also
// holds while searching.
func (s State) pseudoStates() []string {
	switch s {
	case StateOpen:
		return []string{PseudoOpen}
	case StateSearching:
		return []string{PseudoOpen, PseudoSearching}
	case StateSelected:
		return []string{PseudoSelected}
	}
	return nil
}
