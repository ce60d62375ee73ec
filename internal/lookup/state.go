package lookup

// State is the complete controller state. Transitions are value methods so
// every event yields a fresh State.
type State struct {
	District      string
	Mode          Mode
	SearchFocused bool
}

// SearchText is shorthand for s.Mode.SearchText().
func (s State) SearchText() string {
	return s.Mode.SearchText()
}

// Pianqu is shorthand for s.Mode.Pianqu().
func (s State) Pianqu() string {
	return s.Mode.Pianqu()
}

// WithDistrict switches district and drops both search text and sub-district.
func (s State) WithDistrict(district string) State {
	s.District = district
	s.Mode = Idle()
	return s
}

// WithPianqu selects a sub-district, clearing any search text. An empty name
// returns to idle.
func (s State) WithPianqu(pianqu string) State {
	s.Mode = Filtering(pianqu)
	return s
}

// WithSearch applies typed search text. Non-empty text replaces any
// sub-district selection; empty text only clears the search.
func (s State) WithSearch(text string) State {
	if text != "" {
		s.Mode = Searching(text)
		return s
	}
	return s.WithoutSearch()
}

// WithoutSearch clears search text and leaves a sub-district selection alone.
func (s State) WithoutSearch() State {
	if s.Mode.Kind() == ModeSearching {
		s.Mode = Idle()
	}
	return s
}

// WithFocus sets the presentation-only focus flag.
func (s State) WithFocus(focused bool) State {
	s.SearchFocused = focused
	return s
}
