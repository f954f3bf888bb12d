package wizard

// Controls describes the navigation buttons rendered with the active page.
type Controls struct {
	ButtonLabels []string
	CurrentStep  int
	Disabled     bool
	FirstPage    bool
	LastPage     bool
	Penultimate  bool
}

// SubmitLabel returns the label of the forward button. A custom label for the
// current step takes precedence over the defaults.
func (c Controls) SubmitLabel() string {
	if c.CurrentStep < len(c.ButtonLabels) && c.ButtonLabels[c.CurrentStep] != "" {
		return c.ButtonLabels[c.CurrentStep]
	}

	if c.LastPage {
		return "Finish"
	}
	return "Next"
}

// BackLabel returns the label of the backward button.
func (c Controls) BackLabel() string {
	if c.FirstPage {
		return "Cancel"
	}
	return "Back"
}

// Step is one entry of the step indicator.
type Step struct {
	Label     string
	Active    bool
	Clickable bool
}

// BuildControls derives the controls of the active page. disabled is set by
// the caller while a submission is in flight.
func BuildControls(state State, disabled bool) Controls {
	last := len(state.Pages) - 1
	return Controls{
		ButtonLabels: state.ButtonLabels,
		CurrentStep:  state.PageIndex,
		Disabled:     disabled,
		FirstPage:    state.PageIndex == 0,
		LastPage:     state.PageIndex == last,
		Penultimate:  state.PageIndex+1 == last,
	}
}

// Steps returns the step indicator entries, one per page. Only pages before
// the active one are clickable.
func Steps(state State) []Step {
	steps := make([]Step, len(state.Pages))
	for i, page := range state.Pages {
		steps[i] = Step{
			Label:     page.Label,
			Active:    i == state.PageIndex,
			Clickable: i < state.PageIndex,
		}
	}
	return steps
}

// RenderActive renders the active page with its controls, the accumulated
// values and update as the value patch callback. A page without Render
// produces an empty string.
func RenderActive(state State, disabled bool, update UpdateFunc) (string, error) {
	page, err := ActivePage(state)
	if err != nil {
		return "", err
	}

	if page.Render == nil {
		return "", nil
	}

	return page.Render(BuildControls(state, disabled), merge(state.Values), update), nil
}
