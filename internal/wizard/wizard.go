// Package wizard implements a paginated form wizard: an ordered list of pages,
// the active page index, form values accumulated across pages, per-page
// validation and an optional asynchronous hook that prepares the initial values
// of the next page before the wizard advances.
//
// State is an explicit value threaded through pure transition functions
// (Advance, Retreat, JumpTo, Submit, Update). None of them mutate their input,
// so a failed transition always leaves the caller holding the previous state.
// Stepper wraps these functions for interactive callers that need a single
// mutable handle.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/gabapcia/safedesk/internal/pkg/types"
	"github.com/gabapcia/safedesk/internal/pkg/x/chflow"
)

var (
	// ErrNoPages is returned by Initialize when the page list is empty.
	ErrNoPages = errors.New("wizard has no pages")

	// ErrDuplicateLabel is returned by Initialize when two pages share a label.
	ErrDuplicateLabel = errors.New("duplicate page label")

	// ErrIndexOutOfRange signals a page index outside [0, len(pages)).
	ErrIndexOutOfRange = errors.New("page index out of range")

	// ErrInvalidTransition signals a navigation to a page that is not reachable
	// from the current one (only already visited pages can be jumped to).
	ErrInvalidTransition = errors.New("invalid page transition")

	// ErrPreparationFailed wraps any error raised while preparing the initial
	// values of the next page.
	ErrPreparationFailed = errors.New("next page preparation failed")
)

// Values holds form values keyed by field name.
type Values map[string]any

// FieldErrors maps a field name to the message shown next to it. An empty
// map means the values are valid.
type FieldErrors map[string]string

// UpdateFunc merges a patch into the accumulated wizard values.
type UpdateFunc func(patch Values)

// FinalSubmitFunc performs the wizard's real-world effect with the final values.
type FinalSubmitFunc func(ctx context.Context, values Values) error

// Page describes one page of the wizard.
type Page struct {
	// Label identifies the page. It must be unique within a wizard.
	Label string

	// Validate checks the candidate values of this page. Nil means the page
	// never reports errors.
	Validate func(values Values) FieldErrors

	// PrepareNextInitialProps computes a patch merged into the values when the
	// wizard advances away from this page. It is optional.
	PrepareNextInitialProps func(ctx context.Context, values Values) (Values, error)

	// Render produces the page content.
	Render func(controls Controls, values Values, update UpdateFunc) string
}

// State is a snapshot of a wizard.
type State struct {
	PageIndex    int
	Values       Values
	Pages        []Page
	ButtonLabels []string
	TestID       string
}

// Navigator is the host collaborator asked to leave the wizard when the user
// goes back from the first page.
type Navigator interface {
	GoBack()
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func()

// GoBack calls f.
func (f NavigatorFunc) GoBack() {
	f()
}

// merge returns a new Values holding base overwritten by each patch in order.
func merge(base Values, patches ...Values) Values {
	out := make(Values, len(base))
	maps.Copy(out, base)
	for _, patch := range patches {
		maps.Copy(out, patch)
	}
	return out
}

// Initialize creates the state of a freshly mounted wizard, positioned on the
// first page with a copy of initialValues (or no values at all).
func Initialize(pages []Page, initialValues Values, buttonLabels []string, testID string) (State, error) {
	if len(pages) == 0 {
		return State{}, ErrNoPages
	}

	labels := types.NewSet[string]()
	for _, page := range pages {
		if labels.Has(page.Label) {
			return State{}, fmt.Errorf("%w: %q", ErrDuplicateLabel, page.Label)
		}
		labels.Add(page.Label)
	}

	return State{
		PageIndex:    0,
		Values:       merge(initialValues),
		Pages:        pages,
		ButtonLabels: buttonLabels,
		TestID:       testID,
	}, nil
}

// PageCount returns the number of pages.
func (s State) PageCount() int {
	return len(s.Pages)
}

// IsLastPage reports whether the active page is the last one.
func (s State) IsLastPage() bool {
	return s.PageIndex == len(s.Pages)-1
}

// ActivePage returns the page at the current index.
func ActivePage(state State) (Page, error) {
	if state.PageIndex < 0 || state.PageIndex >= len(state.Pages) {
		return Page{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, state.PageIndex, len(state.Pages))
	}

	return state.Pages[state.PageIndex], nil
}

// ValidateActive runs the active page validation against candidate. It never
// fails: a page without Validate, or an unreachable index, yields no errors.
func ValidateActive(state State, candidate Values) FieldErrors {
	page, err := ActivePage(state)
	if err != nil || page.Validate == nil {
		return FieldErrors{}
	}

	errs := page.Validate(candidate)
	if errs == nil {
		return FieldErrors{}
	}

	return errs
}

// Advance merges submitted into the accumulated values, runs the active
// page's PrepareNextInitialProps hook (if any) on the result, merges its patch
// and moves to the next page. The index never goes past the last page.
//
// Advance is atomic: when the hook fails, or ctx ends before it returns, the
// input state is returned together with an error wrapping ErrPreparationFailed.
// The hook itself is not interrupted; its late result is discarded.
//
// Callers must not run two Advance calls over the same state concurrently.
func Advance(ctx context.Context, state State, submitted Values) (State, error) {
	page, err := ActivePage(state)
	if err != nil {
		return state, err
	}

	values := merge(state.Values, submitted)

	if page.PrepareNextInitialProps != nil {
		input := merge(values)
		patch, err := chflow.Await(ctx, func() (Values, error) {
			return page.PrepareNextInitialProps(ctx, input)
		})
		if err != nil {
			return state, fmt.Errorf("%w: page %q: %w", ErrPreparationFailed, page.Label, err)
		}

		values = merge(values, patch)
	}

	next := state
	next.Values = values
	next.PageIndex = min(state.PageIndex+1, len(state.Pages)-1)
	return next, nil
}

// Retreat moves one page back. On the first page the wizard is left instead:
// nav.GoBack is called (when nav is not nil) and the state is returned as is.
func Retreat(state State, nav Navigator) State {
	if state.PageIndex == 0 {
		if nav != nil {
			nav.GoBack()
		}
		return state
	}

	next := state
	next.PageIndex = max(state.PageIndex-1, 0)
	return next
}

// JumpTo moves to an already visited page, i.e. any target below the current
// index. Any other target returns the state unchanged and ErrInvalidTransition.
func JumpTo(state State, target int) (State, error) {
	if target < 0 || target >= state.PageIndex {
		return state, fmt.Errorf("%w: from %d to %d", ErrInvalidTransition, state.PageIndex, target)
	}

	next := state
	next.PageIndex = target
	return next, nil
}

// Submit handles a form submission. On the last page, onFinal receives the
// accumulated values merged with submitted and its error is returned; the page
// index does not change and the merged values are only kept on success. On any
// other page Submit behaves exactly as Advance.
func Submit(ctx context.Context, state State, submitted Values, onFinal FinalSubmitFunc) (State, error) {
	if !state.IsLastPage() {
		return Advance(ctx, state, submitted)
	}

	values := merge(state.Values, submitted)
	if onFinal != nil {
		if err := onFinal(ctx, values); err != nil {
			return state, err
		}
	}

	next := state
	next.Values = values
	return next, nil
}

// Update merges patch into the accumulated values without changing page. It
// is the callback handed to pages that compute their own initial values.
func Update(state State, patch Values) State {
	next := state
	next.Values = merge(state.Values, patch)
	return next
}
