package wizard

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/safedesk/internal/pkg/logger"
)

// ErrSubmissionInProgress is returned when the Stepper is asked to move while a
// previous submission has not finished yet.
var ErrSubmissionInProgress = errors.New("a submission is already in progress")

// ValidationError is returned by Stepper.Submit when the active page rejects
// the submitted values. The wizard does not move.
type ValidationError struct {
	Page   string
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := slices.Sorted(maps.Keys(e.Fields))

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e.Fields[field])
	}

	return fmt.Sprintf("page %q is invalid: %s", e.Page, strings.Join(parts, "; "))
}

type stepperConfig struct {
	initialValues          Values
	buttonLabels           []string
	testID                 string
	navigator              Navigator
	onSubmit               FinalSubmitFunc
	disabledWhenValidating bool
}

// Option customizes a Stepper.
type Option func(*stepperConfig)

// WithInitialValues sets the values the wizard starts with.
func WithInitialValues(values Values) Option {
	return func(c *stepperConfig) {
		c.initialValues = values
	}
}

// WithButtonLabels sets custom forward button labels, one per step.
func WithButtonLabels(labels ...string) Option {
	return func(c *stepperConfig) {
		c.buttonLabels = labels
	}
}

// WithTestID sets an identifier exposed on the state for hosts and tests.
func WithTestID(id string) Option {
	return func(c *stepperConfig) {
		c.testID = id
	}
}

// WithNavigator sets the collaborator used to leave the wizard when going back
// from the first page.
func WithNavigator(nav Navigator) Option {
	return func(c *stepperConfig) {
		c.navigator = nav
	}
}

// WithOnSubmit sets the callback run when the last page is submitted.
func WithOnSubmit(fn FinalSubmitFunc) Option {
	return func(c *stepperConfig) {
		c.onSubmit = fn
	}
}

// WithDisabledWhenValidating also disables the controls while the active page
// is being validated, not only while a submission is in flight.
func WithDisabledWhenValidating() Option {
	return func(c *stepperConfig) {
		c.disabledWhenValidating = true
	}
}

// Stepper is a mutable, concurrency-safe handle over a wizard State. It allows
// a single submission at a time and keeps the controls disabled meanwhile.
type Stepper struct {
	mu    sync.Mutex
	state State
	cfg   stepperConfig

	submitting bool
	validating bool
	done       bool
}

// NewStepper creates a Stepper positioned on the first page.
func NewStepper(pages []Page, opts ...Option) (*Stepper, error) {
	var cfg stepperConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	state, err := Initialize(pages, cfg.initialValues, cfg.buttonLabels, cfg.testID)
	if err != nil {
		return nil, err
	}

	return &Stepper{
		state: state,
		cfg:   cfg,
	}, nil
}

// State returns a snapshot of the current state.
func (s *Stepper) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.Values = merge(s.state.Values)
	return state
}

// Done reports whether the last page has been submitted successfully.
func (s *Stepper) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// disabled must be called with mu held.
func (s *Stepper) disabled() bool {
	if s.cfg.disabledWhenValidating {
		return s.submitting || s.validating
	}
	return s.submitting
}

// Submit validates values against the active page and, when valid, advances
// the wizard or, on the last page, runs the final submit callback.
//
// Values updated through Update while the submission is in flight are
// superseded by its result.
func (s *Stepper) Submit(ctx context.Context, values Values) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmissionInProgress
	}
	s.submitting = true
	state := s.state
	s.mu.Unlock()

	page, _ := ActivePage(state)
	ctx = logger.Derive(ctx, "wizard", state.TestID, "page", page.Label, "page_index", state.PageIndex)

	fieldErrs := s.validate(state, values)
	if len(fieldErrs) > 0 {
		s.finish(nil)
		logger.Debug(ctx, "page validation failed", "fields", len(fieldErrs))
		return &ValidationError{Page: page.Label, Fields: fieldErrs}
	}

	last := state.IsLastPage()
	next, err := Submit(ctx, state, values, s.cfg.onSubmit)
	if err != nil {
		s.finish(nil)
		logger.Debug(ctx, "page submission failed", "error", err)
		return err
	}

	s.finish(&next)
	if last {
		s.mu.Lock()
		s.done = true
		s.mu.Unlock()
		logger.Debug(ctx, "wizard submitted")
		return nil
	}

	logger.Debug(ctx, "wizard advanced", "next_page_index", next.PageIndex)
	return nil
}

// Validate checks values, merged over the accumulated ones, against the active
// page without submitting them.
func (s *Stepper) Validate(values Values) FieldErrors {
	return s.validate(s.State(), values)
}

func (s *Stepper) validate(state State, values Values) FieldErrors {
	s.mu.Lock()
	s.validating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.validating = false
		s.mu.Unlock()
	}()

	return ValidateActive(state, merge(state.Values, values))
}

// finish ends the in-flight submission, committing next when not nil.
func (s *Stepper) finish(next *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if next != nil {
		s.state = *next
	}
	s.submitting = false
}

// Back moves one page back, or leaves the wizard from the first page.
func (s *Stepper) Back(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInProgress
	}

	from := s.state.PageIndex
	s.state = Retreat(s.state, s.cfg.navigator)
	logger.Debug(ctx, "wizard moved back", "wizard", s.state.TestID, "from", from, "to", s.state.PageIndex)
	return nil
}

// JumpTo moves to an already visited page.
func (s *Stepper) JumpTo(ctx context.Context, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInProgress
	}

	next, err := JumpTo(s.state, target)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "wizard jumped", "wizard", s.state.TestID, "from", s.state.PageIndex, "to", target)
	s.state = next
	return nil
}

// Update merges patch into the accumulated values.
func (s *Stepper) Update(patch Values) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Update(s.state, patch)
}

// Controls returns the controls of the active page.
func (s *Stepper) Controls() Controls {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BuildControls(s.state, s.disabled())
}

// Steps returns the step indicator entries.
func (s *Stepper) Steps() []Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Steps(s.state)
}

// Render renders the active page. The page receives Update as its value patch
// callback.
func (s *Stepper) Render() (string, error) {
	s.mu.Lock()
	state := s.state
	disabled := s.disabled()
	s.mu.Unlock()

	return RenderActive(state, disabled, s.Update)
}
