package safe

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/safedesk/internal/pkg/logger"
	"github.com/gabapcia/safedesk/internal/pkg/resilience/retry"
	"github.com/gabapcia/safedesk/internal/pkg/validator"
	"github.com/gabapcia/safedesk/internal/wizard"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/gabapcia/safedesk/internal/safe")

// Service loads Safes into the application.
type Service interface {
	// FetchOwners reads the owners and threshold of the Safe whose address is
	// in values and returns values completed with them. Owners are sorted and
	// get a default name unless one is already present.
	FetchOwners(ctx context.Context, values wizard.Values) (wizard.Values, error)

	// NewLoadWizard builds the interactive wizard used to load a Safe. Extra
	// options are applied after the defaults.
	NewLoadWizard(opts ...wizard.Option) (*wizard.Stepper, error)

	// Load validates the final wizard values and stores the Safe they describe.
	Load(ctx context.Context, values wizard.Values) error

	// List returns the loaded Safes.
	List(ctx context.Context) ([]Info, error)
}

// Option customizes the service.
type Option func(*service)

// WithPrepareTimeout bounds the time FetchOwners may spend reading the chain.
// Zero disables the bound.
func WithPrepareTimeout(d time.Duration) Option {
	return func(s *service) {
		s.prepareTimeout = d
	}
}

type service struct {
	reader         ContractReader
	storage        SafeStorage
	retry          retry.Retry
	prepareTimeout time.Duration
}

var _ Service = (*service)(nil)

// New creates the Safe service. Contract reads are wrapped in r.
func New(reader ContractReader, storage SafeStorage, r retry.Retry, opts ...Option) *service {
	s := &service{
		reader:  reader,
		storage: storage,
		retry:   r,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) FetchOwners(ctx context.Context, values wizard.Values) (wizard.Values, error) {
	address := stringValue(values, FieldAddress)
	if address == "" {
		return nil, ErrMissingAddress
	}

	if s.prepareTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.prepareTimeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "safe.FetchOwners", trace.WithAttributes(attribute.String("safe.address", address)))
	defer span.End()

	ctx = logger.Derive(ctx, "safe", address)

	var owners []string
	err := s.retry.Execute(ctx, func() (err error) {
		owners, err = s.reader.GetOwners(ctx, address)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get owners")
		return nil, fmt.Errorf("get owners: %w", err)
	}

	var threshold uint64
	err = s.retry.Execute(ctx, func() (err error) {
		threshold, err = s.reader.GetThreshold(ctx, address)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get threshold")
		return nil, fmt.Errorf("get threshold: %w", err)
	}

	owners = slices.Clone(owners)
	slices.Sort(owners)

	next := CalculateSafeValues(owners, threshold, values)
	for i := range owners {
		if stringValue(next, OwnerNameField(i)) == "" {
			next[OwnerNameField(i)] = DefaultOwnerName(i)
		}
	}

	// blank the owners left over from a previously fetched Safe
	for i := len(owners); stringValue(values, OwnerAddressField(i)) != ""; i++ {
		next[OwnerAddressField(i)] = ""
		next[OwnerNameField(i)] = ""
	}

	span.SetAttributes(attribute.Int("safe.owners", len(owners)), attribute.Int64("safe.threshold", int64(threshold)))
	logger.Debug(ctx, "safe owners fetched", "owners", len(owners), "threshold", threshold)
	return next, nil
}

func (s *service) Load(ctx context.Context, values wizard.Values) error {
	info := infoFromValues(values)
	if info.Address == "" {
		return ErrMissingAddress
	}

	if err := validator.Validate(info); err != nil {
		return err
	}

	if info.Threshold > uint64(len(info.Owners)) {
		return fmt.Errorf("%w: %d out of %d owners", ErrInvalidThreshold, info.Threshold, len(info.Owners))
	}

	if err := s.storage.SaveSafe(ctx, info); err != nil {
		return err
	}

	logger.Info(ctx, "safe loaded", "safe", info.Address, "name", info.Name, "owners", len(info.Owners), "threshold", info.Threshold)
	return nil
}

func (s *service) List(ctx context.Context) ([]Info, error) {
	return s.storage.ListSafes(ctx)
}
