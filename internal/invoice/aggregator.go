package invoice

import (
	"context"
	"errors"
	"time"
)

// Validation failures reported before the provider is called.
var (
	ErrPeriodInverted = errors.New("end date must be after start date")
	ErrPeriodInFuture = errors.New("billing period must not extend into the future")
)

// IsValidationError reports whether the error is a local input validation
// failure rather than a provider failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrPeriodInverted) || errors.Is(err, ErrPeriodInFuture)
}

// GenerateRequest describes one invoice generation call.
type GenerateRequest struct {
	AccountID   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Frequency   Frequency
}

// generator is the provider operation the aggregator delegates to. Charge
// selection and totals arithmetic happen backend-side; repeated calls for the
// same period produce distinct invoice numbers unless the backend enforces
// uniqueness.
type generator interface {
	GenerateInvoice(ctx context.Context, req GenerateRequest) (*Invoice, error)
}

// submissionState is the in-progress form behind the generate call. On
// success it is marked clean so the navigation guard releases; on any
// failure it is left untouched so the user can retry without re-entering.
type submissionState interface {
	MarkClean()
}

// Aggregator validates and shapes invoice generation requests before handing
// them to the billing backend.
type Aggregator struct {
	generator generator
	now       func() time.Time
}

func NewAggregator(gen generator) *Aggregator {
	return &Aggregator{generator: gen, now: time.Now}
}

// NewAggregatorAt is NewAggregator with an injected clock.
func NewAggregatorAt(gen generator, now func() time.Time) *Aggregator {
	return &Aggregator{generator: gen, now: now}
}

// Generate validates the billing period and frequency, delegates to the
// backend, and reflects the returned invoice. Validation failures never
// reach the provider. form may be nil when no interactive form is involved.
func (a *Aggregator) Generate(ctx context.Context, req GenerateRequest, form submissionState) (*Invoice, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}

	generated, err := a.generator.GenerateInvoice(ctx, req)
	if err != nil {
		return nil, err
	}

	if form != nil {
		form.MarkClean()
	}

	return generated, nil
}

func (a *Aggregator) validate(req GenerateRequest) error {
	if req.PeriodStart.After(req.PeriodEnd) {
		return ErrPeriodInverted
	}

	// A billing period cannot be defined over not-yet-elapsed time; the whole
	// of today counts as elapsed.
	current := a.now()
	endOfToday := time.Date(current.Year(), current.Month(), current.Day(), 23, 59, 59, int(999*time.Millisecond), current.Location())
	if req.PeriodStart.After(endOfToday) || req.PeriodEnd.After(endOfToday) {
		return ErrPeriodInFuture
	}

	if !req.Frequency.Valid() {
		return ErrInvalidFrequency
	}

	return nil
}
