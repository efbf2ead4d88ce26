package billing

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/validate"
)

// referencePattern matches ride and payment reference identifiers.
var referencePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

var maxFare = decimal.RequireFromString("999999.99")

const dateLayout = "2006-01-02"

// ChargeRequest is a validated charge submission handed to the billing
// provider.
type ChargeRequest struct {
	RideID      string
	AccountID   string
	FareAmount  decimal.Decimal
	ServiceDate time.Time
	Description string
}

// ChargeResponse is the provider's acknowledgement of a recorded charge.
type ChargeResponse struct {
	TransactionID string
	AccountID     string
	RideID        string
	FareAmount    decimal.Decimal
	RecordedAt    time.Time
}

// PaymentRequest is a validated payment submission handed to the billing
// provider.
type PaymentRequest struct {
	AccountID          string
	PaymentReferenceID string
	Amount             decimal.Decimal
	PaymentDate        time.Time
	PaymentMode        PaymentMode
	Notes              string
}

// PaymentResponse is the provider's acknowledgement of a recorded payment.
type PaymentResponse struct {
	TransactionID      string
	AccountID          string
	PaymentReferenceID string
	Amount             decimal.Decimal
	RecordedAt         time.Time
}

// ChargeFields are the raw field values of a charge submission, as entered.
type ChargeFields struct {
	AccountID   string
	RideID      string
	FareAmount  string
	ServiceDate string
	Description string
}

// ChargeForm tracks a charge submission's field values and dirty state.
// Populating the form marks it dirty; only a successful submit marks it
// clean again, so a failed provider call leaves the entered data in place.
type ChargeForm struct {
	ChargeFields
	dirty bool
	now   func() time.Time
}

func NewChargeForm() *ChargeForm {
	return &ChargeForm{now: time.Now}
}

func (f *ChargeForm) Populate(fields ChargeFields) {
	f.ChargeFields = fields
	f.dirty = true
}

func (f *ChargeForm) MarkClean()              { f.dirty = false }
func (f *ChargeForm) HasUnsavedChanges() bool { return f.dirty }

// Validate runs every field's rules and returns all first-per-field
// failures. An empty result means the form is submittable.
func (f *ChargeForm) Validate() []*validate.FieldError {
	var fieldErrs []*validate.FieldError
	collect := func(fieldErr *validate.FieldError) {
		if fieldErr != nil {
			fieldErrs = append(fieldErrs, fieldErr)
		}
	}

	collect(validate.First(f.AccountID, validate.Required("accountId")))
	collect(validate.First(f.RideID,
		validate.Required("rideId"),
		validate.Pattern("rideId", referencePattern, "use only uppercase letters, numbers, and hyphens"),
	))
	collect(validate.First(f.FareAmount,
		validate.Required("fareAmount"),
		validate.PositiveAmount("fareAmount"),
		validate.MaxDecimals("fareAmount", 2),
		validate.MaxAmount("fareAmount", maxFare),
	))
	collect(validate.First(f.ServiceDate,
		validate.Required("serviceDate"),
		validate.NotFutureDate("serviceDate", f.now),
	))
	collect(validate.First(f.Description,
		validate.Required("description"),
		validate.LengthBetween("description", 5, 200),
	))

	return fieldErrs
}

// Request validates the form and shapes it into a provider request.
func (f *ChargeForm) Request() (*ChargeRequest, []*validate.FieldError) {
	if fieldErrs := f.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	fare := decimal.RequireFromString(f.FareAmount)
	serviceDate, _ := time.Parse(dateLayout, f.ServiceDate)

	return &ChargeRequest{
		RideID:      f.RideID,
		AccountID:   f.AccountID,
		FareAmount:  fare,
		ServiceDate: serviceDate,
		Description: f.Description,
	}, nil
}

// PaymentFields are the raw field values of a payment submission.
type PaymentFields struct {
	AccountID          string
	PaymentReferenceID string
	Amount             string
	PaymentDate        string
	PaymentMode        string
	Notes              string
}

// PaymentForm tracks a payment submission's field values and dirty state.
type PaymentForm struct {
	PaymentFields
	dirty bool
	now   func() time.Time
}

func NewPaymentForm() *PaymentForm {
	return &PaymentForm{now: time.Now}
}

func (f *PaymentForm) Populate(fields PaymentFields) {
	f.PaymentFields = fields
	f.dirty = true
}

func (f *PaymentForm) MarkClean()              { f.dirty = false }
func (f *PaymentForm) HasUnsavedChanges() bool { return f.dirty }

func (f *PaymentForm) Validate() []*validate.FieldError {
	var fieldErrs []*validate.FieldError
	collect := func(fieldErr *validate.FieldError) {
		if fieldErr != nil {
			fieldErrs = append(fieldErrs, fieldErr)
		}
	}

	collect(validate.First(f.AccountID, validate.Required("accountId")))
	collect(validate.First(f.PaymentReferenceID,
		validate.Required("paymentReferenceId"),
		validate.Pattern("paymentReferenceId", referencePattern, "use only uppercase letters, numbers, and hyphens"),
	))
	collect(validate.First(f.Amount,
		validate.Required("amount"),
		validate.PositiveAmount("amount"),
		validate.MaxDecimals("amount", 2),
		validate.MaxAmount("amount", maxFare),
	))
	collect(validate.First(f.PaymentDate,
		validate.Required("paymentDate"),
		validate.NotFutureDate("paymentDate", f.now),
	))
	collect(validate.First(f.PaymentMode, validate.Required("paymentMode"), paymentModeRule("paymentMode")))
	collect(validate.First(f.Notes, validate.LengthBetween("notes", 0, 500)))

	return fieldErrs
}

func (f *PaymentForm) Request() (*PaymentRequest, []*validate.FieldError) {
	if fieldErrs := f.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	amount := decimal.RequireFromString(f.Amount)
	paymentDate, _ := time.Parse(dateLayout, f.PaymentDate)
	mode, _ := ParsePaymentMode(f.PaymentMode)

	return &PaymentRequest{
		AccountID:          f.AccountID,
		PaymentReferenceID: f.PaymentReferenceID,
		Amount:             amount,
		PaymentDate:        paymentDate,
		PaymentMode:        mode,
		Notes:              f.Notes,
	}, nil
}

func paymentModeRule(field string) validate.Rule {
	return func(value string) *validate.FieldError {
		if value == "" {
			return nil
		}
		if _, err := ParsePaymentMode(value); err != nil {
			return &validate.FieldError{Field: field, Kind: validate.KindPattern, Message: "must be Cash, Card, or BankTransfer"}
		}
		return nil
	}
}

// GenerateInvoiceFields are the raw field values of the generate-invoice
// workflow.
type GenerateInvoiceFields struct {
	AccountID   string
	PeriodStart string
	PeriodEnd   string
	Frequency   string
}

// GenerateInvoiceForm tracks the generate-invoice workflow's field values
// and dirty state. Period ordering and future-date checks belong to the
// invoice aggregator; the form only validates field shape.
type GenerateInvoiceForm struct {
	GenerateInvoiceFields
	dirty bool
}

func NewGenerateInvoiceForm() *GenerateInvoiceForm {
	return &GenerateInvoiceForm{}
}

func (f *GenerateInvoiceForm) Populate(fields GenerateInvoiceFields) {
	f.GenerateInvoiceFields = fields
	f.dirty = true
}

func (f *GenerateInvoiceForm) MarkClean()              { f.dirty = false }
func (f *GenerateInvoiceForm) HasUnsavedChanges() bool { return f.dirty }

func (f *GenerateInvoiceForm) Validate() []*validate.FieldError {
	var fieldErrs []*validate.FieldError
	collect := func(fieldErr *validate.FieldError) {
		if fieldErr != nil {
			fieldErrs = append(fieldErrs, fieldErr)
		}
	}

	collect(validate.First(f.AccountID, validate.Required("accountId")))
	collect(validate.First(f.PeriodStart, validate.Required("billingPeriodStart"), dateRule("billingPeriodStart")))
	collect(validate.First(f.PeriodEnd, validate.Required("billingPeriodEnd"), dateRule("billingPeriodEnd")))

	return fieldErrs
}

// Request validates the form and shapes it into an aggregator request.
// An absent frequency defaults to monthly billing.
func (f *GenerateInvoiceForm) Request() (*invoice.GenerateRequest, []*validate.FieldError) {
	if fieldErrs := f.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	start, _ := time.Parse(dateLayout, f.PeriodStart)
	end, _ := time.Parse(dateLayout, f.PeriodEnd)

	frequency := invoice.Frequency(f.Frequency)
	if f.Frequency == "" {
		frequency = invoice.FrequencyMonthly
	}

	return &invoice.GenerateRequest{
		AccountID:   f.AccountID,
		PeriodStart: start,
		PeriodEnd:   end,
		Frequency:   frequency,
	}, nil
}

func dateRule(field string) validate.Rule {
	return func(value string) *validate.FieldError {
		if value == "" {
			return nil
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			return &validate.FieldError{Field: field, Kind: validate.KindInvalidDate, Message: "must be a date in YYYY-MM-DD format"}
		}
		return nil
	}
}
