package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateInvoice(ctx context.Context, req GenerateRequest) (*Invoice, error) {
	args := m.Called(ctx, req)
	inv, _ := args.Get(0).(*Invoice)
	return inv, args.Error(1)
}

type fakeForm struct {
	clean bool
}

func (f *fakeForm) MarkClean() { f.clean = true }

func testNow() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func validRequest() GenerateRequest {
	return GenerateRequest{
		AccountID:   "acc-001",
		PeriodStart: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		Frequency:   FrequencyMonthly,
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &mockGenerator{}
	form := &fakeForm{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := validRequest()
	expected := &Invoice{
		InvoiceNumber:        "INV-2026-0042",
		AccountID:            "acc-001",
		Subtotal:             decimal.RequireFromString("240.00"),
		TotalPaymentsApplied: decimal.RequireFromString("100.00"),
		Status:               StatusDraft,
	}
	gen.On("GenerateInvoice", mock.Anything, req).Return(expected, nil)

	inv, err := aggregator.Generate(context.Background(), req, form)

	assert.NoError(t, err)
	assert.Equal(t, expected, inv)
	assert.True(t, inv.OutstandingBalance().Equal(decimal.RequireFromString("140.00")))
	assert.True(t, form.clean, "successful generation releases the unsaved-form state")
	gen.AssertExpectations(t)
}

func TestGenerate_InvertedPeriod(t *testing.T) {
	gen := &mockGenerator{}
	form := &fakeForm{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := GenerateRequest{
		AccountID:   "acc-001",
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Frequency:   FrequencyMonthly,
	}

	_, err := aggregator.Generate(context.Background(), req, form)

	assert.ErrorIs(t, err, ErrPeriodInverted)
	assert.True(t, IsValidationError(err))
	assert.False(t, form.clean, "form stays dirty so the user can retry")
	gen.AssertNotCalled(t, "GenerateInvoice", mock.Anything, mock.Anything)
}

func TestGenerate_FuturePeriod(t *testing.T) {
	gen := &mockGenerator{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := validRequest()
	req.PeriodEnd = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := aggregator.Generate(context.Background(), req, nil)

	assert.ErrorIs(t, err, ErrPeriodInFuture)
	assert.True(t, IsValidationError(err))
	gen.AssertNotCalled(t, "GenerateInvoice", mock.Anything, mock.Anything)
}

func TestGenerate_PeriodEndingTodayAllowed(t *testing.T) {
	gen := &mockGenerator{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := validRequest()
	req.PeriodEnd = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	gen.On("GenerateInvoice", mock.Anything, req).Return(&Invoice{Status: StatusDraft}, nil)

	_, err := aggregator.Generate(context.Background(), req, nil)

	assert.NoError(t, err)
}

func TestGenerate_InvalidFrequency(t *testing.T) {
	gen := &mockGenerator{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := validRequest()
	req.Frequency = "Quarterly"

	_, err := aggregator.Generate(context.Background(), req, nil)

	assert.ErrorIs(t, err, ErrInvalidFrequency)
	assert.False(t, IsValidationError(err), "bad frequency is a configuration error, not an input error")
	gen.AssertNotCalled(t, "GenerateInvoice", mock.Anything, mock.Anything)
}

func TestGenerate_ProviderFailureLeavesFormDirty(t *testing.T) {
	gen := &mockGenerator{}
	form := &fakeForm{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := validRequest()
	gen.On("GenerateInvoice", mock.Anything, req).Return(nil, errors.New("provider unavailable"))

	_, err := aggregator.Generate(context.Background(), req, form)

	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.False(t, form.clean, "provider failure must not reset the in-progress form")
}

func TestGenerate_ReflectsBackendStatus(t *testing.T) {
	gen := &mockGenerator{}
	aggregator := NewAggregatorAt(gen, testNow)

	req := validRequest()
	gen.On("GenerateInvoice", mock.Anything, req).Return(&Invoice{Status: StatusSent}, nil)

	inv, err := aggregator.Generate(context.Background(), req, nil)

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, inv.Status, "whatever status the backend returns is kept")
}
