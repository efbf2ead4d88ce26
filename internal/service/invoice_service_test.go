package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jainarula-tz/rideledger/internal/invoice"
)

type mockInvoicesProvider struct {
	mock.Mock
}

func (m *mockInvoicesProvider) FetchInvoices(ctx context.Context) ([]invoice.ListItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]invoice.ListItem)
	return items, args.Error(1)
}

func (m *mockInvoicesProvider) FetchInvoiceDetail(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func (m *mockInvoicesProvider) GenerateInvoice(ctx context.Context, req invoice.GenerateRequest) (*invoice.Invoice, error) {
	args := m.Called(ctx, req)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func newTestInvoiceService(t *testing.T) (*InvoiceService, *mockInvoicesProvider) {
	t.Helper()
	mockProvider := &mockInvoicesProvider{}
	return NewInvoiceService(mockProvider), mockProvider
}

func testListItems() []invoice.ListItem {
	return []invoice.ListItem{
		{InvoiceNumber: "INV-2026-001", AccountName: "Riverside Dialysis Center", Status: invoice.StatusDraft, Subtotal: decimal.RequireFromString("120.00")},
		{InvoiceNumber: "INV-2026-002", AccountName: "Harold Jenkins", Status: invoice.StatusSent, Subtotal: decimal.RequireFromString("45.00")},
		{InvoiceNumber: "INV-2026-003", AccountName: "Riverside Dialysis Center", Status: invoice.StatusPaid, Subtotal: decimal.RequireFromString("300.00")},
	}
}

func TestListInvoices_AllStatuses(t *testing.T) {
	svc, mockProvider := newTestInvoiceService(t)

	mockProvider.On("FetchInvoices", mock.Anything).Return(testListItems(), nil)

	items, err := svc.ListInvoices(context.Background(), invoice.StatusAll)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestListInvoices_StatusFilter(t *testing.T) {
	svc, mockProvider := newTestInvoiceService(t)

	mockProvider.On("FetchInvoices", mock.Anything).Return(testListItems(), nil)

	items, err := svc.ListInvoices(context.Background(), invoice.StatusSent)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "INV-2026-002", items[0].InvoiceNumber)
}

func TestListInvoices_NilBecomesEmpty(t *testing.T) {
	svc, mockProvider := newTestInvoiceService(t)

	mockProvider.On("FetchInvoices", mock.Anything).Return(nil, nil)

	items, err := svc.ListInvoices(context.Background(), invoice.StatusAll)

	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListInvoices_ProviderError(t *testing.T) {
	svc, mockProvider := newTestInvoiceService(t)

	mockProvider.On("FetchInvoices", mock.Anything).
		Return(nil, errors.New("provider unavailable"))

	items, err := svc.ListInvoices(context.Background(), invoice.StatusAll)

	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestGetInvoice_Success(t *testing.T) {
	svc, mockProvider := newTestInvoiceService(t)

	detail := &invoice.Invoice{
		InvoiceNumber:        "INV-2026-001",
		AccountID:            "acc-001",
		Status:               invoice.StatusSent,
		BillingPeriodStart:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		BillingPeriodEnd:     time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		Subtotal:             decimal.RequireFromString("120.00"),
		TotalPaymentsApplied: decimal.RequireFromString("20.00"),
	}
	mockProvider.On("FetchInvoiceDetail", mock.Anything, "INV-2026-001").Return(detail, nil)

	inv, err := svc.GetInvoice(context.Background(), "INV-2026-001")

	assert.NoError(t, err)
	assert.Equal(t, "INV-2026-001", inv.InvoiceNumber)
	assert.Equal(t, "100", inv.OutstandingBalance().String())
}
