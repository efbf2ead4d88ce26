package invoice

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jainarula-tz/rideledger/internal/invoice"
)

type mockInvoiceGetter struct {
	mock.Mock
}

func (m *mockInvoiceGetter) GetInvoice(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	inv, _ := args.Get(0).(*invoice.Invoice)
	return inv, args.Error(1)
}

func newGetTestAPI(t *testing.T, svc invoiceGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetInvoiceHandler(svc).Register(api)
	return api
}

func TestHTTP_GetInvoice_Found(t *testing.T) {
	mockSvc := new(mockInvoiceGetter)
	mockSvc.On("GetInvoice", mock.Anything, "INV-2026-001").Return(&invoice.Invoice{
		InvoiceNumber:      "INV-2026-001",
		AccountID:          "acc-001",
		AccountName:        "Riverside Dialysis Center",
		BillingPeriodStart: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		BillingPeriodEnd:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		LineItems: []invoice.LineItem{
			{
				RideID:      "RIDE-2031",
				ServiceDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
				FareAmount:  decimal.RequireFromString("45.50"),
				Description: "Dialysis round trip",
			},
		},
		Subtotal:             decimal.RequireFromString("120.00"),
		TotalPaymentsApplied: decimal.RequireFromString("69.00"),
		GeneratedAt:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:               invoice.StatusSent,
	}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/invoices/INV-2026-001")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body InvoiceDetail
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INV-2026-001", body.InvoiceNumber)
	assert.Equal(t, "2026-02-01", body.BillingPeriodStart)
	assert.Len(t, body.LineItems, 1)
	assert.Equal(t, "45.5", body.LineItems[0].FareAmount)
	assert.Equal(t, "51", body.OutstandingBalance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetInvoice_NotFound(t *testing.T) {
	mockSvc := new(mockInvoiceGetter)
	mockSvc.On("GetInvoice", mock.Anything, "INV-404").Return(nil, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/invoices/INV-404")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
