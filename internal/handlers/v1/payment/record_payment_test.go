package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/events"
	"github.com/jainarula-tz/rideledger/internal/operator"
	"github.com/jainarula-tz/rideledger/internal/operator/actions"
	"github.com/jainarula-tz/rideledger/internal/provider"
)

type mockBillingProvider struct {
	mock.Mock
}

func (m *mockBillingProvider) RecordCharge(ctx context.Context, req billing.ChargeRequest) (*billing.ChargeResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*billing.ChargeResponse)
	return resp, args.Error(1)
}

func (m *mockBillingProvider) RecordPayment(ctx context.Context, req billing.PaymentRequest) (*billing.PaymentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*billing.PaymentResponse)
	return resp, args.Error(1)
}

func newPaymentTestAPI(t *testing.T, billingProvider provider.Billing) humatest.TestAPI {
	t.Helper()

	clients := &actions.Clients{
		Billing: billingProvider,
		Events:  events.Noop{},
		Logger:  logrus.New(),
	}
	delegator := operator.NewOperatorDelegator(clients, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	NewRecordPaymentHandler(delegator).Register(api)
	return api
}

func validPaymentBody() RecordPaymentBody {
	return RecordPaymentBody{
		AccountID:          "acc-001",
		PaymentReferenceID: "CHK-1042",
		Amount:             "250.00",
		PaymentDate:        "2026-03-10",
		PaymentMode:        "Card",
		Notes:              "February statement",
	}
}

func TestHTTP_RecordPayment_Created(t *testing.T) {
	recordedAt := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

	mockProvider := new(mockBillingProvider)
	mockProvider.On("RecordPayment", mock.Anything, mock.MatchedBy(func(req billing.PaymentRequest) bool {
		return req.PaymentReferenceID == "CHK-1042" && req.PaymentMode == billing.PaymentModeCard
	})).Return(&billing.PaymentResponse{
		TransactionID:      "txn-902",
		AccountID:          "acc-001",
		PaymentReferenceID: "CHK-1042",
		Amount:             decimal.RequireFromString("250.00"),
		RecordedAt:         recordedAt,
	}, nil)

	resp := newPaymentTestAPI(t, mockProvider).Post("/v1/payments", validPaymentBody())

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body RecordPaymentResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "txn-902", body.TransactionID)
	assert.Equal(t, "250", body.Amount)
	mockProvider.AssertExpectations(t)
}

func TestHTTP_RecordPayment_LegacyNumericMode(t *testing.T) {
	mockProvider := new(mockBillingProvider)
	mockProvider.On("RecordPayment", mock.Anything, mock.MatchedBy(func(req billing.PaymentRequest) bool {
		return req.PaymentMode == billing.PaymentModeBankTransfer
	})).Return(&billing.PaymentResponse{TransactionID: "txn-903"}, nil)

	body := validPaymentBody()
	body.PaymentMode = "3"

	resp := newPaymentTestAPI(t, mockProvider).Post("/v1/payments", body)

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockProvider.AssertExpectations(t)
}

func TestHTTP_RecordPayment_ValidationFailure(t *testing.T) {
	mockProvider := new(mockBillingProvider)

	body := validPaymentBody()
	body.PaymentMode = "Barter"
	body.PaymentDate = "2027-01-01"

	resp := newPaymentTestAPI(t, mockProvider).Post("/v1/payments", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "paymentMode")
	assert.Contains(t, resp.Body.String(), "paymentDate")
	mockProvider.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything)
}

func TestHTTP_RecordPayment_ProviderFailure(t *testing.T) {
	mockProvider := new(mockBillingProvider)
	mockProvider.On("RecordPayment", mock.Anything, mock.Anything).
		Return(nil, &provider.Error{Op: "recordPayment", StatusCode: 500, Message: "backend error"})

	resp := newPaymentTestAPI(t, mockProvider).Post("/v1/payments", validPaymentBody())

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}
