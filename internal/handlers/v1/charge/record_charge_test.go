package charge

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

func newChargeTestAPI(t *testing.T, billingProvider provider.Billing) humatest.TestAPI {
	t.Helper()

	logger := logrus.New()
	clients := &actions.Clients{
		Billing: billingProvider,
		Events:  events.Noop{},
		Logger:  logger,
	}
	delegator := operator.NewOperatorDelegator(clients, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	_, api := humatest.New(t)
	NewRecordChargeHandler(delegator).Register(api)
	return api
}

func validChargeBody() RecordChargeBody {
	return RecordChargeBody{
		AccountID:   "acc-001",
		RideID:      "RIDE-2031",
		FareAmount:  "45.50",
		ServiceDate: "2026-03-09",
		Description: "Dialysis round trip",
	}
}

func TestHTTP_RecordCharge_Created(t *testing.T) {
	recordedAt := time.Date(2026, 3, 9, 15, 4, 5, 0, time.UTC)

	mockProvider := new(mockBillingProvider)
	mockProvider.On("RecordCharge", mock.Anything, mock.MatchedBy(func(req billing.ChargeRequest) bool {
		return req.RideID == "RIDE-2031" && req.FareAmount.Equal(decimal.RequireFromString("45.50"))
	})).Return(&billing.ChargeResponse{
		TransactionID: "txn-901",
		AccountID:     "acc-001",
		RideID:        "RIDE-2031",
		FareAmount:    decimal.RequireFromString("45.50"),
		RecordedAt:    recordedAt,
	}, nil)

	resp := newChargeTestAPI(t, mockProvider).Post("/v1/charges", validChargeBody())

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body RecordChargeResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "txn-901", body.TransactionID)
	assert.Equal(t, "45.5", body.FareAmount)
	assert.Equal(t, "2026-03-09T15:04:05Z", body.RecordedAt)
	mockProvider.AssertExpectations(t)
}

func TestHTTP_RecordCharge_ValidationFailure(t *testing.T) {
	mockProvider := new(mockBillingProvider)

	body := validChargeBody()
	body.FareAmount = "-5"
	body.Description = "hi"

	resp := newChargeTestAPI(t, mockProvider).Post("/v1/charges", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "fareAmount")
	assert.Contains(t, resp.Body.String(), "description")
	mockProvider.AssertNotCalled(t, "RecordCharge", mock.Anything, mock.Anything)
}

func TestHTTP_RecordCharge_ProviderFailure(t *testing.T) {
	mockProvider := new(mockBillingProvider)
	mockProvider.On("RecordCharge", mock.Anything, mock.Anything).
		Return(nil, &provider.Error{Op: "recordCharge", StatusCode: 503, Message: "backend down"})

	resp := newChargeTestAPI(t, mockProvider).Post("/v1/charges", validChargeBody())

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}
