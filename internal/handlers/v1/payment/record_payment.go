// Package payment exposes the payment recording endpoint.
package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/operator"
	"github.com/jainarula-tz/rideledger/internal/operator/actions"
	"github.com/jainarula-tz/rideledger/internal/validate"
)

// RecordPaymentBody is the request body for recording a payment. The payment
// mode accepts the named modes and their legacy numeric codes.
type RecordPaymentBody struct {
	AccountID          string `json:"accountId" required:"true" doc:"Account identifier"`
	PaymentReferenceID string `json:"paymentReferenceId" required:"true" doc:"Payment reference, uppercase letters, numbers, and hyphens"`
	Amount             string `json:"amount" required:"true" doc:"Decimal amount, at most two decimal places"`
	PaymentDate        string `json:"paymentDate" required:"true" doc:"Payment date, YYYY-MM-DD, not in the future"`
	PaymentMode        string `json:"paymentMode" required:"true" doc:"Cash, Card, or BankTransfer"`
	Notes              string `json:"notes,omitempty" doc:"Optional notes, up to 500 characters"`
}

// RecordPaymentResponseBody is the response body for a recorded payment.
type RecordPaymentResponseBody struct {
	TransactionID      string `json:"transactionId" doc:"Backend transaction identifier"`
	AccountID          string `json:"accountId" doc:"Account identifier"`
	PaymentReferenceID string `json:"paymentReferenceId" doc:"Payment reference"`
	Amount             string `json:"amount" doc:"Recorded decimal amount"`
	RecordedAt         string `json:"recordedAt" doc:"RFC3339 recording time"`
}

// RecordPaymentInput is the Huma input for recording a payment.
type RecordPaymentInput struct {
	Body RecordPaymentBody
}

// RecordPaymentOutput is the Huma output for recording a payment.
type RecordPaymentOutput struct {
	Status int
	Body   RecordPaymentResponseBody
}

// RecordPaymentHandler handles POST /v1/payments.
type RecordPaymentHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRecordPaymentHandler creates a new RecordPaymentHandler.
func NewRecordPaymentHandler(op *operator.OperatorDelegator) *RecordPaymentHandler {
	return &RecordPaymentHandler{Operator: op}
}

// Register registers the record payment endpoint with the Huma API.
func (h *RecordPaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-payment",
		Method:        http.MethodPost,
		Path:          "/v1/payments",
		Summary:       "Record payment",
		Description:   "Records one payment received against an account.",
		Tags:          []string{"Billing"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RecordPaymentHandler) handle(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error) {
	form := billing.NewPaymentForm()
	form.Populate(billing.PaymentFields{
		AccountID:          input.Body.AccountID,
		PaymentReferenceID: input.Body.PaymentReferenceID,
		Amount:             input.Body.Amount,
		PaymentDate:        input.Body.PaymentDate,
		PaymentMode:        input.Body.PaymentMode,
		Notes:              input.Body.Notes,
	})

	request, fieldErrs := form.Request()
	if len(fieldErrs) > 0 {
		return nil, fieldErrorResponse(fieldErrs)
	}

	action := &actions.RecordPayment{
		Request: *request,
		Form:    form,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to record payment", err)
	}

	return &RecordPaymentOutput{
		Status: http.StatusCreated,
		Body: RecordPaymentResponseBody{
			TransactionID:      action.Response.TransactionID,
			AccountID:          action.Response.AccountID,
			PaymentReferenceID: action.Response.PaymentReferenceID,
			Amount:             action.Response.Amount.String(),
			RecordedAt:         action.Response.RecordedAt.Format(time.RFC3339),
		},
	}, nil
}

func fieldErrorResponse(fieldErrs []*validate.FieldError) error {
	errs := make([]error, len(fieldErrs))
	for i, fieldErr := range fieldErrs {
		errs[i] = fieldErr
	}
	return huma.NewError(http.StatusUnprocessableEntity, "payment submission failed validation", errs...)
}
