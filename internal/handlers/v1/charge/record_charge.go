// Package charge exposes the ride charge recording endpoint.
package charge

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

// RecordChargeBody is the request body for recording a charge. Values arrive
// as strings and are validated by the charge form before anything reaches
// the billing backend.
type RecordChargeBody struct {
	AccountID   string `json:"accountId" required:"true" doc:"Account identifier"`
	RideID      string `json:"rideId" required:"true" doc:"Ride reference, uppercase letters, numbers, and hyphens"`
	FareAmount  string `json:"fareAmount" required:"true" doc:"Decimal fare, at most two decimal places"`
	ServiceDate string `json:"serviceDate" required:"true" doc:"Date of service, YYYY-MM-DD, not in the future"`
	Description string `json:"description" required:"true" doc:"Charge description, 5 to 200 characters"`
}

// RecordChargeResponseBody is the response body for a recorded charge.
type RecordChargeResponseBody struct {
	TransactionID string `json:"transactionId" doc:"Backend transaction identifier"`
	AccountID     string `json:"accountId" doc:"Account identifier"`
	RideID        string `json:"rideId" doc:"Ride reference"`
	FareAmount    string `json:"fareAmount" doc:"Recorded decimal fare"`
	RecordedAt    string `json:"recordedAt" doc:"RFC3339 recording time"`
}

// RecordChargeInput is the Huma input for recording a charge.
type RecordChargeInput struct {
	Body RecordChargeBody
}

// RecordChargeOutput is the Huma output for recording a charge.
type RecordChargeOutput struct {
	Status int
	Body   RecordChargeResponseBody
}

// RecordChargeHandler handles POST /v1/charges.
type RecordChargeHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRecordChargeHandler creates a new RecordChargeHandler.
func NewRecordChargeHandler(op *operator.OperatorDelegator) *RecordChargeHandler {
	return &RecordChargeHandler{Operator: op}
}

// Register registers the record charge endpoint with the Huma API.
func (h *RecordChargeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-charge",
		Method:        http.MethodPost,
		Path:          "/v1/charges",
		Summary:       "Record charge",
		Description:   "Records one ride charge against an account.",
		Tags:          []string{"Billing"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RecordChargeHandler) handle(ctx context.Context, input *RecordChargeInput) (*RecordChargeOutput, error) {
	form := billing.NewChargeForm()
	form.Populate(billing.ChargeFields{
		AccountID:   input.Body.AccountID,
		RideID:      input.Body.RideID,
		FareAmount:  input.Body.FareAmount,
		ServiceDate: input.Body.ServiceDate,
		Description: input.Body.Description,
	})

	request, fieldErrs := form.Request()
	if len(fieldErrs) > 0 {
		return nil, fieldErrorResponse(fieldErrs)
	}

	action := &actions.RecordCharge{
		Request: *request,
		Form:    form,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to record charge", err)
	}

	return &RecordChargeOutput{
		Status: http.StatusCreated,
		Body: RecordChargeResponseBody{
			TransactionID: action.Response.TransactionID,
			AccountID:     action.Response.AccountID,
			RideID:        action.Response.RideID,
			FareAmount:    action.Response.FareAmount.String(),
			RecordedAt:    action.Response.RecordedAt.Format(time.RFC3339),
		},
	}, nil
}

func fieldErrorResponse(fieldErrs []*validate.FieldError) error {
	errs := make([]error, len(fieldErrs))
	for i, fieldErr := range fieldErrs {
		errs[i] = fieldErr
	}
	return huma.NewError(http.StatusUnprocessableEntity, "charge submission failed validation", errs...)
}
