package invoice

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/operator"
	"github.com/jainarula-tz/rideledger/internal/operator/actions"
)

// GenerateInvoiceBody is the request body for generating an invoice.
type GenerateInvoiceBody struct {
	AccountID          string `json:"accountId" required:"true" doc:"Account to bill"`
	BillingPeriodStart string `json:"billingPeriodStart" required:"true" doc:"Period start, YYYY-MM-DD"`
	BillingPeriodEnd   string `json:"billingPeriodEnd" required:"true" doc:"Period end, YYYY-MM-DD, not after today"`
	Frequency          string `json:"frequency,omitempty" doc:"PerRide, Daily, Weekly, or Monthly, defaults to Monthly"`
}

// GenerateInvoiceInput is the Huma input for generating an invoice.
type GenerateInvoiceInput struct {
	Body GenerateInvoiceBody
}

// GenerateInvoiceOutput is the Huma output for generating an invoice.
type GenerateInvoiceOutput struct {
	Status int
	Body   InvoiceDetail
}

// GenerateInvoiceHandler handles POST /v1/invoices/generate.
type GenerateInvoiceHandler struct {
	Operator *operator.OperatorDelegator
}

// NewGenerateInvoiceHandler creates a new GenerateInvoiceHandler.
func NewGenerateInvoiceHandler(op *operator.OperatorDelegator) *GenerateInvoiceHandler {
	return &GenerateInvoiceHandler{Operator: op}
}

// Register registers the generate invoice endpoint with the Huma API.
func (h *GenerateInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "generate-invoice",
		Method:        http.MethodPost,
		Path:          "/v1/invoices/generate",
		Summary:       "Generate invoice",
		Description:   "Asks the billing backend to aggregate a period's charges and payments into an invoice.",
		Tags:          []string{"Invoices"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *GenerateInvoiceHandler) handle(ctx context.Context, input *GenerateInvoiceInput) (*GenerateInvoiceOutput, error) {
	form := billing.NewGenerateInvoiceForm()
	form.Populate(billing.GenerateInvoiceFields{
		AccountID:   input.Body.AccountID,
		PeriodStart: input.Body.BillingPeriodStart,
		PeriodEnd:   input.Body.BillingPeriodEnd,
		Frequency:   input.Body.Frequency,
	})

	request, fieldErrs := form.Request()
	if len(fieldErrs) > 0 {
		errs := make([]error, len(fieldErrs))
		for i, fieldErr := range fieldErrs {
			errs[i] = fieldErr
		}
		return nil, huma.NewError(http.StatusUnprocessableEntity, "invoice request failed validation", errs...)
	}

	action := &actions.GenerateInvoice{
		Request:            *request,
		MarkCleanOnSuccess: form,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		switch {
		case invoice.IsValidationError(err):
			return nil, huma.NewError(http.StatusUnprocessableEntity, "invoice request failed validation", err)
		case errors.Is(err, invoice.ErrInvalidFrequency):
			return nil, huma.NewError(http.StatusInternalServerError, "invoice frequency misconfigured", err)
		}
		return nil, huma.NewError(http.StatusBadGateway, "failed to generate invoice", err)
	}

	return &GenerateInvoiceOutput{
		Status: http.StatusCreated,
		Body:   toAPIDetail(action.Response),
	}, nil
}
