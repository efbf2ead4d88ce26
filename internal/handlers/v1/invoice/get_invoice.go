package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/logging"
)

// GetInvoiceInput is the Huma input for fetching one invoice.
type GetInvoiceInput struct {
	InvoiceNumber string `path:"invoiceNumber" doc:"Invoice number"`
}

// GetInvoiceOutput is the Huma output for fetching one invoice.
type GetInvoiceOutput struct {
	Body InvoiceDetail
}

// invoiceGetter is the interface for fetching one invoice.
type invoiceGetter interface {
	GetInvoice(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error)
}

// GetInvoiceHandler handles GET /v1/invoices/{invoiceNumber}.
type GetInvoiceHandler struct {
	InvoiceService invoiceGetter
}

// NewGetInvoiceHandler creates a new GetInvoiceHandler.
func NewGetInvoiceHandler(svc invoiceGetter) *GetInvoiceHandler {
	return &GetInvoiceHandler{InvoiceService: svc}
}

// Register registers the get invoice endpoint with the Huma API.
func (h *GetInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-invoice",
		Method:      http.MethodGet,
		Path:        "/v1/invoices/{invoiceNumber}",
		Summary:     "Get invoice",
		Description: "Returns one invoice with its line items and derived outstanding balance.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *GetInvoiceHandler) handle(ctx context.Context, input *GetInvoiceInput) (*GetInvoiceOutput, error) {
	logData := logging.GetLogData(ctx)

	detail, err := h.InvoiceService.GetInvoice(ctx, input.InvoiceNumber)
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to fetch invoice", err)
	}
	if detail == nil {
		return nil, huma.NewError(http.StatusNotFound, "invoice not found")
	}

	if logData != nil {
		logData.AddData("lineItemCount", len(detail.LineItems))
	}

	return &GetInvoiceOutput{Body: toAPIDetail(detail)}, nil
}
