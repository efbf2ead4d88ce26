package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/logging"
)

// ListInvoicesInput is the Huma input for listing invoices.
type ListInvoicesInput struct {
	Status string `query:"status" doc:"Draft, Sent, Paid, Overdue, or all"`
}

// ListInvoicesResponseBody is the response body for listing invoices.
type ListInvoicesResponseBody struct {
	Invoices []InvoiceSummary `json:"invoices" doc:"Invoice summaries matching the status filter"`
}

// ListInvoicesOutput is the Huma output for listing invoices.
type ListInvoicesOutput struct {
	Body ListInvoicesResponseBody
}

// invoiceLister is the interface for listing invoices.
type invoiceLister interface {
	ListInvoices(ctx context.Context, status invoice.Status) ([]invoice.ListItem, error)
}

// ListInvoicesHandler handles GET /v1/invoices.
type ListInvoicesHandler struct {
	InvoiceService invoiceLister
}

// NewListInvoicesHandler creates a new ListInvoicesHandler.
func NewListInvoicesHandler(svc invoiceLister) *ListInvoicesHandler {
	return &ListInvoicesHandler{InvoiceService: svc}
}

// Register registers the list invoices endpoint with the Huma API.
func (h *ListInvoicesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-invoices",
		Method:      http.MethodGet,
		Path:        "/v1/invoices",
		Summary:     "List invoices",
		Description: "Returns invoice summaries, optionally filtered by status.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *ListInvoicesHandler) handle(ctx context.Context, input *ListInvoicesInput) (*ListInvoicesOutput, error) {
	logData := logging.GetLogData(ctx)

	status, err := invoice.ParseStatus(input.Status)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid status", err)
	}

	items, err := h.InvoiceService.ListInvoices(ctx, status)
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to list invoices", err)
	}

	if logData != nil {
		logData.AddData("invoiceCount", len(items))
	}

	resp := ListInvoicesResponseBody{Invoices: make([]InvoiceSummary, len(items))}
	for i, item := range items {
		resp.Invoices[i] = toAPISummary(item)
	}

	return &ListInvoicesOutput{Body: resp}, nil
}
