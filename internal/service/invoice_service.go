package service

import (
	"context"

	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/provider"
)

// InvoiceService handles invoice reads. Generation is a mutation and goes
// through the operator.
type InvoiceService struct {
	provider provider.Invoices
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoices provider.Invoices) *InvoiceService {
	return &InvoiceService{provider: invoices}
}

// ListInvoices fetches the invoice list and filters it by status. A zero
// count is an empty list, never an error.
func (s *InvoiceService) ListInvoices(ctx context.Context, status invoice.Status) ([]invoice.ListItem, error) {
	items, err := s.provider.FetchInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []invoice.ListItem{}
	}
	return invoice.FilterByStatus(items, status), nil
}

// GetInvoice fetches one invoice by its provider-assigned number.
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	return s.provider.FetchInvoiceDetail(ctx, invoiceNumber)
}
