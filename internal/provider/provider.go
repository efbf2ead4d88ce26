// Package provider is the client side of the external billing backend. All
// mutation happens backend-side; this service records requests and fetches
// results back, it never owns data.
package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/ledger"
)

// Accounts is the account and ledger side of the provider.
type Accounts interface {
	FetchAccount(ctx context.Context, accountID string) (*ledger.Account, error)
	FetchTransactions(ctx context.Context, accountID string) ([]ledger.Entry, error)
	SearchAccounts(ctx context.Context, query string) ([]ledger.Account, error)
}

// Invoices is the invoice side of the provider.
type Invoices interface {
	FetchInvoices(ctx context.Context) ([]invoice.ListItem, error)
	FetchInvoiceDetail(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error)
	GenerateInvoice(ctx context.Context, req invoice.GenerateRequest) (*invoice.Invoice, error)
}

// Billing is the charge/payment recording side of the provider.
type Billing interface {
	RecordCharge(ctx context.Context, req billing.ChargeRequest) (*billing.ChargeResponse, error)
	RecordPayment(ctx context.Context, req billing.PaymentRequest) (*billing.PaymentResponse, error)
}

// Error is a non-2xx response from the provider.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// IsNotImplemented reports whether the provider answered that the operation
// does not exist yet. Used for the documented invoice-list fallback.
func IsNotImplemented(err error) bool {
	providerErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return providerErr.StatusCode == http.StatusNotFound || providerErr.StatusCode == http.StatusNotImplemented
}
