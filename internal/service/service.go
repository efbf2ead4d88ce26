package service

import (
	"github.com/jainarula-tz/rideledger/internal/provider"
)

// Service holds all read-side services. Mutations go through the operator.
type Service struct {
	Account *AccountService
	Invoice *InvoiceService
}

// NewService creates a new Service backed by the given provider client.
func NewService(accounts provider.Accounts, invoices provider.Invoices, defaultPageSize int) *Service {
	return &Service{
		Account: NewAccountService(accounts, defaultPageSize),
		Invoice: NewInvoiceService(invoices),
	}
}
