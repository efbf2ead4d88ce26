package service

import (
	"github.com/jainarula-tz/rideledger/internal/ledger"
)

// LedgerQuery selects the slice of an account's ledger to display.
type LedgerQuery struct {
	Filter   ledger.Filter
	Page     int
	PageSize int
}

// LedgerView is the materialized ledger view for one account: the displayed
// page plus the metadata the presentation layer renders ("showing X-Y of Z").
type LedgerView struct {
	Account       ledger.Account
	Entries       []ledger.Entry
	FilteredCount int
	CurrentPage   int
	TotalPages    int
	PageSize      int
	StartRecord   int
	EndRecord     int
}
