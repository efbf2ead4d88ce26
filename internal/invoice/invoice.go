package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the invoice lifecycle state. Transitions (Draft -> Sent -> Paid,
// with Sent -> Overdue -> Paid as the late branch) are authored by the
// billing backend; this service only renders and filters them.
type Status string

const (
	StatusDraft   Status = "Draft"
	StatusSent    Status = "Sent"
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"

	// StatusAll is the sentinel meaning "no status restriction" when
	// filtering an invoice list.
	StatusAll Status = "all"
)

var ErrUnknownStatus = errors.New("unknown invoice status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return Status(s), nil
	case StatusAll, "":
		return StatusAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Frequency is the billing cadence for invoice generation. An unknown value
// is a configuration error, not a runtime input error.
type Frequency string

const (
	FrequencyPerRide Frequency = "PerRide"
	FrequencyDaily   Frequency = "Daily"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyMonthly Frequency = "Monthly"
)

var ErrInvalidFrequency = errors.New("invalid billing frequency")

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyPerRide, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// LineItem is one billed ride within an invoice. Line items belong to
// exactly one invoice.
type LineItem struct {
	RideID      string
	ServiceDate time.Time
	FareAmount  decimal.Decimal
	Description string
}

// Invoice is an immutable financial document aggregating the charges and
// payments of one billing period. The backend owns the arithmetic; the
// outstanding balance is never stored, always derived from its components.
type Invoice struct {
	InvoiceNumber        string
	AccountID            string
	AccountName          string
	BillingPeriodStart   time.Time
	BillingPeriodEnd     time.Time
	LineItems            []LineItem
	Subtotal             decimal.Decimal
	TotalPaymentsApplied decimal.Decimal
	GeneratedAt          time.Time
	Status               Status
}

// OutstandingBalance is subtotal minus payments applied to the period.
func (inv *Invoice) OutstandingBalance() decimal.Decimal {
	return inv.Subtotal.Sub(inv.TotalPaymentsApplied)
}

// ListItem is the summary row returned by the invoice list endpoint.
type ListItem struct {
	InvoiceNumber      string
	AccountName        string
	GeneratedAt        time.Time
	Subtotal           decimal.Decimal
	OutstandingBalance decimal.Decimal
	Status             Status
}

// FilterByStatus returns the list items with the given status, preserving
// input order. StatusAll is the identity filter.
func FilterByStatus(items []ListItem, status Status) []ListItem {
	if status == StatusAll || status == "" {
		return items
	}
	filtered := make([]ListItem, 0, len(items))
	for _, item := range items {
		if item.Status == status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
