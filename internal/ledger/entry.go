package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two kinds of ledger entries.
type EntryKind string

const (
	KindCharge  EntryKind = "Charge"
	KindPayment EntryKind = "Payment"

	// KindAll is the sentinel meaning "no kind restriction" in a Filter.
	KindAll EntryKind = "all"
)

var ErrUnknownEntryKind = errors.New("unknown entry kind")

func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case KindCharge, KindPayment:
		return EntryKind(s), nil
	case KindAll, "":
		return KindAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntryKind, s)
}

// Entry is one charge or payment recorded against an account. Entries are
// created by the billing backend and immutable here; the running balance is
// the backend's snapshot at creation time and is never recomputed from the
// debit/credit deltas.
type Entry struct {
	ID                string
	AccountID         string
	Date              time.Time
	Kind              EntryKind
	Description       string
	DebitAmount       *decimal.Decimal
	CreditAmount      *decimal.Decimal
	RunningBalance    decimal.Decimal
	SourceReferenceID string
}

var (
	ErrBothAmountsSet = errors.New("entry carries both a debit and a credit amount")
	ErrNoAmountSet    = errors.New("entry carries neither a debit nor a credit amount")
	ErrAmountNotPositive = errors.New("entry amount must be positive")
)

// Validate enforces that exactly one of DebitAmount/CreditAmount is set,
// and that the set amount is positive.
func (e *Entry) Validate() error {
	switch {
	case e.DebitAmount != nil && e.CreditAmount != nil:
		return ErrBothAmountsSet
	case e.DebitAmount == nil && e.CreditAmount == nil:
		return ErrNoAmountSet
	}
	if amount := e.Amount(); amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}
	return nil
}

// Amount returns whichever of the debit or credit amount is set.
func (e *Entry) Amount() decimal.Decimal {
	if e.DebitAmount != nil {
		return *e.DebitAmount
	}
	if e.CreditAmount != nil {
		return *e.CreditAmount
	}
	return decimal.Zero
}

// AccountType classifies the billed party.
type AccountType string

const (
	AccountTypeOrganization AccountType = "Organization"
	AccountTypeIndividual   AccountType = "Individual"
)

// AccountStatus is the provider-managed account state.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "Active"
	AccountStatusInactive AccountStatus = "Inactive"
)

// Account is the billed party as held by the account provider. Read-only
// from this service's perspective.
type Account struct {
	ID        string
	Name      string
	Type      AccountType
	Status    AccountStatus
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
