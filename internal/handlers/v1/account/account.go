package account

import (
	"time"

	"github.com/jainarula-tz/rideledger/internal/ledger"
)

// Account is the API response model for a billable account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID      string `json:"id" doc:"Account identifier"`
	Name    string `json:"name" doc:"Display name"`
	Type    string `json:"type" doc:"Organization or Individual"`
	Status  string `json:"status" doc:"Active or Inactive"`
	Balance string `json:"balance" doc:"Current decimal balance"`
}

// LedgerEntry is the API response model for one ledger entry. Exactly one
// of debitAmount and creditAmount is present.
type LedgerEntry struct {
	ID                string  `json:"id" doc:"Entry identifier"`
	Date              string  `json:"date" doc:"Entry date, YYYY-MM-DD"`
	Kind              string  `json:"kind" doc:"Charge or Payment"`
	Description       string  `json:"description" doc:"Entry description"`
	DebitAmount       *string `json:"debitAmount,omitempty" doc:"Decimal debit amount, charges only"`
	CreditAmount      *string `json:"creditAmount,omitempty" doc:"Decimal credit amount, payments only"`
	RunningBalance    string  `json:"runningBalance" doc:"Backend-computed balance after this entry"`
	SourceReferenceID string  `json:"sourceReferenceId,omitempty" doc:"Originating ride or payment reference"`
}

func toAPIAccount(src ledger.Account) Account {
	return Account{
		ID:      src.ID,
		Name:    src.Name,
		Type:    string(src.Type),
		Status:  string(src.Status),
		Balance: src.Balance.String(),
	}
}

func toAPIEntry(src ledger.Entry) LedgerEntry {
	entry := LedgerEntry{
		ID:                src.ID,
		Date:              src.Date.Format("2006-01-02"),
		Kind:              string(src.Kind),
		Description:       src.Description,
		RunningBalance:    src.RunningBalance.String(),
		SourceReferenceID: src.SourceReferenceID,
	}
	if src.DebitAmount != nil {
		debit := src.DebitAmount.String()
		entry.DebitAmount = &debit
	}
	if src.CreditAmount != nil {
		credit := src.CreditAmount.String()
		entry.CreditAmount = &credit
	}
	return entry
}

const dateLayout = "2006-01-02"

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
