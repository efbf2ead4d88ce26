package provider

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/ledger"
)

const wireDateLayout = "2006-01-02"

// apiDate is a calendar date on the wire. The backend sends some date fields
// with and some without a time component; both decode here. Encoding always
// emits the date-only form.
type apiDate struct {
	time.Time
}

func (d *apiDate) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if raw == "null" || raw == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = parsed
		return nil
	}
	parsed, err := time.Parse(wireDateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q", raw)
	}
	d.Time = parsed
	return nil
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(wireDateLayout) + `"`), nil
}

type accountDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (dto *accountDTO) toAccount() ledger.Account {
	return ledger.Account{
		ID:        dto.ID,
		Name:      dto.Name,
		Type:      ledger.AccountType(dto.Type),
		Status:    ledger.AccountStatus(dto.Status),
		Balance:   dto.Balance,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

type entryDTO struct {
	ID                string           `json:"id"`
	AccountID         string           `json:"accountId"`
	TransactionDate   apiDate          `json:"transactionDate"`
	Type              string           `json:"type"`
	Description       string           `json:"description"`
	DebitAmount       *decimal.Decimal `json:"debitAmount"`
	CreditAmount      *decimal.Decimal `json:"creditAmount"`
	RunningBalance    decimal.Decimal  `json:"runningBalance"`
	SourceReferenceID string           `json:"sourceReferenceId"`
}

func (dto *entryDTO) toEntry() (ledger.Entry, error) {
	kind, err := ledger.ParseEntryKind(dto.Type)
	if err != nil || kind == ledger.KindAll {
		return ledger.Entry{}, fmt.Errorf("entry %s: invalid kind %q", dto.ID, dto.Type)
	}

	entry := ledger.Entry{
		ID:                dto.ID,
		AccountID:         dto.AccountID,
		Date:              dto.TransactionDate.Time,
		Kind:              kind,
		Description:       dto.Description,
		DebitAmount:       dto.DebitAmount,
		CreditAmount:      dto.CreditAmount,
		RunningBalance:    dto.RunningBalance,
		SourceReferenceID: dto.SourceReferenceID,
	}
	if err := entry.Validate(); err != nil {
		return ledger.Entry{}, fmt.Errorf("entry %s: %w", dto.ID, err)
	}
	return entry, nil
}

type lineItemDTO struct {
	RideID      string          `json:"rideId"`
	ServiceDate apiDate         `json:"serviceDate"`
	FareAmount  decimal.Decimal `json:"fareAmount"`
	Description string          `json:"description"`
}

type invoiceDTO struct {
	InvoiceNumber        string          `json:"invoiceNumber"`
	AccountID            string          `json:"accountId"`
	AccountName          string          `json:"accountName"`
	BillingPeriodStart   apiDate         `json:"billingPeriodStart"`
	BillingPeriodEnd     apiDate         `json:"billingPeriodEnd"`
	LineItems            []lineItemDTO   `json:"lineItems"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TotalPaymentsApplied decimal.Decimal `json:"totalPaymentsApplied"`
	// The wire also carries outstandingBalance; it is deliberately not
	// decoded. The balance is always derived from its components.
	GeneratedAt time.Time `json:"generatedAt"`
	Status      string    `json:"status"`
}

func (dto *invoiceDTO) toInvoice() (*invoice.Invoice, error) {
	status, err := invoice.ParseStatus(dto.Status)
	if err != nil || status == invoice.StatusAll {
		return nil, fmt.Errorf("invoice %s: invalid status %q", dto.InvoiceNumber, dto.Status)
	}

	lineItems := make([]invoice.LineItem, len(dto.LineItems))
	for i, item := range dto.LineItems {
		lineItems[i] = invoice.LineItem{
			RideID:      item.RideID,
			ServiceDate: item.ServiceDate.Time,
			FareAmount:  item.FareAmount,
			Description: item.Description,
		}
	}

	return &invoice.Invoice{
		InvoiceNumber:        dto.InvoiceNumber,
		AccountID:            dto.AccountID,
		AccountName:          dto.AccountName,
		BillingPeriodStart:   dto.BillingPeriodStart.Time,
		BillingPeriodEnd:     dto.BillingPeriodEnd.Time,
		LineItems:            lineItems,
		Subtotal:             dto.Subtotal,
		TotalPaymentsApplied: dto.TotalPaymentsApplied,
		GeneratedAt:          dto.GeneratedAt,
		Status:               status,
	}, nil
}

type invoiceListItemDTO struct {
	InvoiceNumber        string          `json:"invoiceNumber"`
	AccountName          string          `json:"accountName"`
	GeneratedAt          time.Time       `json:"generatedAt"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TotalPaymentsApplied decimal.Decimal `json:"totalPaymentsApplied"`
	Status               string          `json:"status"`
}

func (dto *invoiceListItemDTO) toListItem() (invoice.ListItem, error) {
	status, err := invoice.ParseStatus(dto.Status)
	if err != nil || status == invoice.StatusAll {
		return invoice.ListItem{}, fmt.Errorf("invoice %s: invalid status %q", dto.InvoiceNumber, dto.Status)
	}
	return invoice.ListItem{
		InvoiceNumber:      dto.InvoiceNumber,
		AccountName:        dto.AccountName,
		GeneratedAt:        dto.GeneratedAt,
		Subtotal:           dto.Subtotal,
		OutstandingBalance: dto.Subtotal.Sub(dto.TotalPaymentsApplied),
		Status:             status,
	}, nil
}

type generateInvoiceDTO struct {
	AccountID          string `json:"accountId"`
	BillingPeriodStart string `json:"billingPeriodStart"`
	BillingPeriodEnd   string `json:"billingPeriodEnd"`
	Frequency          string `json:"frequency"`
}

func newGenerateInvoiceDTO(req invoice.GenerateRequest) generateInvoiceDTO {
	return generateInvoiceDTO{
		AccountID:          req.AccountID,
		BillingPeriodStart: req.PeriodStart.Format(wireDateLayout),
		BillingPeriodEnd:   req.PeriodEnd.Format(wireDateLayout),
		Frequency:          string(req.Frequency),
	}
}

type chargeRequestDTO struct {
	RideID      string          `json:"rideId"`
	AccountID   string          `json:"accountId"`
	FareAmount  decimal.Decimal `json:"fareAmount"`
	ServiceDate string          `json:"serviceDate"`
	Description string          `json:"description"`
}

type chargeResponseDTO struct {
	TransactionID string          `json:"transactionId"`
	AccountID     string          `json:"accountId"`
	RideID        string          `json:"rideId"`
	FareAmount    decimal.Decimal `json:"fareAmount"`
	RecordedAt    time.Time       `json:"recordedAt"`
}

func (dto *chargeResponseDTO) toResponse() *billing.ChargeResponse {
	return &billing.ChargeResponse{
		TransactionID: dto.TransactionID,
		AccountID:     dto.AccountID,
		RideID:        dto.RideID,
		FareAmount:    dto.FareAmount,
		RecordedAt:    dto.RecordedAt,
	}
}

type paymentRequestDTO struct {
	AccountID          string          `json:"accountId"`
	PaymentReferenceID string          `json:"paymentReferenceId"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        string          `json:"paymentDate"`
	PaymentMode        string          `json:"paymentMode"`
	Notes              string          `json:"notes,omitempty"`
}

type paymentResponseDTO struct {
	TransactionID      string          `json:"transactionId"`
	AccountID          string          `json:"accountId"`
	PaymentReferenceID string          `json:"paymentReferenceId"`
	Amount             decimal.Decimal `json:"amount"`
	RecordedAt         time.Time       `json:"recordedAt"`
}

func (dto *paymentResponseDTO) toResponse() *billing.PaymentResponse {
	return &billing.PaymentResponse{
		TransactionID:      dto.TransactionID,
		AccountID:          dto.AccountID,
		PaymentReferenceID: dto.PaymentReferenceID,
		Amount:             dto.Amount,
		RecordedAt:         dto.RecordedAt,
	}
}
