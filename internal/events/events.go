package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topics for the billing audit stream.
const (
	TopicChargeRecorded   = "billing.charge_recorded"
	TopicPaymentRecorded  = "billing.payment_recorded"
	TopicInvoiceGenerated = "billing.invoice_generated"
)

// Publisher emits billing audit events. Publishing is best-effort: a failed
// publish is logged by the caller and never fails the user operation.
type Publisher interface {
	Publish(topic string, event any) error
}

// ChargeRecorded is emitted after the backend acknowledges a charge.
type ChargeRecorded struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	RideID        string          `json:"ride_id"`
	FareAmount    decimal.Decimal `json:"fare_amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// PaymentRecorded is emitted after the backend acknowledges a payment.
type PaymentRecorded struct {
	TransactionID      string          `json:"transaction_id"`
	AccountID          string          `json:"account_id"`
	PaymentReferenceID string          `json:"payment_reference_id"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentMode        string          `json:"payment_mode"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

// InvoiceGenerated is emitted after the backend returns a generated invoice.
type InvoiceGenerated struct {
	InvoiceNumber      string          `json:"invoice_number"`
	AccountID          string          `json:"account_id"`
	BillingPeriodStart string          `json:"billing_period_start"`
	BillingPeriodEnd   string          `json:"billing_period_end"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

// Noop discards events. Used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(string, any) error { return nil }
