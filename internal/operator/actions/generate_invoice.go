package actions

import (
	"context"
	"time"

	"github.com/jainarula-tz/rideledger/internal/events"
	"github.com/jainarula-tz/rideledger/internal/invoice"
)

// GenerateInvoice runs a generation request through the invoice aggregator:
// period and frequency validation happen before the backend is called, and
// a validation failure surfaces without touching the provider.
type GenerateInvoice struct {
	Request  invoice.GenerateRequest
	Response *invoice.Invoice

	// MarkCleanOnSuccess is the in-progress form, released when the backend
	// accepts the request. Nil for non-interactive callers.
	MarkCleanOnSuccess interface{ MarkClean() }

	// Now overrides the validation clock. Nil means time.Now.
	Now func() time.Time

	IAction
}

func (a *GenerateInvoice) Perform(ctx context.Context, clients *Clients) error {
	now := a.Now
	if now == nil {
		now = time.Now
	}
	aggregator := invoice.NewAggregatorAt(clients.Invoices, now)

	generated, err := aggregator.Generate(ctx, a.Request, a.MarkCleanOnSuccess)
	if err != nil {
		return err
	}

	a.Response = generated

	err = clients.Events.Publish(events.TopicInvoiceGenerated, events.InvoiceGenerated{
		InvoiceNumber:      generated.InvoiceNumber,
		AccountID:          generated.AccountID,
		BillingPeriodStart: generated.BillingPeriodStart.Format("2006-01-02"),
		BillingPeriodEnd:   generated.BillingPeriodEnd.Format("2006-01-02"),
		Subtotal:           generated.Subtotal,
		OutstandingBalance: generated.OutstandingBalance(),
		OccurredAt:         time.Now().UTC(),
	})
	if err != nil {
		clients.Logger.WithError(err).Warn("GenerateInvoice.publish audit event")
	}

	return nil
}
