package actions

import (
	"context"
	"time"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/events"
)

// RecordPayment submits one payment to the billing backend.
type RecordPayment struct {
	Request  billing.PaymentRequest
	Form     *billing.PaymentForm
	Response *billing.PaymentResponse

	IAction
}

func (a *RecordPayment) Perform(ctx context.Context, clients *Clients) error {
	response, err := clients.Billing.RecordPayment(ctx, a.Request)
	if err != nil {
		return err
	}

	a.Response = response
	if a.Form != nil {
		a.Form.MarkClean()
	}

	err = clients.Events.Publish(events.TopicPaymentRecorded, events.PaymentRecorded{
		TransactionID:      response.TransactionID,
		AccountID:          response.AccountID,
		PaymentReferenceID: response.PaymentReferenceID,
		Amount:             response.Amount,
		PaymentMode:        string(a.Request.PaymentMode),
		OccurredAt:         time.Now().UTC(),
	})
	if err != nil {
		clients.Logger.WithError(err).Warn("RecordPayment.publish audit event")
	}

	return nil
}
