package actions

import (
	"context"
	"time"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/events"
)

// RecordCharge submits one ride charge to the billing backend. On success
// the originating form is released and an audit event is emitted; on failure
// the form keeps its entered values so the user can retry.
type RecordCharge struct {
	Request  billing.ChargeRequest
	Form     *billing.ChargeForm
	Response *billing.ChargeResponse

	IAction
}

func (a *RecordCharge) Perform(ctx context.Context, clients *Clients) error {
	response, err := clients.Billing.RecordCharge(ctx, a.Request)
	if err != nil {
		return err
	}

	a.Response = response
	if a.Form != nil {
		a.Form.MarkClean()
	}

	err = clients.Events.Publish(events.TopicChargeRecorded, events.ChargeRecorded{
		TransactionID: response.TransactionID,
		AccountID:     response.AccountID,
		RideID:        response.RideID,
		FareAmount:    response.FareAmount,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		clients.Logger.WithError(err).Warn("RecordCharge.publish audit event")
	}

	return nil
}
