package actions

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jainarula-tz/rideledger/internal/events"
	"github.com/jainarula-tz/rideledger/internal/provider"
)

// Clients bundles the outbound dependencies an action performs against.
type Clients struct {
	Billing  provider.Billing
	Invoices provider.Invoices
	Events   events.Publisher
	Logger   *logrus.Logger
}

type IAction interface {
	Perform(ctx context.Context, clients *Clients) error
}
