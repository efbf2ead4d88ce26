package operator

import (
	"context"

	"github.com/jainarula-tz/rideledger/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	clients *actions.Clients
	queue   chan ActionItem
}

func NewOperator(clients *actions.Clients, queue chan ActionItem) *Operator {
	return &Operator{
		clients: clients,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.clients)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
