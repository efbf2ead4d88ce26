package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/ledger"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	AccountID string `path:"accountID" doc:"Account identifier"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching one account.
type accountGetter interface {
	GetAccount(ctx context.Context, accountID string) (*ledger.Account, error)
}

// GetAccountHandler handles GET /v1/accounts/{accountID}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{accountID}",
		Summary:     "Get account",
		Description: "Returns one billable account with its current balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	account, err := h.AccountService.GetAccount(ctx, input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to fetch account", err)
	}
	if account == nil {
		return nil, huma.NewError(http.StatusNotFound, "account not found")
	}

	return &GetAccountOutput{Body: toAPIAccount(*account)}, nil
}
