package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/ledger"
	"github.com/jainarula-tz/rideledger/internal/logging"
)

// SearchAccountsInput is the Huma input for searching accounts.
type SearchAccountsInput struct {
	Query string `query:"q" doc:"Name fragment to match, empty returns all accounts"`
}

// SearchAccountsResponseBody is the response body for searching accounts.
type SearchAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"Matching accounts"`
}

// SearchAccountsOutput is the Huma output for searching accounts.
type SearchAccountsOutput struct {
	Body SearchAccountsResponseBody
}

// accountSearcher is the interface for searching accounts.
type accountSearcher interface {
	SearchAccounts(ctx context.Context, query string) ([]ledger.Account, error)
}

// SearchAccountsHandler handles GET /v1/accounts.
type SearchAccountsHandler struct {
	AccountService accountSearcher
}

// NewSearchAccountsHandler creates a new SearchAccountsHandler.
func NewSearchAccountsHandler(svc accountSearcher) *SearchAccountsHandler {
	return &SearchAccountsHandler{AccountService: svc}
}

// Register registers the search accounts endpoint with the Huma API.
func (h *SearchAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "Search accounts",
		Description: "Returns accounts whose name matches the query.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *SearchAccountsHandler) handle(ctx context.Context, input *SearchAccountsInput) (*SearchAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	accounts, err := h.AccountService.SearchAccounts(ctx, input.Query)
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to search accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := SearchAccountsResponseBody{Accounts: make([]Account, len(accounts))}
	for i, account := range accounts {
		resp.Accounts[i] = toAPIAccount(account)
	}

	return &SearchAccountsOutput{Body: resp}, nil
}
