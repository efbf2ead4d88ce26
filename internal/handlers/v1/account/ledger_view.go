package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jainarula-tz/rideledger/internal/ledger"
	"github.com/jainarula-tz/rideledger/internal/logging"
	"github.com/jainarula-tz/rideledger/internal/service"
)

// LedgerViewInput is the Huma input for the ledger view. Filter and page
// selections arrive as query parameters; absent parameters leave the view
// unfiltered on its first page.
type LedgerViewInput struct {
	AccountID string `path:"accountID" doc:"Account identifier"`
	StartDate string `query:"startDate" doc:"Inclusive lower date bound, YYYY-MM-DD"`
	EndDate   string `query:"endDate" doc:"Inclusive upper date bound, YYYY-MM-DD"`
	Kind      string `query:"kind" doc:"Charge, Payment, or all"`
	Page      int    `query:"page" minimum:"0" doc:"Page to display, 1-based"`
	PageSize  int    `query:"pageSize" minimum:"0" maximum:"100" doc:"Entries per page, defaults to the service page size"`
}

// LedgerViewResponseBody is the response body for the ledger view.
type LedgerViewResponseBody struct {
	Account       Account       `json:"account" doc:"The account the ledger belongs to"`
	Entries       []LedgerEntry `json:"entries" doc:"Displayed page of ledger entries"`
	FilteredCount int           `json:"filteredCount" doc:"Entries matching the filter across all pages"`
	Page          int           `json:"page" doc:"Current page, 1-based"`
	TotalPages    int           `json:"totalPages" doc:"Total pages for the filtered entries, at least 1"`
	PageSize      int           `json:"pageSize" doc:"Entries per page"`
	StartRecord   int           `json:"startRecord" doc:"Ordinal of the first displayed entry, 0 when empty"`
	EndRecord     int           `json:"endRecord" doc:"Ordinal of the last displayed entry, 0 when empty"`
}

// LedgerViewOutput is the Huma output for the ledger view.
type LedgerViewOutput struct {
	Body LedgerViewResponseBody
}

// ledgerViewer is the interface for materializing a ledger view.
type ledgerViewer interface {
	GetLedgerView(ctx context.Context, accountID string, query service.LedgerQuery) (*service.LedgerView, error)
}

// LedgerViewHandler handles GET /v1/accounts/{accountID}/ledger.
type LedgerViewHandler struct {
	AccountService ledgerViewer
}

// NewLedgerViewHandler creates a new LedgerViewHandler.
func NewLedgerViewHandler(svc ledgerViewer) *LedgerViewHandler {
	return &LedgerViewHandler{AccountService: svc}
}

// Register registers the ledger view endpoint with the Huma API.
func (h *LedgerViewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ledger-view",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{accountID}/ledger",
		Summary:     "Get ledger view",
		Description: "Returns one page of an account's ledger with filter and pagination metadata.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

// parseLedgerViewInput parses the filter and page selections. Date bounds
// and kind are validated here so a bad query never reaches the provider.
func parseLedgerViewInput(input *LedgerViewInput) (service.LedgerQuery, error) {
	startDate, err := parseOptionalDate(input.StartDate)
	if err != nil {
		return service.LedgerQuery{}, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}
	endDate, err := parseOptionalDate(input.EndDate)
	if err != nil {
		return service.LedgerQuery{}, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
	}

	kind, err := ledger.ParseEntryKind(input.Kind)
	if err != nil {
		return service.LedgerQuery{}, huma.NewError(http.StatusBadRequest, "invalid kind", err)
	}

	return service.LedgerQuery{
		Filter: ledger.Filter{
			StartDate: startDate,
			EndDate:   endDate,
			Kind:      kind,
		},
		Page:     input.Page,
		PageSize: input.PageSize,
	}, nil
}

func (h *LedgerViewHandler) handle(ctx context.Context, input *LedgerViewInput) (*LedgerViewOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseLedgerViewInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("ledgerViewMs")
	}
	view, err := h.AccountService.GetLedgerView(ctx, input.AccountID, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "failed to build ledger view", err)
	}

	if logData != nil {
		logData.AddData("filteredCount", view.FilteredCount)
	}

	resp := LedgerViewResponseBody{
		Account:       toAPIAccount(view.Account),
		Entries:       make([]LedgerEntry, len(view.Entries)),
		FilteredCount: view.FilteredCount,
		Page:          view.CurrentPage,
		TotalPages:    view.TotalPages,
		PageSize:      view.PageSize,
		StartRecord:   view.StartRecord,
		EndRecord:     view.EndRecord,
	}
	for i, entry := range view.Entries {
		resp.Entries[i] = toAPIEntry(entry)
	}

	return &LedgerViewOutput{Body: resp}, nil
}
