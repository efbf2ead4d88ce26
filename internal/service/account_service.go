package service

import (
	"context"

	"github.com/jainarula-tz/rideledger/internal/ledger"
	"github.com/jainarula-tz/rideledger/internal/provider"
)

// AccountService handles account and ledger reads.
type AccountService struct {
	provider        provider.Accounts
	defaultPageSize int
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts provider.Accounts, defaultPageSize int) *AccountService {
	if defaultPageSize < 1 {
		defaultPageSize = ledger.DefaultPageSize
	}
	return &AccountService{provider: accounts, defaultPageSize: defaultPageSize}
}

// GetAccount fetches one account from the provider.
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*ledger.Account, error) {
	return s.provider.FetchAccount(ctx, accountID)
}

// SearchAccounts fetches the accounts matching the query.
func (s *AccountService) SearchAccounts(ctx context.Context, query string) ([]ledger.Account, error) {
	accounts, err := s.provider.SearchAccounts(ctx, query)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []ledger.Account{}
	}
	return accounts, nil
}

// GetLedgerView fetches the account and its full transaction snapshot, then
// derives the requested view through the view engine: filter first, then
// page. A requested page outside the filtered range leaves the view on page
// 1, mirroring the engine's no-op rule.
func (s *AccountService) GetLedgerView(ctx context.Context, accountID string, query LedgerQuery) (*LedgerView, error) {
	account, err := s.provider.FetchAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	view := ledger.NewViewEngine(pageSize)

	token := view.BeginFetch()
	entries, err := s.provider.FetchTransactions(ctx, accountID)
	if err != nil {
		view.AbortFetch(token)
		return nil, err
	}
	view.ApplyEntries(token, entries)

	view.SetFilter(query.Filter)
	if query.Page > 1 {
		view.GoToPage(query.Page)
	}

	return &LedgerView{
		Account:       *account,
		Entries:       view.Displayed(),
		FilteredCount: view.FilteredCount(),
		CurrentPage:   view.CurrentPage(),
		TotalPages:    view.TotalPages(),
		PageSize:      view.PageSize(),
		StartRecord:   view.StartRecord(),
		EndRecord:     view.EndRecord(),
	}, nil
}
