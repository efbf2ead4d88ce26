package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/jainarula-tz/rideledger/internal/billing"
	"github.com/jainarula-tz/rideledger/internal/invoice"
	"github.com/jainarula-tz/rideledger/internal/ledger"
)

const fetchMaxRetries = 2

// Client talks to the billing backend over HTTP. It implements Accounts,
// Invoices, and Billing. Fetches are retried with exponential backoff on
// transport and 5xx failures; submissions are sent exactly once since the
// backend does not guarantee idempotency.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) FetchAccount(ctx context.Context, accountID string) (*ledger.Account, error) {
	var dto accountDTO
	if err := c.get(ctx, "accounts/"+url.PathEscape(accountID), &dto); err != nil {
		return nil, err
	}
	account := dto.toAccount()
	return &account, nil
}

func (c *Client) FetchTransactions(ctx context.Context, accountID string) ([]ledger.Entry, error) {
	var dtos []entryDTO
	if err := c.get(ctx, "accounts/"+url.PathEscape(accountID)+"/transactions", &dtos); err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, len(dtos))
	for i := range dtos {
		entry, err := dtos[i].toEntry()
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

func (c *Client) SearchAccounts(ctx context.Context, query string) ([]ledger.Account, error) {
	var dtos []accountDTO
	if err := c.get(ctx, "accounts/search?q="+url.QueryEscape(query), &dtos); err != nil {
		return nil, err
	}

	accounts := make([]ledger.Account, len(dtos))
	for i := range dtos {
		accounts[i] = dtos[i].toAccount()
	}
	return accounts, nil
}

// FetchInvoices lists invoices. A backend that has not implemented the list
// endpoint yet answers 404/501; that is substituted with an empty list and
// logged, per the documented fallback. Any other failure surfaces.
func (c *Client) FetchInvoices(ctx context.Context) ([]invoice.ListItem, error) {
	var dtos []invoiceListItemDTO
	if err := c.get(ctx, "invoices", &dtos); err != nil {
		if IsNotImplemented(err) {
			c.logger.WithError(err).Warn("ProviderClient.FetchInvoices.not implemented, substituting empty list")
			return []invoice.ListItem{}, nil
		}
		return nil, err
	}

	items := make([]invoice.ListItem, len(dtos))
	for i := range dtos {
		item, err := dtos[i].toListItem()
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func (c *Client) FetchInvoiceDetail(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	var dto invoiceDTO
	if err := c.get(ctx, "invoices/"+url.PathEscape(invoiceNumber), &dto); err != nil {
		return nil, err
	}
	return dto.toInvoice()
}

func (c *Client) GenerateInvoice(ctx context.Context, req invoice.GenerateRequest) (*invoice.Invoice, error) {
	var dto invoiceDTO
	if err := c.post(ctx, "invoices/generate", newGenerateInvoiceDTO(req), &dto); err != nil {
		return nil, err
	}
	return dto.toInvoice()
}

func (c *Client) RecordCharge(ctx context.Context, req billing.ChargeRequest) (*billing.ChargeResponse, error) {
	body := chargeRequestDTO{
		RideID:      req.RideID,
		AccountID:   req.AccountID,
		FareAmount:  req.FareAmount,
		ServiceDate: req.ServiceDate.Format(wireDateLayout),
		Description: req.Description,
	}

	var dto chargeResponseDTO
	if err := c.post(ctx, "charges", body, &dto); err != nil {
		return nil, err
	}
	return dto.toResponse(), nil
}

func (c *Client) RecordPayment(ctx context.Context, req billing.PaymentRequest) (*billing.PaymentResponse, error) {
	body := paymentRequestDTO{
		AccountID:          req.AccountID,
		PaymentReferenceID: req.PaymentReferenceID,
		Amount:             req.Amount,
		PaymentDate:        req.PaymentDate.Format(wireDateLayout),
		PaymentMode:        string(req.PaymentMode),
		Notes:              req.Notes,
	}

	var dto paymentResponseDTO
	if err := c.post(ctx, "payments", body, &dto); err != nil {
		return nil, err
	}
	return dto.toResponse(), nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	operation := func() error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}
		// Client errors will not heal on retry.
		if providerErr, ok := err.(*Error); ok && providerErr.StatusCode < 500 {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchMaxRetries), ctx)
	return backoff.Retry(operation, policy)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{
			Op:         method + " " + path,
			StatusCode: resp.StatusCode,
			Message:    string(bytes.TrimSpace(message)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("provider: %s %s: decoding response: %w", method, path, err)
	}
	return nil
}
