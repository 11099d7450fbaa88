// Package backend talks to the remote accounts and marketplace services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spicegate/internal/marketerrors"
	model "spicegate/internal/models"
	"spicegate/internal/session"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("spicegate/internal/backend")

// StatusError is returned for non-2xx responses from a backend service
type StatusError struct {
	Service string
	Method  string
	Path    string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s %s: status %d", e.Service, e.Method, e.Path, e.Code)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap lets callers match ErrUpstream, and ErrNotFound for 404 responses
func (e *StatusError) Unwrap() []error {
	if e.Code == http.StatusNotFound {
		return []error{marketerrors.ErrUpstream, marketerrors.ErrNotFound}
	}
	return []error{marketerrors.ErrUpstream}
}

// Options configures a Client
type Options struct {
	AccountsURL    string
	MarketplaceURL string
	Timeout        time.Duration
	// ServiceToken is used when the request context carries no session,
	// e.g. for background dashboard refreshes.
	ServiceToken string
	// Transport overrides the base round tripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client implements MarketplaceAPI over HTTP/JSON
type Client struct {
	accounts     *url.URL
	marketplace  *url.URL
	serviceToken string
	http         *http.Client
	failures     metric.Int64Counter
}

var _ MarketplaceAPI = (*Client)(nil)

// NewClient validates the service URLs and builds an instrumented client
func NewClient(opts Options) (*Client, error) {
	accounts, err := parseBase(opts.AccountsURL)
	if err != nil {
		return nil, fmt.Errorf("backend: accounts url: %w", err)
	}
	marketplace, err := parseBase(opts.MarketplaceURL)
	if err != nil {
		return nil, fmt.Errorf("backend: marketplace url: %w", err)
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	failures, err := meter.Int64Counter("spicegate.upstream.failures",
		metric.WithDescription("Backend calls that failed or returned a non-2xx status"))
	if err != nil {
		return nil, fmt.Errorf("backend: create failure counter: %w", err)
	}

	return &Client{
		accounts:     accounts,
		marketplace:  marketplace,
		serviceToken: opts.ServiceToken,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(base),
		},
		failures: failures,
	}, nil
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}

// Ping issues GET /healthz against the named service ("accounts" or "marketplace")
func (c *Client) Ping(ctx context.Context, service string) error {
	base := c.marketplace
	if service == "accounts" {
		base = c.accounts
	}
	return c.do(ctx, service, base, http.MethodGet, "/healthz", nil, nil)
}

// ListFarmers returns every farmer account
func (c *Client) ListFarmers(ctx context.Context) ([]model.Account, error) {
	var out []model.Account
	if err := c.do(ctx, "accounts", c.accounts, http.MethodGet, "/farmers", nil, &out); err != nil {
		return nil, err
	}
	return withRole(out, model.RoleFarmer), nil
}

// ListBuyers returns every buyer account
func (c *Client) ListBuyers(ctx context.Context) ([]model.Account, error) {
	var out []model.Account
	if err := c.do(ctx, "accounts", c.accounts, http.MethodGet, "/buyers", nil, &out); err != nil {
		return nil, err
	}
	return withRole(out, model.RoleBuyer), nil
}

func withRole(accounts []model.Account, role model.Role) []model.Account {
	for i := range accounts {
		accounts[i].Role = role
	}
	return accounts
}

// ListInventory returns every inventory item
func (c *Client) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/inventory", nil, &out)
	return out, err
}

// GetInventoryItem returns one inventory item
func (c *Client) GetInventoryItem(ctx context.Context, inventoryID string) (model.InventoryItem, error) {
	var out model.InventoryItem
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/inventory/"+url.PathEscape(inventoryID), nil, &out)
	return out, err
}

// ListBidsForInventory returns all bids against an inventory item in receipt order
func (c *Client) ListBidsForInventory(ctx context.Context, inventoryID string) ([]model.Bid, error) {
	var out []model.Bid
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/inventory/"+url.PathEscape(inventoryID)+"/bids", nil, &out)
	return out, err
}

// ListAuctions returns every auction
func (c *Client) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	var out []model.Auction
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/auctions", nil, &out)
	return out, err
}

// GetAuction returns one auction
func (c *Client) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var out model.Auction
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/auctions/"+url.PathEscape(auctionID), nil, &out)
	return out, err
}

// CreateAuction posts a new auction and returns the stored record
func (c *Client) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	var out model.Auction
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodPost, "/auctions", auction, &out)
	return out, err
}

// UpdateAuction replaces an auction and returns the stored record
func (c *Client) UpdateAuction(ctx context.Context, auctionID string, auction model.Auction) (model.Auction, error) {
	var out model.Auction
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodPut, "/auctions/"+url.PathEscape(auctionID), auction, &out)
	return out, err
}

// DeleteAuction removes an auction
func (c *Client) DeleteAuction(ctx context.Context, auctionID string) error {
	return c.do(ctx, "marketplace", c.marketplace, http.MethodDelete, "/auctions/"+url.PathEscape(auctionID), nil, nil)
}

type statusPatch struct {
	Status *model.AuctionStatus `json:"status"`
}

// SetAuctionStatus patches the manual status; nil clears it
func (c *Client) SetAuctionStatus(ctx context.Context, auctionID string, status *model.AuctionStatus) error {
	return c.do(ctx, "marketplace", c.marketplace, http.MethodPatch, "/auctions/"+url.PathEscape(auctionID), statusPatch{Status: status}, nil)
}

// ListJoinRecords returns the farmers' registrations into an auction
func (c *Client) ListJoinRecords(ctx context.Context, auctionID string) ([]model.JoinRecord, error) {
	var out []model.JoinRecord
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/auctions/"+url.PathEscape(auctionID)+"/joins", nil, &out)
	return out, err
}

// ListPayments returns every settled payment
func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	var out []model.Payment
	err := c.do(ctx, "marketplace", c.marketplace, http.MethodGet, "/payments", nil, &out)
	return out, err
}

const maxErrorBody = 512

func (c *Client) do(ctx context.Context, service string, base *url.URL, method, path string, in, out any) (err error) {
	defer func() {
		if err != nil {
			c.failures.Add(ctx, 1, metric.WithAttributes(
				attribute.String("service", service),
				attribute.String("method", method),
			))
		}
	}()

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String()+path, body)
	if err != nil {
		return fmt.Errorf("backend: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s %s: %w: %w", service, method, path, marketerrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("backend: %w", &StatusError{
			Service: service,
			Method:  method,
			Path:    path,
			Code:    resp.StatusCode,
			Body:    strings.TrimSpace(string(snippet)),
		})
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s %s %s: %w: %w", service, method, path, marketerrors.ErrUpstream, err)
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if s, ok := session.FromContext(ctx); ok && s.Token != "" {
		return s.Token
	}
	return c.serviceToken
}
