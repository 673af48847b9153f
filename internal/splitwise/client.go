// Package splitwise implements the shared-expense gateway against the
// Splitwise REST API (v3.0). Responses are normalized into the domain
// shapes before they leave this package; remote failures are wrapped in
// apperrors.ErrUpstream with the service's own message preserved.
package splitwise

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/expensemcp/expense_mcp_app/internal/apperrors"
	"github.com/expensemcp/expense_mcp_app/internal/core/domain"
	"github.com/expensemcp/expense_mcp_app/internal/core/ports/gateways"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://secure.splitwise.com/api/v3.0"
	defaultTimeout = 15 * time.Second
)

// Client talks to the Splitwise API over HTTP with bearer-token auth.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ gateways.SplitwiseGateway = (*Client)(nil)

// Option configures optional parameters for the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client, bypassing the
// token-injecting transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Splitwise API client authenticating with the given
// API key.
func NewClient(apiKey string, opts ...Option) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = defaultTimeout

	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCurrentUser returns the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (*domain.SplitwiseUser, error) {
	var envelope struct {
		User wireUser `json:"user"`
	}
	if err := c.get(ctx, "/get_current_user", nil, &envelope); err != nil {
		return nil, err
	}
	user := userFromWire(envelope.User)
	return &user, nil
}

// GetFriends returns the user's friends with their outstanding balances.
func (c *Client) GetFriends(ctx context.Context) ([]domain.Friend, error) {
	var envelope struct {
		Friends []wireFriend `json:"friends"`
	}
	if err := c.get(ctx, "/get_friends", nil, &envelope); err != nil {
		return nil, err
	}
	friends := make([]domain.Friend, 0, len(envelope.Friends))
	for _, wf := range envelope.Friends {
		friend, err := friendFromWire(wf)
		if err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

// GetGroups returns the user's groups.
func (c *Client) GetGroups(ctx context.Context) ([]domain.SharedGroup, error) {
	var envelope struct {
		Groups []wireGroup `json:"groups"`
	}
	if err := c.get(ctx, "/get_groups", nil, &envelope); err != nil {
		return nil, err
	}
	groups := make([]domain.SharedGroup, 0, len(envelope.Groups))
	for _, wg := range envelope.Groups {
		groups = append(groups, groupFromWire(wg))
	}
	return groups, nil
}

// GetExpenses lists expenses matching the filter. Expenses the service has
// soft-deleted are dropped.
func (c *Client) GetExpenses(ctx context.Context, filter gateways.ExpenseFilter) ([]domain.SharedExpense, error) {
	query := url.Values{}
	if filter.GroupID != 0 {
		query.Set("group_id", strconv.FormatInt(filter.GroupID, 10))
	}
	if filter.FriendID != 0 {
		query.Set("friend_id", strconv.FormatInt(filter.FriendID, 10))
	}
	if filter.DatedAfter != "" {
		query.Set("dated_after", filter.DatedAfter)
	}
	if filter.DatedBefore != "" {
		query.Set("dated_before", filter.DatedBefore)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var envelope struct {
		Expenses []wireExpense `json:"expenses"`
	}
	if err := c.get(ctx, "/get_expenses", query, &envelope); err != nil {
		return nil, err
	}
	expenses := make([]domain.SharedExpense, 0, len(envelope.Expenses))
	for _, we := range envelope.Expenses {
		expense, err := expenseFromWire(we)
		if err != nil {
			return nil, err
		}
		if expense.Deleted {
			continue
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// GetExpense fetches a single expense by id.
func (c *Client) GetExpense(ctx context.Context, expenseID int64) (*domain.SharedExpense, error) {
	var envelope struct {
		Expense wireExpense `json:"expense"`
	}
	path := "/get_expense/" + strconv.FormatInt(expenseID, 10)
	if err := c.get(ctx, path, nil, &envelope); err != nil {
		return nil, err
	}
	expense, err := expenseFromWire(envelope.Expense)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// CreateExpense creates an expense with explicit per-user allocations.
func (c *Client) CreateExpense(ctx context.Context, payload gateways.CreateExpensePayload) (*domain.SharedExpense, error) {
	return c.writeExpense(ctx, "/create_expense", payload)
}

// UpdateExpense overwrites an existing expense. The service requires the
// full allocation set again, not a delta.
func (c *Client) UpdateExpense(ctx context.Context, expenseID int64, payload gateways.CreateExpensePayload) (*domain.SharedExpense, error) {
	return c.writeExpense(ctx, "/update_expense/"+strconv.FormatInt(expenseID, 10), payload)
}

func (c *Client) writeExpense(ctx context.Context, path string, payload gateways.CreateExpensePayload) (*domain.SharedExpense, error) {
	form := url.Values{}
	form.Set("cost", payload.Cost.StringFixed(2))
	form.Set("description", payload.Description)
	if payload.CurrencyCode != "" {
		form.Set("currency_code", payload.CurrencyCode)
	}
	if payload.GroupID != 0 {
		form.Set("group_id", strconv.FormatInt(payload.GroupID, 10))
	}
	if payload.Date != "" {
		form.Set("date", payload.Date)
	}
	for i, alloc := range payload.Allocations {
		prefix := "users__" + strconv.Itoa(i) + "__"
		form.Set(prefix+"user_id", strconv.FormatInt(alloc.ParticipantID, 10))
		form.Set(prefix+"paid_share", alloc.PaidShare.StringFixed(2))
		form.Set(prefix+"owed_share", alloc.OwedShare.StringFixed(2))
	}

	var envelope struct {
		Expenses []wireExpense `json:"expenses"`
	}
	if err := c.post(ctx, path, form, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Expenses) == 0 {
		return nil, fmt.Errorf("%w: expense write returned no expense", apperrors.ErrUpstream)
	}
	expense, err := expenseFromWire(envelope.Expenses[0])
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense soft-deletes an expense.
func (c *Client) DeleteExpense(ctx context.Context, expenseID int64) error {
	var envelope struct {
		Success bool `json:"success"`
	}
	path := "/delete_expense/" + strconv.FormatInt(expenseID, 10)
	if err := c.post(ctx, path, url.Values{}, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return fmt.Errorf("%w: delete of expense %d was not acknowledged", apperrors.ErrUpstream, expenseID)
	}
	return nil
}

// CreateDebt records a direct settlement payment from the user to a friend.
// The service models settlements as payment-type expenses where the payer
// owes nothing.
func (c *Client) CreateDebt(ctx context.Context, payload gateways.DebtPayload) error {
	user, err := c.GetCurrentUser(ctx)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("cost", payload.Amount.StringFixed(2))
	form.Set("description", "Settlement")
	form.Set("payment", "true")
	if payload.CurrencyCode != "" {
		form.Set("currency_code", payload.CurrencyCode)
	}
	form.Set("users__0__user_id", strconv.FormatInt(user.UserID, 10))
	form.Set("users__0__paid_share", payload.Amount.StringFixed(2))
	form.Set("users__0__owed_share", "0.00")
	form.Set("users__1__user_id", strconv.FormatInt(payload.FriendID, 10))
	form.Set("users__1__paid_share", "0.00")
	form.Set("users__1__owed_share", payload.Amount.StringFixed(2))

	var envelope struct {
		Expenses []wireExpense `json:"expenses"`
	}
	return c.post(ctx, "/create_expense", form, &envelope)
}

// GetCategories returns the service's expense categories.
func (c *Client) GetCategories(ctx context.Context) ([]domain.SharedCategory, error) {
	var envelope struct {
		Categories []wireCategory `json:"categories"`
	}
	if err := c.get(ctx, "/get_categories", nil, &envelope); err != nil {
		return nil, err
	}
	categories := make([]domain.SharedCategory, 0, len(envelope.Categories))
	for _, wc := range envelope.Categories {
		categories = append(categories, domain.SharedCategory{CategoryID: wc.ID, Name: wc.Name})
	}
	return categories, nil
}

// GetCurrencies returns the currencies the service supports.
func (c *Client) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var envelope struct {
		Currencies []wireCurrency `json:"currencies"`
	}
	if err := c.get(ctx, "/get_currencies", nil, &envelope); err != nil {
		return nil, err
	}
	currencies := make([]domain.Currency, 0, len(envelope.Currencies))
	for _, wc := range envelope.Currencies {
		currencies = append(currencies, domain.Currency{Code: wc.CurrencyCode, Unit: wc.Unit})
	}
	return currencies, nil
}

// GetNotifications returns recent activity items, newest first.
func (c *Client) GetNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var envelope struct {
		Notifications []wireNotification `json:"notifications"`
	}
	if err := c.get(ctx, "/get_notifications", query, &envelope); err != nil {
		return nil, err
	}
	notifications := make([]domain.Notification, 0, len(envelope.Notifications))
	for _, wn := range envelope.Notifications {
		notifications = append(notifications, domain.Notification{
			NotificationID: wn.ID,
			Content:        wn.Content,
			CreatedAt:      wn.CreatedAt,
		})
	}
	return notifications, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", apperrors.ErrUpstream, upstreamMessage(body, resp.StatusCode))
	}
	// A 2xx body can still carry an error payload (e.g. create_expense
	// validation failures).
	if msg, failed := embeddedError(body); failed {
		return fmt.Errorf("%w: %s", apperrors.ErrUpstream, msg)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", apperrors.ErrUpstream, err)
	}
	return nil
}

// upstreamMessage extracts a human-readable message from an error response,
// falling back to the HTTP status.
func upstreamMessage(body []byte, statusCode int) string {
	if msg, ok := embeddedError(body); ok {
		return msg
	}
	return http.StatusText(statusCode)
}

// embeddedError reports whether the body carries a service-level error and
// returns its message verbatim. The service uses both a singular "error"
// string and an "errors" object keyed by field with message lists.
func embeddedError(body []byte) (string, bool) {
	var envelope struct {
		Error  string          `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false
	}
	if envelope.Error != "" {
		return envelope.Error, true
	}
	if len(envelope.Errors) == 0 {
		return "", false
	}

	var keyed map[string][]string
	if err := json.Unmarshal(envelope.Errors, &keyed); err == nil && len(keyed) > 0 {
		var messages []string
		for _, list := range keyed {
			messages = append(messages, list...)
		}
		if len(messages) > 0 {
			return strings.Join(messages, "; "), true
		}
	}
	var flat []string
	if err := json.Unmarshal(envelope.Errors, &flat); err == nil && len(flat) > 0 {
		return strings.Join(flat, "; "), true
	}
	return "", false
}
