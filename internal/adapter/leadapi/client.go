// Package leadapi is the HTTP client for the remote lead REST API.
package leadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/leadflow/internal/config"
	"github.com/heartmarshall/leadflow/internal/domain"
	"github.com/heartmarshall/leadflow/pkg/ctxutil"
)

const (
	requestIDHeader = "X-Request-Id"
	maxBodyBytes    = 4 << 20
)

// Client calls the lead API. Calls are independent: nothing is cancelled or
// reordered on the caller's behalf.
type Client struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for cfg.BaseURL. When cfg.SessionCookie is set
// it is installed in the client's cookie jar and sent with every request.
func NewClient(cfg config.GatewayConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("leadapi: parse base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("leadapi: cookie jar: %w", err)
	}
	if cfg.SessionCookie != "" {
		jar.SetCookies(base, []*http.Cookie{{
			Name:  cfg.SessionCookieName,
			Value: cfg.SessionCookie,
			Path:  "/",
		}})
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := cfg.PageLimit
	if limit <= 0 {
		limit = 10
	}

	return &Client{
		baseURL:    base.String(),
		pageLimit:  limit,
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
		log:        logger.With("adapter", "leadapi"),
	}, nil
}

// FetchPage fetches one page of the lead listing.
func (c *Client) FetchPage(ctx context.Context, page int) (domain.PageResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(c.pageLimit))

	var resp PageResponse
	if err := c.do(ctx, http.MethodGet, "/leads/getleads", q, nil, &resp); err != nil {
		return domain.PageResult{}, err
	}
	if !resp.Success {
		return domain.PageResult{}, c.fail(ctx, "getleads", malformed("success is false"))
	}

	leads, err := decodeLeads(resp.Data)
	if err != nil {
		return domain.PageResult{}, c.fail(ctx, "getleads", malformed("%v", err))
	}
	result := domain.PageResult{Leads: leads, Page: resp.Page, TotalPages: resp.TotalPages}
	if err := result.Validate(); err != nil {
		return domain.PageResult{}, c.fail(ctx, "getleads", malformed("%v", err))
	}
	return result, nil
}

// Search returns the leads matching term across all pages.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Lead, error) {
	q := url.Values{}
	q.Set("q", term)

	var resp SearchResponse
	if err := c.do(ctx, http.MethodGet, "/leads/search", q, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, c.fail(ctx, "search", malformed("success is false"))
	}

	leads, err := decodeLeads(resp.Leads)
	if err != nil {
		return nil, c.fail(ctx, "search", malformed("%v", err))
	}
	return leads, nil
}

// Create adds a lead and returns it with its server-assigned id and
// creation time.
func (c *Client) Create(ctx context.Context, fields domain.LeadFields) (domain.Lead, error) {
	var resp LeadResponse
	if err := c.do(ctx, http.MethodPost, "/leads/addlead", nil, EncodeFields(fields), &resp); err != nil {
		return domain.Lead{}, err
	}
	return c.decodeLeadResponse(ctx, "addlead", resp)
}

// Update replaces the lead stored under id and returns the server's copy.
func (c *Client) Update(ctx context.Context, id string, lead domain.Lead) (domain.Lead, error) {
	lead.ID = id
	var resp LeadResponse
	path := "/leads/editlead/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, EncodeLead(lead), &resp); err != nil {
		return domain.Lead{}, err
	}
	return c.decodeLeadResponse(ctx, "editlead", resp)
}

// Delete removes the lead stored under id.
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp AckResponse
	path := "/leads/deletelead/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return err
	}
	if resp.Success != nil && !*resp.Success {
		return c.fail(ctx, "deletelead", malformed("success is false"))
	}
	return nil
}

func (c *Client) decodeLeadResponse(ctx context.Context, op string, resp LeadResponse) (domain.Lead, error) {
	if !resp.Success {
		return domain.Lead{}, c.fail(ctx, op, malformed("success is false"))
	}
	if resp.Lead == nil {
		return domain.Lead{}, c.fail(ctx, op, malformed("missing lead"))
	}
	lead, err := DecodeLead(*resp.Lead)
	if err != nil {
		return domain.Lead{}, c.fail(ctx, op, malformed("%v", err))
	}
	return lead, nil
}

func (c *Client) fail(ctx context.Context, op string, err error) error {
	c.log.ErrorContext(ctx, "leadapi bad response", slog.String("op", op), slog.String("error", err.Error()))
	return fmt.Errorf("leadapi: %s: %w", op, err)
}

// do sends one request and decodes a 2xx JSON body into out. An empty 2xx
// body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, reqID := ctxutil.EnsureRequestID(ctx)

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("leadapi: encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("leadapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.DebugContext(ctx, "leadapi request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", reqID),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("leadapi: %s %s: %w", method, path, ctxErr)
		}
		c.log.ErrorContext(ctx, "leadapi request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("leadapi: %s %s: %w: %w", method, path, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("leadapi: %s %s: read body: %w: %w", method, path, domain.ErrNetwork, err)
	}

	c.log.DebugContext(ctx, "leadapi response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serr := statusError(resp.StatusCode, data)
		level := slog.LevelWarn
		if errors.Is(serr, domain.ErrServer) {
			level = slog.LevelError
		}
		c.log.Log(ctx, level, "leadapi unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("leadapi: %s %s: %w", method, path, serr)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("leadapi: %s %s: %w", method, path, malformed("decode json: %v", err))
	}
	return nil
}
