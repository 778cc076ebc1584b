package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-console-api/pkg/config"
)

// Resource names a collection exposed by the upstream API. Org addresses the
// composite endpoints (dashboard-summary, search) that live at the API root.
type Resource string

const (
	Courses       Resource = "courses"
	Instructors   Resource = "instructors"
	Students      Resource = "students"
	Registrations Resource = "registrations"
	Org           Resource = "org"
)

// Params carries optional query parameters for a fetch.
type Params map[string]string

// Observer receives upstream request telemetry.
type Observer interface {
	ObserveUpstreamRequest(resource, method string, status int, duration time.Duration)
}

// Client performs all transport against the upstream REST API. It is
// stateless apart from its connection pool and safe for concurrent use.
type Client struct {
	rest      *resty.Client
	endpoints map[Resource]string
	logger    *zap.Logger
	observer  Observer
}

// NewClient builds a Client from upstream configuration. A nil observer
// disables telemetry.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger, observer Observer) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	rest := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		rest: rest,
		endpoints: map[Resource]string{
			Courses:       base + "/courses",
			Instructors:   base + "/instructors",
			Students:      base + "/students",
			Registrations: base + "/registrations",
			Org:           base,
		},
		logger:   logger,
		observer: observer,
	}
}

func (c *Client) url(resource Resource, path string) (string, error) {
	endpoint, ok := c.endpoints[resource]
	if !ok {
		return "", fmt.Errorf("unknown upstream resource %q", resource)
	}
	return endpoint + path, nil
}

// page is the upstream pagination envelope for list endpoints that do not
// return a bare array.
type page[T any] struct {
	Results []T    `json:"results"`
	Next    string `json:"next"`
}

// FetchCollection performs a logical collection fetch, transparently
// following pagination links until exhausted. The result is the complete,
// order-preserving concatenation of every page. Any non-success status
// aborts the whole fetch; pages accumulated so far are discarded.
func FetchCollection[T any](ctx context.Context, c *Client, resource Resource, path string, params Params) ([]T, error) {
	url, err := c.url(resource, path)
	if err != nil {
		return nil, err
	}

	var out []T
	query := params
	for url != "" {
		body, err := c.get(ctx, resource, url, query)
		if err != nil {
			return nil, err
		}
		// Continuation links embed their own query string.
		query = nil

		trimmed := bytes.TrimSpace(body)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var items []T
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, fmt.Errorf("decode %s collection: %w", resource, err)
			}
			return append(out, items...), nil
		}

		var p page[T]
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, fmt.Errorf("decode %s page: %w", resource, err)
		}
		out = append(out, p.Results...)
		url = p.Next
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// FetchSingle retrieves one resource with a single GET. A 404 surfaces as a
// *StatusError, never as a zero value; callers wanting maybe-absent
// semantics translate explicitly.
func FetchSingle[T any](ctx context.Context, c *Client, resource Resource, path string, params Params) (T, error) {
	var zero T
	url, err := c.url(resource, path)
	if err != nil {
		return zero, err
	}
	body, err := c.get(ctx, resource, url, params)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, fmt.Errorf("decode %s resource: %w", resource, err)
	}
	return out, nil
}

// Mutate performs a single create, update, or delete. DELETE and 204
// responses return the zero value without touching the body. Exactly one
// attempt is made per call; retry policy belongs to the caller.
func Mutate[T any](ctx context.Context, c *Client, resource Resource, path, method string, payload any) (T, error) {
	var zero T
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return zero, fmt.Errorf("unsupported mutation method %q", method)
	}

	url, err := c.url(resource, path)
	if err != nil {
		return zero, err
	}

	req := c.rest.R().SetContext(ctx)
	if payload != nil && method != http.MethodDelete {
		req.SetBody(payload)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	c.observe(resource, method, resp, start)
	if err != nil {
		return zero, fmt.Errorf("upstream %s %s: %w", method, url, err)
	}
	if resp.IsError() {
		return zero, c.statusError(resource, method, url, resp)
	}

	if method == http.MethodDelete || resp.StatusCode() == http.StatusNoContent {
		return zero, nil
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return zero, nil
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, fmt.Errorf("decode %s mutation response: %w", resource, err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, resource Resource, url string, params Params) ([]byte, error) {
	req := c.rest.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	start := time.Now()
	resp, err := req.Get(url)
	c.observe(resource, http.MethodGet, resp, start)
	if err != nil {
		return nil, fmt.Errorf("upstream GET %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, c.statusError(resource, http.MethodGet, url, resp)
	}
	return resp.Body(), nil
}

func (c *Client) statusError(resource Resource, method, url string, resp *resty.Response) error {
	err := &StatusError{
		StatusCode: resp.StatusCode(),
		Status:     http.StatusText(resp.StatusCode()),
		Body:       strings.TrimSpace(string(resp.Body())),
	}
	c.logger.Warn("upstream_error",
		zap.String("resource", string(resource)),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", err.StatusCode),
	)
	return err
}

func (c *Client) observe(resource Resource, method string, resp *resty.Response, start time.Time) {
	if c.observer == nil {
		return
	}
	status := 0
	if resp != nil && resp.RawResponse != nil {
		status = resp.StatusCode()
	}
	c.observer.ObserveUpstreamRequest(string(resource), method, status, time.Since(start))
}
