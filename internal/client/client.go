// Package client talks to the catalog REST API. It never retries and never
// caches; every call is exactly one HTTP request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"metadata-catalog/internal/config"
	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/logger"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/patch"
	"metadata-catalog/internal/session"
	"metadata-catalog/internal/types"

	"github.com/google/uuid"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mocks.go -package=mocks

// API is the subset of the catalog API used by the detail controller.
type API interface {
	GetTestSuiteByName(ctx context.Context, name string, fields []string) (*types.TestSuite, error)
	ListTestCases(ctx context.Context, params ListTestCaseParams) (*paging.List[types.TestCase], error)
	// UpdateTestSuite returns (nil, nil) when the server answers 2xx with no entity.
	UpdateTestSuite(ctx context.Context, id uuid.UUID, p patch.Patch) (*types.TestSuite, error)
}

// ListTestCaseParams are the query parameters of a test case listing.
type ListTestCaseParams struct {
	Fields      []string
	TestSuiteID *uuid.UUID
	Limit       int
	Before      string
	After       string
}

func (p ListTestCaseParams) values() url.Values {
	v := url.Values{}
	if len(p.Fields) > 0 {
		v.Set("fields", strings.Join(p.Fields, ","))
	}
	if p.TestSuiteID != nil {
		v.Set("testSuiteId", p.TestSuiteID.String())
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Before != "" {
		v.Set("before", p.Before)
	}
	if p.After != "" {
		v.Set("after", p.After)
	}
	return v
}

// Client is an HTTP implementation of API.
type Client struct {
	baseURL    string
	session    *session.Session
	httpClient *http.Client
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// New creates a client for cfg.CatalogURL acting as s.
func New(cfg *config.Config, s *session.Session) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.CatalogURL, "/"),
		session:    s,
		httpClient: &http.Client{Timeout: time.Duration(cfg.CatalogTimeoutSec) * time.Second},
	}
}

// GetTestSuiteByName fetches a test suite by its fully qualified name.
func (c *Client) GetTestSuiteByName(ctx context.Context, name string, fields []string) (*types.TestSuite, error) {
	q := url.Values{}
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var suite types.TestSuite
	found, err := c.do(ctx, request{
		op:     "get test suite",
		entity: "test suite",
		method: http.MethodGet,
		path:   "/testSuites/name/" + url.PathEscape(name),
		query:  q,
	}, &suite)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrUnexpectedResponse
	}
	return &suite, nil
}

// ListTestCases fetches one page of test cases.
func (c *Client) ListTestCases(ctx context.Context, params ListTestCaseParams) (*paging.List[types.TestCase], error) {
	var list paging.List[types.TestCase]
	found, err := c.do(ctx, request{
		op:     "list test cases",
		entity: "test suite",
		method: http.MethodGet,
		path:   "/testCases",
		query:  params.values(),
	}, &list)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrUnexpectedResponse
	}
	if list.Data == nil {
		list.Data = []types.TestCase{}
	}
	return &list, nil
}

// UpdateTestSuite sends p as a JSON patch for the suite with the given id.
func (c *Client) UpdateTestSuite(ctx context.Context, id uuid.UUID, p patch.Patch) (*types.TestSuite, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}

	var suite types.TestSuite
	found, err := c.do(ctx, request{
		op:          "update test suite",
		entity:      "test suite",
		method:      http.MethodPatch,
		path:        "/testSuites/" + id.String(),
		body:        body,
		contentType: types.JSONPatchMediaType,
	}, &suite)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &suite, nil
}

type request struct {
	op          string
	entity      string
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

// do performs r and decodes a 2xx body into out. found is false when the
// body was empty or the JSON literal null.
func (c *Client) do(ctx context.Context, r request, out any) (found bool, err error) {
	fullURL := c.baseURL + r.path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, body)
	if err != nil {
		return false, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if c.session != nil {
		if c.session.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.session.Token)
		}
		if !c.session.Anonymous() {
			req.Header.Set(types.UserHeader, c.session.UserName)
		}
	}

	logger.WithContext(session.NewContext(ctx, c.session)).Debugf("Invoking catalog API %s %s", r.method, fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, apperrors.NewNetworkError(r.op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, apperrors.NewNetworkError(r.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, newAPIError(resp.StatusCode, r.entity, raw)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, fmt.Errorf("failed to decode %s response: %w", r.op, err)
	}
	return true, nil
}

// errorBody covers both the catalog's {"error": ...} bodies and the
// {"code", "message"} shape used by upstream gateways.
type errorBody struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(status int, entity string, raw []byte) *apperrors.APIError {
	apiErr := &apperrors.APIError{StatusCode: status, Entity: entity}
	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
