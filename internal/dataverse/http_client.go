package dataverse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const webAPIPath = "/api/data/v9.2/"

// HTTPClient implements Client against the Dataverse Web API. It translates
// the operation parameter bag into OData query options and normalizes every
// response, success or failure, into an OperationResult so the data service
// never sees transport detail.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(environmentURL, accessToken string, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(environmentURL, "/") + webAPIPath,
		token:   accessToken,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *HTTPClient) Execute(ctx context.Context, table, operation string, params map[string]any) (*OperationResult, error) {
	switch operation {
	case OpList:
		return c.list(ctx, table, params)
	case OpGet:
		return c.get(ctx, table, params)
	case OpCreate:
		return c.create(ctx, table, params)
	case OpUpdate:
		return c.update(ctx, table, params)
	case OpDelete:
		return c.delete(ctx, table, params)
	default:
		return nil, fmt.Errorf("unsupported operation %q", operation)
	}
}

func (c *HTTPClient) list(ctx context.Context, table string, params map[string]any) (*OperationResult, error) {
	query := url.Values{}
	if v, ok := params[ParamSelect].(string); ok && v != "" {
		query.Set("$select", v)
	}
	if v, ok := params[ParamFilter].(string); ok && v != "" {
		query.Set("$filter", v)
	}
	if v, ok := params[ParamOrderBy].(string); ok && v != "" {
		query.Set("$orderby", v)
	}
	if v, ok := params[ParamTop].(int); ok && v > 0 {
		query.Set("$top", fmt.Sprint(v))
	}
	if v, ok := params[ParamSkip].(int); ok && v > 0 {
		query.Set("$skip", fmt.Sprint(v))
	}
	if v, ok := params[ParamCount].(bool); ok && v {
		query.Set("$count", "true")
	}

	target := c.baseURL + table
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	status, body, err := c.do(ctx, http.MethodGet, target, nil, "")
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return failureResult(status, body), nil
	}

	var page struct {
		Value    []map[string]any `json:"value"`
		Count    *int             `json:"@odata.count"`
		NextLink string           `json:"@odata.nextLink"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding list response: %w", err)
	}

	return &OperationResult{
		Success:   true,
		Data:      page.Value,
		Count:     page.Count,
		SkipToken: skipTokenFrom(page.NextLink),
	}, nil
}

func (c *HTTPClient) get(ctx context.Context, table string, params map[string]any) (*OperationResult, error) {
	id, _ := params[ParamID].(string)
	target := c.baseURL + table + "(" + url.PathEscape(id) + ")"
	if v, ok := params[ParamSelect].(string); ok && v != "" {
		target += "?$select=" + url.QueryEscape(v)
	}

	status, body, err := c.do(ctx, http.MethodGet, target, nil, "")
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return failureResult(status, body), nil
	}
	return successRecord(body)
}

func (c *HTTPClient) create(ctx context.Context, table string, params map[string]any) (*OperationResult, error) {
	record, _ := params[ParamRecord].(map[string]any)
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding create payload: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, c.baseURL+table, payload, "return=representation")
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return failureResult(status, body), nil
	}
	return successRecord(body)
}

func (c *HTTPClient) update(ctx context.Context, table string, params map[string]any) (*OperationResult, error) {
	id, _ := params[ParamID].(string)
	record, _ := params[ParamRecord].(map[string]any)
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding update payload: %w", err)
	}

	target := c.baseURL + table + "(" + url.PathEscape(id) + ")"
	status, body, err := c.do(ctx, http.MethodPatch, target, payload, "return=representation")
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return failureResult(status, body), nil
	}
	return successRecord(body)
}

func (c *HTTPClient) delete(ctx context.Context, table string, params map[string]any) (*OperationResult, error) {
	id, _ := params[ParamID].(string)
	target := c.baseURL + table + "(" + url.PathEscape(id) + ")"

	status, body, err := c.do(ctx, http.MethodDelete, target, nil, "")
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return failureResult(status, body), nil
	}
	return &OperationResult{Success: true}, nil
}

// do performs one request and returns the status and raw body. Transport
// failures (DNS, timeouts) surface as errors; HTTP failures do not.
func (c *HTTPClient) do(ctx context.Context, method, target string, payload []byte, prefer string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("OData-MaxVersion", "4.0")
	req.Header.Set("OData-Version", "4.0")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	c.logger.Debug("dataverse request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode))
	return resp.StatusCode, body, nil
}

func successRecord(body []byte) (*OperationResult, error) {
	record := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &record); err != nil {
			return nil, fmt.Errorf("decoding record response: %w", err)
		}
	}
	return &OperationResult{Success: true, Data: record}, nil
}

// failureResult extracts the OData error message when present, falling back
// to the raw body.
func failureResult(status int, body []byte) *OperationResult {
	message := strings.TrimSpace(string(body))
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}
	return &OperationResult{
		Success: false,
		Error:   &OperationError{Status: status, Message: message},
	}
}

// skipTokenFrom pulls the $skiptoken value out of an @odata.nextLink.
func skipTokenFrom(nextLink string) string {
	if nextLink == "" {
		return ""
	}
	parsed, err := url.Parse(nextLink)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("$skiptoken")
}
