package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/noorboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// maxResponseSize is the maximum allowed response size from the Airtable API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client is a thin Airtable REST client scoped to one base
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new client. Returns ErrConfigMissingAPIKey when no key
// is configured; callers decide whether that is fatal.
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.config.BaseURL, url.PathEscape(c.config.BaseID), url.PathEscape(table))
}

// listRecords fetches every record of a table matching the optional
// filterByFormula expression, following pagination offsets.
func (c *Client) listRecords(ctx context.Context, table, filterFormula string) ([]record, error) {
	var records []record
	offset := ""
	for {
		u := c.tableURL(table)
		q := url.Values{}
		if filterFormula != "" {
			q.Set("filterByFormula", filterFormula)
		}
		if offset != "" {
			q.Set("offset", offset)
		}
		if len(q) > 0 {
			u += "?" + q.Encode()
		}

		body, err := c.doRequest(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		var page recordList
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("airtable: failed to decode list response: %w", err)
		}
		records = append(records, page.Records...)

		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// getRecord fetches one record by id. Returns shared.ErrNotFound for a
// missing record.
func (c *Client) getRecord(ctx context.Context, table, id string) (*record, error) {
	u := c.tableURL(table) + "/" + url.PathEscape(id)
	body, err := c.doRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("airtable: failed to decode record: %w", err)
	}
	return &rec, nil
}

// createRecord writes one record and returns the envelope assigned by the store
func (c *Client) createRecord(ctx context.Context, table string, fields map[string]any) (*record, error) {
	payload, err := json.Marshal(createRecordRequest{Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("airtable: failed to encode record: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.tableURL(table), payload)
	if err != nil {
		return nil, err
	}

	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("airtable: failed to decode create response: %w", err)
	}
	return &rec, nil
}

func (c *Client) doRequest(ctx context.Context, method, u string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("airtable: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("airtable: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, shared.ErrNotFound
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.logger.Error("record store rejected credentials", zap.Int("status", resp.StatusCode))
		return nil, shared.ErrNotConfigured
	}
	if resp.StatusCode >= 400 {
		c.logger.Error("record store request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", errorDetail(body)))
		return nil, fmt.Errorf("%w: HTTP %d", shared.ErrUpstream, resp.StatusCode)
	}

	return body, nil
}

func errorDetail(body []byte) string {
	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return ""
	}
	var detail apiErrorDetail
	if err := json.Unmarshal(envelope.Error, &detail); err == nil && detail.Message != "" {
		return detail.Message
	}
	var plain string
	if err := json.Unmarshal(envelope.Error, &plain); err == nil {
		return plain
	}
	return ""
}
