// Package cms queries the headless content repository over its HTTP
// query API and shapes the returned documents into the storefront's
// view models. All defaulting of untrusted author input happens here,
// at the ingest boundary.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wookporium/internal/util"
)

// ErrNotFound is returned when a query for a single document resolves
// to nothing, e.g. an unknown product slug. It is a distinct outcome
// from a transport or decode failure.
var ErrNotFound = errors.New("cms: document not found")

// ClientConfig configures the content API client.
type ClientConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration
}

// Client is a thin HTTP client for the content repository's GROQ
// query endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a content API client. The CDN host serves cached
// published documents; the live host is needed only for drafts or
// authenticated reads.
func NewClient(cfg ClientConfig) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s",
			cfg.ProjectID, host, cfg.APIVersion, cfg.Dataset),
		token: cfg.Token,
	}
}

// queryEnvelope is the wire envelope around every query response.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
	MS     float64         `json:"ms"`
}

// Query runs a GROQ query with optional parameters and decodes the
// result into out. A null result leaves out untouched and returns
// ErrNotFound.
func (c *Client) Query(ctx context.Context, groq string, params map[string]string, out interface{}) error {
	start := time.Now()
	defer func() {
		util.ContentFetchLatency.Observe(time.Since(start).Seconds())
	}()

	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		// Parameter values are JSON-encoded, e.g. $slug="festival-shirt".
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode query param %s: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build content query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content query returned %d: %s", resp.StatusCode, body)
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode content response: %w", err)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return ErrNotFound
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode content result: %w", err)
	}
	return nil
}
