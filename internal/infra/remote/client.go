// Package remote contains the HTTP clients for the external collaborators.
// Clients only classify their failures into the transient/permanent taxonomy;
// retrying is the caller's job (see internal/upstream).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"shelter/config"
	"shelter/internal/errors"
	"shelter/internal/upstream"
)

const maxErrorBodyBytes = 512

type httpClient struct {
	base   string
	client *http.Client
}

func newHTTPClient(cfg config.UpstreamConfig) *httpClient {
	return &httpClient{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// statusError carries a non-2xx upstream response.
type statusError struct {
	code int
	body string
}

// Error implements the error interface.
func (e *statusError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.code, e.body)
}

func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.base + path
	if len(query) != 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	return c.do(req, out)
}

func (c *httpClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do executes the request and classifies the outcome: transport failures and
// 5xx responses are transient, other non-2xx responses come back as a raw
// *statusError for the endpoint wrappers to map onto domain sentinels.
func (c *httpClient) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return upstream.Connectivity(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return upstream.Connectivity(&statusError{code: resp.StatusCode, body: readErrorBody(resp.Body)})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{code: resp.StatusCode, body: readErrorBody(resp.Body)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return upstream.Connectivity(errors.Wrap(err, "failed to decode response"))
	}

	return nil
}

func readErrorBody(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(raw))
}

// classify maps known status codes onto permanent domain sentinels. Unmapped
// non-2xx responses stay permanent; transient failures pass through untouched.
func classify(err error, codes map[int]error) error {
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		return err
	}

	if sentinel, ok := codes[statusErr.code]; ok {
		return upstream.Domain(sentinel)
	}

	return upstream.Domain(errors.WithStack(statusErr))
}
