// Package backend is the typed HTTP client for the remote property service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"propdash/internal/adapters/observability"
	"propdash/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int, timeout time.Duration) *Client {
	if rps <= 0 {
		rps = 10
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) ListProperties(ctx context.Context) (domain.ListResponse, error) {
	var out domain.ListResponse
	return out, c.do(ctx, http.MethodGet, "/properties", "list", nil, &out)
}

func (c *Client) GetProperty(ctx context.Context, id int64) (domain.DetailResponse, error) {
	var out domain.DetailResponse
	return out, c.do(ctx, http.MethodGet, fmt.Sprintf("/properties/%d", id), "detail", nil, &out)
}

func (c *Client) CompareByID(ctx context.Context, id1, id2 int64) (domain.CompareResponse, error) {
	var out domain.CompareResponse
	return out, c.do(ctx, http.MethodPost, "/comparebyid", "compare", domain.CompareRequest{ID1: id1, ID2: id2}, &out)
}

func (c *Client) FindProperties(ctx context.Context, req domain.SearchRequest) (domain.ListResponse, error) {
	var out domain.ListResponse
	return out, c.do(ctx, http.MethodPost, "/findproperties", "search", req, &out)
}

func (c *Client) Predict(ctx context.Context, req domain.PredictRequest) (domain.PredictResponse, error) {
	var out domain.PredictResponse
	return out, c.do(ctx, http.MethodPost, "/predict", "predict", req, &out)
}

func (c *Client) Recommend(ctx context.Context, req domain.RecommendRequest) (domain.RecommendResponse, error) {
	var out domain.RecommendResponse
	return out, c.do(ctx, http.MethodPost, "/recommend", "recommend", req, &out)
}

// do performs one rate-limited request and decodes the JSON answer.
// There is deliberately no retry here: the dashboard surfaces the first
// failure to the user and stays retryable by hand.
func (c *Client) do(ctx context.Context, method, path, endpoint string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "propdash/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("backend", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("backend", endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return domain.ErrNotFound
	default:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &domain.StatusError{Code: resp.StatusCode}
	}
}
