package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"prospect-engine/internal/domain"
)

const defaultBaseURL = "https://serpapi.com/search"

// Client issues SerpAPI queries. Every request waits on a shared limiter:
// quota is billed per call, so a runaway loop must not burn through it.
type Client struct {
	hc      *http.Client
	apiKey  string
	baseURL string
	limiter *rate.Limiter
}

func New(apiKey string, reqPerSec float64, burst int) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		limiter: rate.NewLimiter(rate.Limit(reqPerSec), burst),
	}
}

// WithHTTPClient swaps the transport, used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.hc = hc
	return c
}

type mapsResponse struct {
	LocalResults []mapsResult `json:"local_results"`
}

type mapsResult struct {
	Title   string   `json:"title"`
	Website string   `json:"website"`
	Phone   string   `json:"phone"`
	Rating  *float64 `json:"rating"`
	Reviews int      `json:"reviews"`
}

// DirectorySearch runs a google_maps engine query and returns the raw
// candidate list in provider order.
func (c *Client) DirectorySearch(ctx context.Context, query string) ([]domain.Candidate, error) {
	body, err := c.get(ctx, url.Values{
		"engine": {"google_maps"},
		"q":      {query},
	})
	if err != nil {
		return nil, err
	}

	var resp mapsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode maps response: %w", err)
	}

	out := make([]domain.Candidate, 0, len(resp.LocalResults))
	for _, r := range resp.LocalResults {
		out = append(out, domain.Candidate{
			Name:        r.Title,
			HasWebsite:  r.Website != "",
			Phone:       r.Phone,
			Rating:      r.Rating,
			ReviewCount: r.Reviews,
		})
	}
	return out, nil
}

// TextSearch runs a default-engine query and returns the raw response body.
// Callers scan the serialized payload themselves; no field-level decode here.
func (c *Client) TextSearch(ctx context.Context, query string) ([]byte, error) {
	return c.get(ctx, url.Values{"q": {query}})
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "ProspectEngine/1.0 (+local)")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("serpapi status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if err != nil {
		return nil, fmt.Errorf("read serpapi body: %w", err)
	}
	return body, nil
}
