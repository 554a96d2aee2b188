package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Searcher defines the interface for querying the Discogs catalog.
// This interface is implemented by *Client and can be used for testing.
type Searcher interface {
	Search(ctx context.Context, params SearchParams) (*SearchResponse, error)
	Release(ctx context.Context, id int64) (*Release, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the Discogs HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
}

const (
	defaultBaseURL   = "https://api.discogs.com"
	defaultUserAgent = "cratedig/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL and personal access
// token. An empty baseURL selects the public API host; an empty token
// issues unauthenticated requests (Discogs rate-limits those harder).
func NewClient(baseURL, token string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		token:     strings.TrimSpace(token),
		userAgent: defaultUserAgent,
	}, nil
}

// SearchParams configures /database/search requests. String fields left
// empty are omitted from the query. YearFrom/YearTo collapse into the
// API's single year parameter when possible; price bounds and the
// release cap have no wire equivalent and are applied by Refine after
// the response arrives.
type SearchParams struct {
	Query       string
	Genre       string
	Style       string
	Artist      string
	Label       string
	Country     string
	YearFrom    string
	YearTo      string
	MinPrice    string
	MaxPrice    string
	MaxReleases string
	Page        int
	PerPage     int
}

func (p SearchParams) year() string {
	from := strings.TrimSpace(p.YearFrom)
	to := strings.TrimSpace(p.YearTo)
	switch {
	case from != "" && to != "" && from != to:
		return from + "-" + to
	case from != "":
		return from
	default:
		return to
	}
}

// Values encodes the params as a Discogs query string.
func (p SearchParams) Values() url.Values {
	values := url.Values{}
	if q := strings.TrimSpace(p.Query); q != "" {
		values.Set("q", q)
	}
	if genre := strings.TrimSpace(p.Genre); genre != "" {
		values.Set("genre", genre)
	}
	if style := strings.TrimSpace(p.Style); style != "" {
		values.Set("style", style)
	}
	if artist := strings.TrimSpace(p.Artist); artist != "" {
		values.Set("artist", artist)
	}
	if label := strings.TrimSpace(p.Label); label != "" {
		values.Set("label", label)
	}
	if country := strings.TrimSpace(p.Country); country != "" {
		values.Set("country", country)
	}
	if year := p.year(); year != "" {
		values.Set("year", year)
	}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(p.PerPage))
	}
	values.Set("type", "release")
	return values
}

// Search queries the catalog and returns one page of results.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/database/search", RawQuery: params.Values().Encode()}
	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Release retrieves full details for a single release, including the
// tracklist the search endpoint omits.
func (c *Client) Release(ctx context.Context, id int64) (*Release, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return nil, fmt.Errorf("release id required")
	}
	rel := &url.URL{Path: "/releases/" + strconv.FormatInt(id, 10)}
	var payload Release
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Context errors must pass through unwrapped so callers can
		// tell cancellation apart from transport failures.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discogs rate limit exceeded (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
