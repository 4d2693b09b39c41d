package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"talentscout/app/config"
	"time"

	"github.com/samber/do"
)

const (
	requestTimeout = 10 * time.Second

	// Results scored below this are usually typos or street-level noise,
	// not a real city/country pair.
	minImportance = 0.2
)

type searchResult struct {
	DisplayName string `json:"display_name"`
	Importance  any    `json:"importance"`
}

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	return &Client{
		cfg: do.MustInvoke[*config.Config](di),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// Lookup checks whether the free-text location resolves to a known place.
func (c *Client) Lookup(ctx context.Context, location string) (bool, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.Nominatim.BaseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.Nominatim.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return false, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 || results[0].DisplayName == "" {
		return false, nil
	}

	return importanceOf(results[0]) >= minImportance, nil
}

// Nominatim has historically returned importance both as a number and
// as a string, normalize either.
func importanceOf(result searchResult) float64 {
	switch v := result.Importance.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
