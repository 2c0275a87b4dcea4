// Package hypixel fetches a player's active SkyBlock auctions.
package hypixel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/minhyannv/auction-finder-go/pkg/apiclient"
	"github.com/minhyannv/auction-finder-go/pkg/auction"
)

const (
	DefaultBaseURL = "https://api.hypixel.net"
	serviceName    = "hypixel"
)

// Client queries the SkyBlock auction endpoint with a fixed API key.
type Client struct {
	baseURL string
	apiKey  string
	api     *apiclient.Client
}

// New builds a Client. The key is required; an empty baseURL selects DefaultBaseURL.
func New(baseURL, apiKey string, api *apiclient.Client) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("hypixel api key is required: %w", auction.ErrInvalidInput)
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if api == nil {
		api = apiclient.New(0)
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, api: api}, nil
}

// FetchListings returns the player's auctions in the order the API lists them.
func (c *Client) FetchListings(ctx context.Context, playerID string) ([]auction.Listing, error) {
	if playerID == "" {
		return nil, fmt.Errorf("player id is required: %w", auction.ErrInvalidInput)
	}

	resp, err := c.api.Get(ctx, c.baseURL+"/skyblock/auction", url.Values{
		"key":    {c.apiKey},
		"player": {playerID},
	})
	if err != nil {
		return nil, &auction.APIError{Service: serviceName, Kind: auction.ErrServiceUnavailable, Err: err}
	}

	var doc gjson.Result
	if gjson.ValidBytes(resp.Body) {
		doc = gjson.ParseBytes(resp.Body)
	}
	cause := doc.Get("cause").String()

	if resp.Status == http.StatusForbidden || (isKeyProblem(cause) && !doc.Get("success").Bool()) {
		return nil, &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrAuthRejected, Cause: cause}
	}
	if !resp.OK() {
		return nil, &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrServiceUnavailable, Cause: cause}
	}
	if !doc.Exists() {
		return nil, &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrServiceUnavailable, Cause: "response is not JSON"}
	}
	if !doc.Get("success").Bool() {
		return nil, &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrServiceUnavailable, Cause: cause}
	}

	raw := doc.Get("auctions")
	if !raw.IsArray() && !raw.IsObject() {
		return nil, &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrServiceUnavailable, Cause: "auctions missing from response"}
	}

	var out []auction.Listing
	raw.ForEach(func(_, rec gjson.Result) bool {
		out = append(out, normalize(rec))
		return true
	})
	return out, nil
}

// normalize copies the four listing fields verbatim. item_bytes is either
// {"type":0,"data":"..."} or, in newer payloads, the bare data string.
func normalize(rec gjson.Result) auction.Listing {
	payload := rec.Get("item_bytes")
	if payload.IsObject() {
		payload = payload.Get("data")
	}
	return auction.Listing{
		ID:          rec.Get("uuid").String(),
		DisplayName: rec.Get("item_name").String(),
		Tier:        rec.Get("tier").String(),
		Payload:     payload.String(),
	}
}

func isKeyProblem(cause string) bool {
	cause = strings.ToLower(cause)
	return strings.Contains(cause, "api key") || strings.Contains(cause, "api-key")
}
