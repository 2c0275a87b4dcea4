// Package playerdb resolves Minecraft player names to their unique ids.
package playerdb

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
	DefaultBaseURL = "https://playerdb.co"
	serviceName    = "playerdb"
)

// Client looks players up against the playerdb API.
type Client struct {
	baseURL string
	api     *apiclient.Client
}

// New builds a Client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, api *apiclient.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if api == nil {
		api = apiclient.New(0)
	}
	return &Client{baseURL: baseURL, api: api}
}

// ResolveIdentity returns the undashed unique id (raw_id) for username.
func (c *Client) ResolveIdentity(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username is required: %w", auction.ErrInvalidInput)
	}

	endpoint := c.baseURL + "/api/player/minecraft/" + url.PathEscape(username)
	resp, err := c.api.Get(ctx, endpoint, nil)
	if err != nil {
		return "", &auction.APIError{Service: serviceName, Kind: auction.ErrServiceUnavailable, Err: err}
	}

	if !gjson.ValidBytes(resp.Body) {
		if resp.Status == http.StatusNotFound {
			return "", notFound(resp.Status, username)
		}
		return "", &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrServiceUnavailable, Cause: "response is not JSON"}
	}

	doc := gjson.ParseBytes(resp.Body)
	switch {
	case resp.Status == http.StatusBadRequest || resp.Status == http.StatusNotFound:
		return "", notFound(resp.Status, username)
	case !resp.OK():
		return "", &auction.APIError{Service: serviceName, Status: resp.Status, Kind: auction.ErrServiceUnavailable, Cause: doc.Get("message").String()}
	case doc.Get("success").Exists() && !doc.Get("success").Bool():
		return "", notFound(resp.Status, username)
	}

	id := doc.Get("data.player.raw_id").String()
	if id == "" {
		return "", notFound(resp.Status, username)
	}
	return id, nil
}

func notFound(status int, username string) error {
	return &auction.APIError{Service: serviceName, Status: status, Kind: auction.ErrIdentityNotFound, Cause: username}
}
