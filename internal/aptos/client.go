package aptos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CoinStoreResource is the account resource that holds the APT balance.
const CoinStoreResource = "0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>"

// Client is a read-only client for an Aptos fullnode REST API. The only
// operation this service needs is the account resource listing used to
// extract a coin balance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type accountResource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type coinStoreData struct {
	Coin struct {
		Value string `json:"value"`
	} `json:"coin"`
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// AccountBalance returns the APT balance of an account in octas (8-decimal
// base units). An account the node has never seen, or one without the coin
// store resource, has no balance yet and yields 0 without an error.
func (c *Client) AccountBalance(ctx context.Context, address string) (uint64, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + "/v1/accounts/" + address + "/resources"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("failed to get account resources: status %d, body: %s", resp.StatusCode, string(body))
	}

	var resources []accountResource
	if err := json.NewDecoder(resp.Body).Decode(&resources); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	for _, r := range resources {
		if r.Type != CoinStoreResource {
			continue
		}
		var data coinStoreData
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return 0, fmt.Errorf("failed to decode coin store: %w", err)
		}
		value, err := strconv.ParseUint(data.Coin.Value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid coin value %q: %w", data.Coin.Value, err)
		}
		return value, nil
	}

	return 0, nil
}
