package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	ctshttp "github.com/jrh3k5/slp-utils/internal/http"
	"github.com/jrh3k5/slp-utils/internal/slp"
)

const (
	// MainnetRESTURL is the base URL of the mainnet REST API.
	MainnetRESTURL = "https://rest.bitcoin.com/v2/"
	// TestnetRESTURL is the base URL of the testnet REST API.
	TestnetRESTURL = "https://trest.bitcoin.com/v2/"

	// maxErrorBodyBytes bounds how much of an error response is read into an APIError.
	maxErrorBodyBytes = 4096
)

// Client queries the SLP endpoints of the REST API.
// A Client is safe for concurrent use.
type Client struct {
	doer     ctshttp.Doer
	network  slp.Network
	restURLs map[slp.Network]string
}

// Option configures a Client.
type Option func(*Client)

// WithNetwork sets the network used by every call that does not take a network explicitly.
func WithNetwork(network slp.Network) Option {
	return func(c *Client) {
		c.network = network
	}
}

// WithRESTURL overrides the base URL used for the given network.
func WithRESTURL(network slp.Network, restURL string) Option {
	return func(c *Client) {
		c.restURLs[network] = restURL
	}
}

// NewClient returns a Client that executes its requests with the given Doer.
func NewClient(doer ctshttp.Doer, opts ...Option) *Client {
	c := &Client{
		doer:    doer,
		network: slp.Mainnet,
		restURLs: map[slp.Network]string{
			slp.Mainnet: MainnetRESTURL,
			slp.Testnet: TestnetRESTURL,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Network returns the default network of the client.
func (c *Client) Network() slp.Network {
	return c.network
}

func (c *Client) buildURL(network slp.Network, elem ...string) (string, error) {
	restURL, hasURL := c.restURLs[network]
	if !hasURL {
		return "", fmt.Errorf("%w: %q", slp.ErrUnknownNetwork, network)
	}

	requestURL, err := url.JoinPath(restURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to build request URL: %w", err)
	}

	return requestURL, nil
}

// getJSON issues a GET request against the given network and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, network slp.Network, out any, elem ...string) error {
	requestURL, err := c.buildURL(network, elem...)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for '%s': %w", requestURL, err)
	}

	return c.do(ctx, req, out)
}

// postJSON issues a POST request with the given JSON payload and decodes the JSON response into out.
func (c *Client) postJSON(
	ctx context.Context,
	network slp.Network,
	payload any,
	out any,
	elem ...string,
) error {
	requestURL, err := c.buildURL(network, elem...)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		requestURL,
		strings.NewReader(string(body)),
	)
	if err != nil {
		return fmt.Errorf("failed to create request for '%s': %w", requestURL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, out)
}

func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	if c.doer == nil {
		return errors.New("http client is nil")
	}

	req.Header.Set("Accept", "application/json")

	slog.DebugContext(ctx, fmt.Sprintf("Requesting %s %s", req.Method, req.URL.Redacted()))

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request for '%s': %w", req.URL.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from '%s': %w", req.URL.Redacted(), err)
	}

	return nil
}

func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}
