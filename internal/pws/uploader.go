package pws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pwstools/pws-forward/internal/credentials"
)

// DefaultUploadURL is the fixed Weather Underground PWS upload endpoint.
const DefaultUploadURL = "https://weatherstation.wunderground.com/weatherstation/updateweatherstation.php"

// ErrCircuitOpen is returned when the upload circuit breaker rejects a call.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Client submits mapped parameters to the upload endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client pointed at the default upload endpoint.
func NewClient(httpClient *http.Client) *Client {
	return NewClientWithURL(httpClient, DefaultUploadURL)
}

// NewClientWithURL creates a Client pointed at a custom endpoint.
func NewClientWithURL(httpClient *http.Client, baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// UploadResult carries the upload endpoint's response. The endpoint reports
// problems in the body rather than the status code, so neither is validated.
type UploadResult struct {
	StatusCode int
	Body       string
}

// Upload merges the credentials into params and issues one GET with the raw
// query string appended. The response is returned as-is; no status check and
// no retry.
func (c *Client) Upload(ctx context.Context, params *Params, creds credentials.Credentials) (UploadResult, error) {
	params.Set("ID", creds.ID)
	params.Set("KEY", creds.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return UploadResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UploadResult{}, err
	}

	return UploadResult{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

// ResilientClient wraps Client with a circuit breaker for long-running
// publishers. Each upload is still a single attempt; after consecutive
// transport failures the breaker opens and uploads are suppressed until it
// resets.
type ResilientClient struct {
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

// NewResilientClient wraps client with a circuit breaker.
func NewResilientClient(client *Client) *ResilientClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wunderground",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ResilientClient{client: client, circuit: cb}
}

// Upload submits through the circuit breaker.
func (c *ResilientClient) Upload(ctx context.Context, params *Params, creds credentials.Credentials) (UploadResult, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.client.Upload(ctx, params, creds)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return UploadResult{}, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return UploadResult{}, err
	}

	res, ok := result.(UploadResult)
	if !ok {
		return UploadResult{}, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return res, nil
}
