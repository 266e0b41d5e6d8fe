package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnexpectedStatus is returned when the metrics endpoint answers with
// anything other than 200.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Fetcher retrieves plaintext measurement snapshots from a metrics endpoint.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher using the given HTTP client.
func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch issues a single GET to the endpoint and returns the response body
// verbatim. Any status other than 200 is an error carrying the status code.
func (f *Fetcher) Fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
