package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/3-lines-studio/greetsite/internal/greeter"
)

// GreetClient fetches greetings over HTTP for the greeter component.
type GreetClient struct {
	endpoint string
	client   *http.Client
}

// NewGreetClient resolves the greet endpoint against baseURL. The endpoint is
// relative ("api/greet") so a base with a path prefix keeps it.
func NewGreetClient(baseURL string, client *http.Client) (*GreetClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}

	endpoint := base.ResolveReference(&url.URL{Path: "api/greet"})

	return &GreetClient{endpoint: endpoint.String(), client: client}, nil
}

func (c *GreetClient) Endpoint() string {
	return c.endpoint
}

func (c *GreetClient) FetchGreeting(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Message *string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode greeting: %w", err)
	}
	if body.Message == nil || *body.Message == "" {
		return "", greeter.ErrNoMessage
	}

	return *body.Message, nil
}

var _ greeter.Fetcher = (*GreetClient)(nil)
