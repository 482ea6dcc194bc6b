package nextrip

import (
	"context"
	"io"
	"net/http"
	"time"
)

const DefaultUserAgent = "nextbus/1.0"

// Transport performs a GET asking for JSON and hands back the status and raw body
type Transport interface {
	Get(ctx context.Context, url string) (int, []byte, error)
}

type HTTPTransport struct {
	Client    *http.Client
	UserAgent string
}

func NewHTTPTransport(timeout time.Duration, userAgent string) *HTTPTransport {
	return &HTTPTransport{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

func (t *HTTPTransport) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, body, nil
}
