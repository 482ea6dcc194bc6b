package nextrip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Client fetches the four NexTrip listings from one API host
type Client struct {
	BaseURL   string
	Endpoints Endpoints
	Transport Transport
}

func NewClient(baseURL string, endpoints Endpoints, transport Transport) *Client {
	return &Client{
		BaseURL:   baseURL,
		Endpoints: endpoints,
		Transport: transport,
	}
}

func (c *Client) Routes(ctx context.Context) ([]RouteDescriptor, error) {
	return getList[RouteDescriptor](ctx, c.Transport, c.Endpoints.RoutesURL(c.BaseURL))
}

func (c *Client) Directions(ctx context.Context, routeID string) ([]DirectionDescriptor, error) {
	return getList[DirectionDescriptor](ctx, c.Transport, c.Endpoints.DirectionsURL(c.BaseURL, routeID))
}

func (c *Client) Stops(ctx context.Context, routeID string, directionValue string) ([]StopDescriptor, error) {
	return getList[StopDescriptor](ctx, c.Transport, c.Endpoints.StopsURL(c.BaseURL, routeID, directionValue))
}

func (c *Client) Departures(ctx context.Context, routeID string, directionValue string, stopValue string) ([]DepartureRecord, error) {
	return getList[DepartureRecord](ctx, c.Transport, c.Endpoints.TimesURL(c.BaseURL, routeID, directionValue, stopValue))
}

func getList[T any](ctx context.Context, transport Transport, url string) ([]T, error) {
	status, body, err := transport.Get(ctx, url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	if status != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: status}
	}

	return ParseList[T](url, body)
}

// ParseList decodes a JSON array body and checks every element carries its required fields
func ParseList[T any](url string, body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &MalformedResponseError{URL: url, Err: err}
	}

	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return nil, &MalformedResponseError{URL: url, Err: fmt.Errorf("item %d: %w", i, err)}
		}
	}

	return items, nil
}
