package nextrip

import (
	"net/url"
	"strings"
)

const DefaultHost = "http://svc.metrotransit.org"

// Endpoints holds the path of each listing relative to the API host
type Endpoints struct {
	Routes     string `yaml:"routes" validate:"required"`
	Directions string `yaml:"directions" validate:"required"`
	Stops      string `yaml:"stops" validate:"required"`
	Times      string `yaml:"times" validate:"required"`
}

var DefaultEndpoints = Endpoints{
	Routes:     "/NexTrip/Routes",
	Directions: "/NexTrip/Directions",
	Stops:      "/NexTrip/Stops",
	Times:      "/NexTrip",
}

func (e Endpoints) RoutesURL(base string) string {
	return joinURL(base, e.Routes)
}

func (e Endpoints) DirectionsURL(base string, routeID string) string {
	return joinURL(base, e.Directions, routeID)
}

func (e Endpoints) StopsURL(base string, routeID string, directionValue string) string {
	return joinURL(base, e.Stops, routeID, directionValue)
}

func (e Endpoints) TimesURL(base string, routeID string, directionValue string, stopValue string) string {
	return joinURL(base, e.Times, routeID, directionValue, stopValue)
}

func joinURL(base string, path string, segments ...string) string {
	var builder strings.Builder

	builder.WriteString(strings.TrimRight(base, "/"))
	if path != "" && !strings.HasPrefix(path, "/") {
		builder.WriteByte('/')
	}
	builder.WriteString(strings.TrimRight(path, "/"))

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}
