package resolver

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/travigo/nextbus/pkg/nextrip"
)

// API is the set of NexTrip listings the pipeline walks through
type API interface {
	Routes(ctx context.Context) ([]nextrip.RouteDescriptor, error)
	Directions(ctx context.Context, routeID string) ([]nextrip.DirectionDescriptor, error)
	Stops(ctx context.Context, routeID string, directionValue string) ([]nextrip.StopDescriptor, error)
	Departures(ctx context.Context, routeID string, directionValue string, stopValue string) ([]nextrip.DepartureRecord, error)
}

type Query struct {
	Route     string
	Stop      string
	Direction string

	// ReferenceTime replaces the clock when estimating scheduled departures
	ReferenceTime string
}

// Resolution holds every selection made on the way to the departure label
type Resolution struct {
	Route     nextrip.RouteDescriptor
	Direction nextrip.DirectionDescriptor
	Stop      nextrip.StopDescriptor
	Departure nextrip.DepartureRecord

	Label string
}

type Resolver struct {
	API       API
	Estimator nextrip.Estimator
	Logger    zerolog.Logger
}

func New(api API, logger zerolog.Logger) *Resolver {
	return &Resolver{
		API:    api,
		Logger: logger,
	}
}

// Resolve runs route, direction, stop and time lookups in order and stops at
// the first failure, which is always a *PipelineError
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Resolution, error) {
	routes, err := r.API.Routes(ctx)
	if err != nil {
		return nil, fetchError(StageRoute, err)
	}
	route, err := Match(StageRoute, routes, q.Route, func(route nextrip.RouteDescriptor) string {
		return route.Description
	})
	r.logStage(StageRoute, q.Route, len(routes), err)
	if err != nil {
		return nil, err
	}

	directions, err := r.API.Directions(ctx, route.RouteID)
	if err != nil {
		return nil, fetchError(StageDirection, err)
	}
	direction, err := Match(StageDirection, directions, q.Direction, func(direction nextrip.DirectionDescriptor) string {
		return direction.Label
	})
	r.logStage(StageDirection, q.Direction, len(directions), err)
	if err != nil {
		return nil, err
	}

	stops, err := r.API.Stops(ctx, route.RouteID, direction.Value)
	if err != nil {
		return nil, fetchError(StageStop, err)
	}
	stop, err := Match(StageStop, stops, q.Stop, func(stop nextrip.StopDescriptor) string {
		return stop.Label
	})
	r.logStage(StageStop, q.Stop, len(stops), err)
	if err != nil {
		return nil, err
	}

	departures, err := r.API.Departures(ctx, route.RouteID, direction.Value, stop.Value)
	if err != nil {
		return nil, fetchError(StageTime, err)
	}
	r.Logger.Debug().Str("stage", string(StageTime)).Int("departures", len(departures)).Msg("Fetched departures")
	if len(departures) == 0 {
		return nil, &PipelineError{Kind: NoDeparturesScheduled, Stage: StageTime}
	}

	// Upstream order is trusted, the first record is the next departure
	next := departures[0]

	label := next.DepartureText
	if !next.IsActual() {
		label, err = r.Estimator.Estimate(next.DepartureTime, q.ReferenceTime)
		if err != nil {
			return nil, &PipelineError{Kind: InvalidTimestamp, Stage: StageTime, Err: err}
		}
	}

	r.Logger.Debug().
		Str("route", route.RouteID).
		Str("direction", direction.Value).
		Str("stop", stop.Value).
		Bool("actual", next.IsActual()).
		Str("label", label).
		Msg("Resolved next departure")

	return &Resolution{
		Route:     route,
		Direction: direction,
		Stop:      stop,
		Departure: next,
		Label:     label,
	}, nil
}

func (r *Resolver) logStage(stage Stage, pattern string, candidates int, err error) {
	event := r.Logger.Debug().Str("stage", string(stage)).Str("pattern", pattern).Int("candidates", candidates)
	if err != nil {
		event = event.Str("outcome", err.Error())
	}
	event.Msg("Matched candidates")
}
