package resolver

import (
	"errors"
	"fmt"

	"github.com/travigo/nextbus/pkg/nextrip"
)

// Stage names the resource kind a pipeline step resolves
type Stage string

const (
	StageRoute     Stage = "Route"
	StageDirection Stage = "Direction"
	StageStop      Stage = "Stop"
	StageTime      Stage = "Time"
)

type ErrorKind int

const (
	EndpointMisbehaved ErrorKind = iota
	NotFound
	Ambiguous
	NoDeparturesScheduled
	MalformedResponse
	Unreachable
	InvalidTimestamp
)

// PipelineError is the single failure a resolution can end with
type PipelineError struct {
	Kind  ErrorKind
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	switch e.Kind {
	case EndpointMisbehaved:
		return fmt.Sprintf("%s endpoint misbehaved", e.Stage)
	case NotFound:
		return fmt.Sprintf("%s not found", e.Stage)
	case Ambiguous:
		return fmt.Sprintf("More than one %s found. Please refine %s", e.Stage, e.Stage)
	case NoDeparturesScheduled:
		return "No scheduled departures remain"
	case MalformedResponse:
		return fmt.Sprintf("%s endpoint returned a malformed response", e.Stage)
	case Unreachable:
		return fmt.Sprintf("%s endpoint unreachable", e.Stage)
	case InvalidTimestamp:
		if errors.Is(e.Err, nextrip.ErrInvalidReferenceTime) {
			return "Reference time could not be parsed"
		}
		return "Departure time could not be parsed"
	default:
		return fmt.Sprintf("%s lookup failed", e.Stage)
	}
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a PipelineError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind == kind
	}

	return false
}

func fetchError(stage Stage, err error) *PipelineError {
	var statusErr *nextrip.StatusError
	var malformedErr *nextrip.MalformedResponseError
	var transportErr *nextrip.TransportError

	switch {
	case errors.As(err, &statusErr):
		return &PipelineError{Kind: EndpointMisbehaved, Stage: stage, Err: err}
	case errors.As(err, &malformedErr):
		return &PipelineError{Kind: MalformedResponse, Stage: stage, Err: err}
	case errors.As(err, &transportErr):
		return &PipelineError{Kind: Unreachable, Stage: stage, Err: err}
	default:
		return &PipelineError{Kind: EndpointMisbehaved, Stage: stage, Err: err}
	}
}
