package resolver

import (
	"github.com/travigo/nextbus/pkg/util"
)

// Match picks the one candidate whose field contains pattern, ignoring case.
// No match is a NotFound failure and more than one is Ambiguous.
func Match[T any](stage Stage, candidates []T, pattern string, field func(T) string) (T, error) {
	var empty T

	matches := util.Filter(candidates, func(candidate T) bool {
		return util.ContainsFold(field(candidate), pattern)
	})

	switch len(matches) {
	case 0:
		return empty, &PipelineError{Kind: NotFound, Stage: stage}
	case 1:
		return matches[0], nil
	default:
		return empty, &PipelineError{Kind: Ambiguous, Stage: stage}
	}
}
