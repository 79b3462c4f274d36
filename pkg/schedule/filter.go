package schedule

import (
	"github.com/cockroachdb/errors"
)

// Threshold keeps summaries whose Field counter lies in [Min, Max].
type Threshold struct {
	Field Field
	Min   int
	Max   int
}

// NewThreshold fails with ErrInvalidGameRange when min > max.
func NewThreshold(field Field, min, max int) (Threshold, error) {
	if min > max {
		return Threshold{}, errors.Wrapf(ErrInvalidGameRange,
			"min games %d is greater than max games %d", min, max)
	}
	return Threshold{Field: field, Min: min, Max: max}, nil
}

// Apply returns a new mapping holding the entries of in that satisfy t.
// Summaries are shared with in, never modified.
// Max == SeasonGames means unbounded, so ranges spanning more than one season
// keep teams above 82 games. Min == MinGamesFloor likewise means no lower bound.
func (t Threshold) Apply(in Summaries) Summaries {
	checkMin := t.Min > MinGamesFloor
	checkMax := t.Max < SeasonGames

	out := make(Summaries, len(in))
	for name, s := range in {
		v := t.Field.Value(s)
		if checkMin && v < t.Min {
			continue
		}
		if checkMax && v > t.Max {
			continue
		}
		out[name] = s
	}
	return out
}
