package schedule

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/sw33tLie/gamecount/internal/utils"
)

// Source is the upstream league API.
type Source interface {
	TeamLister
	FetchSchedule(ctx context.Context, r DateRange, teamIDs []int) ([]Game, error)
}

// Run validates q, resolves teams, fetches the schedule and returns the
// filtered summaries. Nothing is returned on failure.
func Run(ctx context.Context, q Query, src Source) (Summaries, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	threshold, err := q.Threshold()
	if err != nil {
		return nil, err
	}
	filter := q.Filter()

	ids, err := ResolveTeamIDs(ctx, src, filter)
	if err != nil {
		return nil, err
	}
	utils.Log.WithFields(logrus.Fields{"teams": len(ids), "range": q.Range.String()}).Debug("fetching schedule")

	games, err := src.FetchSchedule(ctx, q.Range, ids)
	if err != nil {
		return nil, err
	}

	all := Aggregate(games, AggregateOptions{Filter: filter, TrackOpponents: q.TrackOpponents})
	kept := threshold.Apply(all)
	utils.Log.WithFields(logrus.Fields{
		"games":   len(games),
		"teams":   len(all),
		"matched": len(kept),
	}).Debug("aggregation done")
	return kept, nil
}
