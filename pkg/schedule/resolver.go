package schedule

import (
	"context"

	"github.com/cockroachdb/errors"
)

// TeamLister returns the league's team directory.
type TeamLister interface {
	FetchTeams(ctx context.Context) ([]Team, error)
}

// ResolveTeamIDs turns filter into the team identifiers to query, using a
// single directory lookup. An active filter that matches nothing fails with
// ErrNoMatchingTeams.
func ResolveTeamIDs(ctx context.Context, lister TeamLister, filter TeamFilter) ([]int, error) {
	teams, err := lister.FetchTeams(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(teams))
	for _, t := range teams {
		if filter.Allows(t.Name) {
			ids = append(ids, t.ID)
		}
	}

	if filter.Active() && len(ids) == 0 {
		return nil, errors.Wrapf(ErrNoMatchingTeams, "none of %q is a known team name", filter.Names())
	}
	return ids, nil
}
