package schedule

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/sw33tLie/gamecount/internal/utils"
)

// AggregateOptions controls how games are folded into summaries.
type AggregateOptions struct {
	Filter         TeamFilter
	TrackOpponents bool
}

// Aggregate folds games into one Summary per team. Each game credits both of
// its sides independently; sides outside an active filter are skipped.
func Aggregate(games []Game, opts AggregateOptions) Summaries {
	out := Summaries{}
	unknown := map[Status]int{}

	for _, g := range games {
		for _, pair := range [2][2]Side{{g.Home, g.Away}, {g.Away, g.Home}} {
			side, other := pair[0], pair[1]
			if !opts.Filter.Allows(side.Team) {
				continue
			}

			s, ok := out[side.Team]
			if !ok {
				s = &Summary{Team: side.Team}
				out[side.Team] = s
			}

			s.Total++
			switch g.Status {
			case StatusScheduled:
				s.Scheduled++
			case StatusPostponed:
				s.Postponed++
			case StatusFinal:
				s.Final++
			default:
				s.Other++
				unknown[g.Status]++
			}

			if opts.TrackOpponents {
				s.Opponents = append(s.Opponents, other.Team)
			}
		}
	}

	logUnknownStatuses(unknown)
	return out
}

func logUnknownStatuses(unknown map[Status]int) {
	statuses := make([]string, 0, len(unknown))
	for st := range unknown {
		statuses = append(statuses, string(st))
	}
	sort.Strings(statuses)
	for _, st := range statuses {
		utils.Log.WithFields(logrus.Fields{
			"status": st,
			"count":  unknown[Status(st)],
		}).Warn("game status not recognized, counted in total only")
	}
}
