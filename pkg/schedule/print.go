package schedule

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PrintSummaries renders s as a table sorted by team name.
func PrintSummaries(out io.Writer, s Summaries, withOpponents bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	header := "Team\tTotal\tScheduled\tPostponed\tFinal"
	if withOpponents {
		header += "\tPlaying Against"
	}
	fmt.Fprintln(w, header)

	for _, name := range s.Names() {
		sum := s[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d", sum.Team, sum.Total, sum.Scheduled, sum.Postponed, sum.Final)
		if withOpponents {
			fmt.Fprintf(w, "\t%s", strings.Join(sum.Opponents, ", "))
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}

// PrintTeams renders the team directory sorted by name.
func PrintTeams(out io.Writer, teams []Team) error {
	sorted := make([]Team, len(teams))
	copy(sorted, teams)
	sortTeams(sorted)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTeam")
	for _, t := range sorted {
		fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Name)
	}
	return w.Flush()
}
