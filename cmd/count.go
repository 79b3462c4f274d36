package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/gamecount/internal/utils"
	"github.com/sw33tLie/gamecount/pkg/schedule"
)

type countOptions struct {
	begin     string
	end       string
	teams     []string
	minGames  int
	maxGames  int
	state     string
	opponents bool
}

// countCmd implements: gamecount count
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count games per team in a date range",
	Example: `  gamecount count --begin 2021-10-12 --end 2021-10-20
  gamecount count -t "Seattle Kraken" -t "Vancouver Canucks" --opponents
  gamecount count --begin 2021-10-01 --end 2021-12-31 --state postponed --min 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown argument: '%s'. See 'gamecount count --help'", args[0])
		}

		opts := countOptions{}
		opts.begin, _ = cmd.Flags().GetString("begin")
		opts.end, _ = cmd.Flags().GetString("end")
		opts.teams, _ = cmd.Flags().GetStringSlice("teams")
		opts.minGames, _ = cmd.Flags().GetInt("min")
		opts.maxGames, _ = cmd.Flags().GetInt("max")
		opts.state, _ = cmd.Flags().GetString("state")
		opts.opponents, _ = cmd.Flags().GetBool("opponents")

		q, err := buildQuery(opts, time.Now())
		if err != nil {
			return err
		}

		summaries, err := schedule.Run(cmd.Context(), q, newSource())
		if err != nil {
			return err
		}

		if len(summaries) == 0 {
			utils.Log.Info("No teams matched the game range.")
			return nil
		}
		return schedule.PrintSummaries(os.Stdout, summaries, q.TrackOpponents)
	},
}

// buildQuery turns raw flag values into a query. Empty dates default to today.
func buildQuery(opts countOptions, now time.Time) (schedule.Query, error) {
	today := now.Format(schedule.DateLayout)
	if opts.begin == "" {
		opts.begin = today
	}
	if opts.end == "" {
		opts.end = today
	}

	r, err := schedule.ParseDateRange(opts.begin, opts.end)
	if err != nil {
		return schedule.Query{}, err
	}

	field, err := schedule.ParseField(opts.state)
	if err != nil {
		return schedule.Query{}, err
	}

	q := schedule.Query{
		Range:          r,
		Teams:          utils.SplitList(opts.teams),
		MinGames:       opts.minGames,
		MaxGames:       opts.maxGames,
		Field:          field,
		TrackOpponents: opts.opponents,
	}
	return q, q.Validate()
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringP("begin", "b", "", "First date of the range, YYYY-MM-DD (default today)")
	countCmd.Flags().StringP("end", "e", "", "Last date of the range, YYYY-MM-DD (default today)")
	countCmd.Flags().StringSliceP("teams", "t", nil, "Team names, exact match, repeatable or comma separated (default all)")
	countCmd.Flags().Int("min", schedule.MinGamesFloor, "Minimum number of games (inclusive)")
	countCmd.Flags().Int("max", schedule.SeasonGames, "Maximum number of games (inclusive)")
	countCmd.Flags().StringP("state", "s", "total", "Counter the min/max range applies to. Available: total, scheduled, postponed, final")
	countCmd.Flags().Bool("opponents", false, "List opponents for every team")
}
