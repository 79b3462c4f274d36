package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/gamecount/pkg/schedule"
)

// teamsCmd represents the teams command
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Lists team identifiers and exact display names.",
	Long:  "Lists team identifiers and the exact display names accepted by 'count --teams'.",
	RunE: func(cmd *cobra.Command, args []string) error {
		teams, err := newSource().FetchTeams(cmd.Context())
		if err != nil {
			return err
		}
		return schedule.PrintTeams(os.Stdout, teams)
	},
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}
