package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/gamecount/internal/utils"
	"github.com/sw33tLie/gamecount/pkg/nhl"
	"github.com/sw33tLie/gamecount/pkg/whttp"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gamecount",
	Short: "Counts NHL games per team over a date range.",
	Long: `gamecount queries the NHL stats API for a date range and reports, per team, how many
games fall into it, broken down by status (scheduled, postponed, final).

Results can be narrowed to a set of teams and to a min/max number of games.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelString, _ := cmd.Flags().GetString("loglevel")
		if err := utils.SetLogLevel(levelString); err != nil {
			return err
		}

		proxy, _ := cmd.Flags().GetString("proxy")
		if proxy != "" {
			if err := whttp.SetupProxy(proxy); err != nil {
				return err
			}
		}
		whttp.SetTimeout(viper.GetDuration("nhl.timeout"))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gamecount.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			utils.Log.Warn("cannot locate home directory: ", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".gamecount")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("gamecount")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("nhl.baseurl", nhl.DefaultBaseURL)
	viper.SetDefault("nhl.timeout", whttp.DefaultTimeout)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			utils.Log.Warn("cannot read config file: ", err)
		}
	} else {
		utils.Log.Debug("using config file: ", viper.ConfigFileUsed())
	}
}

func newSource() *nhl.Client {
	return nhl.NewClient(viper.GetString("nhl.baseurl"), nil)
}
