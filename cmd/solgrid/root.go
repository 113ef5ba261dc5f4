package solgrid

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "solgrid",
	Short: "Render a daylight calendar for one location and year",
	Long: `Solgrid turns a year's daylight table into an interactive calendar:
one tile per day, colored by daylight hours, with hover tooltips.
Feed it a CSV from your data provider, or let it compute the table
itself from latitude and longitude.`,
	PersistentPreRun: bindFlags,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.solgrid.toml)")
}

func initConfig() {
	if cfgFile != "" {
		slog.Info("Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".solgrid" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".solgrid")
	}

	viper.SetEnvPrefix("solgrid")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `
port = 9000
columns = 20
`

	configPath := "./.solgrid.toml"

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Since viper does case-insensitive comparisons, we only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				slog.Error("Error setting flag from config", "flag", f.Name, "error", err)
				panic(err)
			}
		}
	})
}
