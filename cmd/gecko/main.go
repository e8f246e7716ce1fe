// Command gecko demonstrates the decorators on a greeting function.
package main

import (
	"fmt"
	"os"

	"github.com/on-the-ground/gecko/config"
	"github.com/on-the-ground/gecko/shared/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "gecko",
	Short:         "Function decorators demo",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML decorator configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.AddCommand(greetCmd, disabledCmd, flakyCmd)
}

// loadEnv resolves the configuration and logger shared by every subcommand.
func loadEnv() (config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return config.Config{}, nil, err
		}
	}

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	return cfg, logging.Console(level), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gecko:", err)
		os.Exit(1)
	}
}
