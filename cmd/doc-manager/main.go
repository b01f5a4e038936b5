// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the doc-manager CLI. Run with no
// arguments it prints the document demonstration.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/doc-manager/internal/demo"
	"github.com/pdiddy/doc-manager/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE from the loaded configuration.
var logger = zap.NewNop()

// rootCmd is the base command for the doc-manager CLI.
var rootCmd = &cobra.Command{
	Use:   "doc-manager",
	Short: "Demonstrate a polymorphic document contract",
	Long: `doc-manager walks PDF and Word documents through one processing
routine that opens, reads, modifies, and saves them without knowing which
kind it was given. Opening and saving only print what would happen; no file
is read or written.

With no arguments it runs the fixed demonstration. Use "process" to run
your own file names through the same routine.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(loadConfig().Log, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.Run(loadConfig().Demo, cmd.OutOrStdout(), logger)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./doc-manager.yaml or ~/.config/doc-manager/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "diagnostic log level: debug, info, warn, or error")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("doc-manager")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "doc-manager"))
		}
	}

	viper.SetEnvPrefix("DOC_MANAGER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
