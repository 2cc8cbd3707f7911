// Command debase drives the symbol matcher against newline-delimited
// mangled-symbol sidecars, proving out the core package's CLI contract
// (spec §6): callers own input discovery and verbosity, the core only
// needs a permissive boolean.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	permissive bool
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "debase",
	Short: "debase strips base-class constructor/destructor calls from matched symbols",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the debase JSON configuration file")
	rootCmd.PersistentFlags().BoolVar(&permissive, "permissive", false, "Downgrade fatal pattern/config/replacer errors to warnings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development-mode logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
}
