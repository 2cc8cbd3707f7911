package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/9inefold/debase/internal/matcher"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compile every pattern in the configured config file without matching anything",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile == "" {
			fmt.Println("error: --config is required")
			os.Exit(1)
		}

		m, err := matcher.New(logger, false)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}

		var files []string
		if err := m.LoadConfig(cfgFile, &files); err != nil {
			color.New(color.FgRed).Printf("invalid config: %v\n", err)
			os.Exit(1)
		}

		color.New(color.FgGreen).Printf("config %s is valid (%d resolved files)\n", cfgFile, len(files))
	},
}
