package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/9inefold/debase/internal/demangle"
	"github.com/9inefold/debase/internal/matcher"
	"github.com/9inefold/debase/internal/symfeat"
)

var abiName string

var runCmd = &cobra.Command{
	Use:   "run [symbols-file...]",
	Short: "Classify mangled symbols in one or more newline-delimited sidecar files",
	Run: func(cmd *cobra.Command, args []string) {
		if cfgFile == "" {
			fmt.Println("error: --config is required")
			os.Exit(1)
		}

		abi, err := parseABI(abiName)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}

		m, err := matcher.New(logger, permissive)
		if err != nil {
			logger.Fatal("failed to build matcher", zap.Error(err))
		}

		var files []string
		if err := m.LoadConfig(cfgFile, &files); err != nil {
			logger.Fatal("failed to load config", zap.String("path", cfgFile), zap.Error(err))
		}
		files = append(files, args...)

		demangler := demangle.For(abi)
		exitStatus := 0
		for _, path := range files {
			if err := runSymbolsFile(m, demangler, path); err != nil {
				logger.Error("failed to process symbols file", zap.String("path", path), zap.Error(err))
				exitStatus = 1
			}
		}
		os.Exit(exitStatus)
	},
}

func init() {
	runCmd.Flags().StringVar(&abiName, "abi", "itanium", "Mangling ABI to demangle against: itanium or microsoft")
}

func runSymbolsFile(m *matcher.Matcher, demangler demangle.Demangler, path string) error {
	if err := m.SetFilename(path); err != nil {
		return fmt.Errorf("setting current filename: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening symbols file: %w", err)
	}
	defer f.Close()

	debase := color.New(color.FgRed, color.Bold)
	keep := color.New(color.FgGreen)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		mangled := strings.TrimSpace(scanner.Text())
		if mangled == "" {
			continue
		}

		var features symfeat.Features
		demangler.Classify(mangled, &features)

		if m.Match(features) {
			debase.Printf("DEBASE %s\n", mangled)
		} else {
			keep.Printf("KEEP   %s\n", mangled)
		}
	}
	return scanner.Err()
}

func parseABI(name string) (demangle.ABI, error) {
	switch strings.ToLower(name) {
	case "itanium", "":
		return demangle.Itanium, nil
	case "microsoft", "msvc":
		return demangle.Microsoft, nil
	default:
		return 0, fmt.Errorf("unknown ABI %q (want itanium or microsoft)", name)
	}
}
