package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "debase.json"

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Scaffold a starter debase JSON configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := defaultConfigPath
		if len(args) > 0 {
			path = args[0]
		}
		if err := scaffoldConfig(path); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration file created: %s\n", path)
	},
}

// scaffoldConfig mirrors spec §4.9's plain-array shape, which ResolvePatterns
// accepts even when empty; the object form requires at least one non-empty
// list and would make a freshly scaffolded file fail `debase validate`.
func scaffoldConfig(path string) error {
	doc := map[string]any{
		"files":    []string{},
		"patterns": []string{},
	}
	d, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(d, '\n'))
	return err
}
