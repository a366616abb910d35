package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "procpane",
	Short: "Live terminal dashboard over the output of running processes",
	Long: `procpane runs a set of commands and shows their stdout and stderr live,
one pane per stream, next to a main log pane. Digit keys full-screen a
pane, arrow keys scroll the main log, and ctrl+c closes the dashboard
without touching the child processes.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is ~/.procpane/config.toml)")
	rootCmd.PersistentFlags().String("theme", "", "color theme: dark, light or system")
	rootCmd.PersistentFlags().Int("tick", 0, "redraw check interval in milliseconds")
	rootCmd.PersistentFlags().Bool("debug", false, "write a debug log to the procpane directory")
	rootCmd.PersistentFlags().String("log-dir", "", "write the debug log under this directory")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the procpane version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("procpane v%s\n", Version)
	},
}
