package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gitoffice",
	Short: "Assemble diffs in a first-person office",
	Long: `gitoffice is a small first-person puzzle game. Pick up lines of code,
bundle them in order, paint them, shred the ones that must go, scan the result
and submit it from the terminal before the clock runs out.`,
	SilenceUsage: true,
	// Running without a subcommand plays.
	RunE: playCmd.RunE,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gitoffice.yaml or $HOME/.config/gitoffice/gitoffice.yaml)")
}
