package main

import (
	"fmt"

	"gitoffice/internal/config"
	"gitoffice/internal/game"
	"gitoffice/internal/level"
	"gitoffice/internal/office"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the window and play",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		layoutPath, _ := cmd.Flags().GetString("layout")
		if layoutPath == "" {
			layoutPath = cfg.Office.Layout
		}
		layout, err := office.Load(layoutPath)
		if err != nil {
			return err
		}
		if err := office.Validate(layout); err != nil {
			// Broken entries are skipped at build time; the required ones are checked by game.New.
			fmt.Fprintf(cmd.ErrOrStderr(), "layout %s has problems:\n%v\n", layoutPath, err)
		}

		levels, err := level.Load(level.Text(), level.Durations)
		if err != nil {
			return err
		}
		return game.Play(cfg, levels, layout)
	},
}

func init() {
	playCmd.Flags().String("layout", "", "office layout file (overrides office.layout)")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.AddCommand(playCmd)
}
