package main

import (
	"errors"
	"fmt"

	"gitoffice/internal/config"
	"gitoffice/internal/office"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [layout]",
	Short: "Check an office layout file",
	Long: `Loads an office layout, resolves legacy prefixed names into typed entries
and reports every problem found. Defaults to office.layout from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			path = cfg.Office.Layout
		}

		layout, err := office.Load(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := office.Validate(layout); err != nil {
			var joined interface{ Unwrap() []error }
			if errors.As(err, &joined) {
				for _, e := range joined.Unwrap() {
					fmt.Fprintf(out, "  %v\n", e)
				}
			} else {
				fmt.Fprintf(out, "  %v\n", err)
			}
			return fmt.Errorf("%s: layout has problems", path)
		}

		counts := map[office.Kind]int{}
		for _, e := range layout.Entries {
			counts[e.Kind]++
		}
		fmt.Fprintf(out, "%s: %d entries OK\n", path, len(layout.Entries))
		for _, k := range []office.Kind{
			office.KindCollider, office.KindSensor, office.KindDynamic, office.KindInteractable,
			office.KindPoint, office.KindRenderTarget, office.KindEmissive, office.KindMesh,
		} {
			if counts[k] > 0 {
				fmt.Fprintf(out, "  %-14s %d\n", k, counts[k])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
