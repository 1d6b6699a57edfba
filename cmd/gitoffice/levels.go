package main

import (
	"fmt"
	"os"

	"gitoffice/internal/level"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Parse the level text and print a summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := level.Text()
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read levels %s: %w", file, err)
			}
			text = string(data)
		}

		levels, err := level.Load(text, level.Durations)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d levels\n", len(levels))
		for _, l := range levels {
			fmt.Fprintf(out, "  level %d  %-6s  %2d lines  %2d scored\n",
				l.Number, l.Duration, len(l.Block), len(l.Block.Canonical()))
		}
		return nil
	},
}

func init() {
	levelsCmd.Flags().String("file", "", "lint a level file instead of the bundled levels")
	rootCmd.AddCommand(levelsCmd)
}
