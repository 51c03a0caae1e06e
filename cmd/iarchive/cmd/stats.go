package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	Long: `Show the derived dashboard view over the catalog: material, view,
and user totals, pending access requests, and live per-category material
counts. Everything is computed from the collections on demand, nothing
is read from stored counters.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	f, err := formatter()
	if err != nil {
		return err
	}

	return f.Format(os.Stdout, cat.Stats())
}
