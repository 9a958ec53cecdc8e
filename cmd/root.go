package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/genovar/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "genovar",
	Short: "Genovar - an interactive genomic variant database",
	Long: `Genovar stores genes, variants, patient samples, and sample-variant
associations in genomic_variants.db in the current directory, and offers a
numbered menu for inserts, updates, deletes, join queries, and statistics.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
