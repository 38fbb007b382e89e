package cli

import (
	"fmt"
	"os"

	"github.com/shellkit/histclean/internal/core/ports"
	"github.com/shellkit/histclean/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewCleanCommand creates the 'clean' subcommand.
func NewCleanCommand(cleanupService ports.HistoryCleanupService) *cobra.Command {
	var dryRun bool
	var reportFormat string

	cmd := &cobra.Command{
		Use:   "clean <history-file>",
		Short: "Deduplicate and sanitize a history file in place.",
		Long: `Parses the given history file, drops noisy and sensitive-looking
entries, deduplicates commands keeping their most recent timestamp, and
atomically rewrites the file in sorted order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanCmd(cmd, args, cleanupService, dryRun, reportFormat)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the full pipeline and report, but do not rewrite the file.")
	cmd.Flags().StringVar(&reportFormat, "report", "table", "Summary format: table, yaml, or none.")
	return cmd
}

// runCleanCmd contains the core logic for the 'clean' command.
func runCleanCmd(
	_ *cobra.Command,
	args []string,
	cleanupService ports.HistoryCleanupService,
	dryRun bool,
	reportFormat string,
) error {
	if err := validateReportFormat(reportFormat); err != nil {
		return err
	}

	path := args[0]
	report, err := cleanupService.Clean(path, ports.CleanOptions{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("could not clean %s: %w", path, err)
	}

	if dryRun {
		fmt.Println(ui.WarningColor(fmt.Sprintf("Dry run: %s was not modified.", path)))
	} else {
		fmt.Println(ui.SuccessColor(fmt.Sprintf("Cleaned %s: kept %d unique commands.", path, report.Unique)))
	}
	return renderReport(os.Stdout, report, reportFormat)
}
