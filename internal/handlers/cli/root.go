package cli

import (
	"fmt"

	"github.com/shellkit/histclean/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	cleanupService ports.HistoryCleanupService,
	fileFinder ports.HistoryFileFinder,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "histclean",
		Short: "histclean deduplicates and sanitizes shell history files.",
		Long: `histclean normalizes a timestamped shell history file into a
deduplicated, sorted command list, dropping noise and sensitive-looking
entries before rewriting the file in place.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cleanupService == nil && cmd.Name() == "clean" {
				return fmt.Errorf("history cleanup service not initialized for command %s", cmd.Name())
			}
			if fileFinder == nil && cmd.Name() == "locate" {
				return fmt.Errorf("history file finder not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewCleanCommand(cleanupService))
	rootCmd.AddCommand(NewLocateCommand(fileFinder))

	return rootCmd
}
