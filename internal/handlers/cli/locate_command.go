package cli

import (
	"fmt"

	"github.com/shellkit/histclean/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewLocateCommand creates the 'locate' subcommand.
func NewLocateCommand(fileFinder ports.HistoryFileFinder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the history file histclean would clean by default.",
		Long: `Checks the HISTFILE environment variable and common default
locations and prints the first history file found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocateCmd(cmd, args, fileFinder)
		},
	}
	return cmd
}

// runLocateCmd contains the core logic for the 'locate' command.
func runLocateCmd(_ *cobra.Command, _ []string, fileFinder ports.HistoryFileFinder) error {
	path, err := fileFinder.Find()
	if err != nil {
		return fmt.Errorf("could not locate a history file: %w", err)
	}
	fmt.Println(path)
	return nil
}
