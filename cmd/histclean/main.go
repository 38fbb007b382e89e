package main

import (
	"fmt"
	"os"

	"github.com/shellkit/histclean/internal/adapters/classification"
	"github.com/shellkit/histclean/internal/adapters/historyparsing"
	"github.com/shellkit/histclean/internal/adapters/serialization"
	"github.com/shellkit/histclean/internal/core/services/historycleanup"
	"github.com/shellkit/histclean/internal/handlers/cli"
	"github.com/shellkit/histclean/internal/repositories/historyfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	// The classifier is foundational to correctness: a rule that fails to
	// compile aborts the run before any input is read.
	classifier, err := classification.NewClassifier(classification.DefaultRuleSet())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling classification rules: %v\n", err)
		os.Exit(1)
	}

	historyRepo := historyfile.NewRepository()
	fileFinder := historyfile.NewDefaultHistoryFileFinder()

	cleanupSvc := historycleanup.NewService(
		historyRepo,
		historyparsing.NewParser(),
		classifier,
		serialization.NewSerializer(),
		os.Stderr,
	)

	rootCmd := cli.NewRootCommand(Version, cleanupSvc, fileFinder)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
