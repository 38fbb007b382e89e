package historyfile

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/shellkit/histclean/internal/core/ports"
)

// DefaultHistoryFileFinder locates a shell history file by checking the
// HISTFILE environment variable and common default locations.
// It implements the ports.HistoryFileFinder interface.
type DefaultHistoryFileFinder struct{}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{}
}

// Find implements the ports.HistoryFileFinder interface.
func (*DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile()
}

// findUserHistoryFile checks HISTFILE first, then a list of common default
// history file paths under the user's home directory.
func findUserHistoryFile() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	homeDir := usr.HomeDir

	if histFileEnvVal := os.Getenv("HISTFILE"); histFileEnvVal != "" {
		pathToCheck := histFileEnvVal
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	// bash first: the timestamped "#<epoch>" marker format this tool cleans
	// is bash's HISTTIMEFORMAT layout.
	potentialPaths := []string{
		filepath.Join(homeDir, ".bash_history"),
		filepath.Join(homeDir, ".zsh_history"),
	}

	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not automatically find a shell history file. Please ensure your history file is in a standard location (e.g., ~/.bash_history) or set the HISTFILE environment variable")
}
