/*
Package historyfile provides file-system access to shell history files:
whole-file reads, atomic rewrites, and discovery of the user's history file.
*/
package historyfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shellkit/histclean/internal/core/ports"
)

// FileRepository reads and atomically rewrites history files on disk.
// It implements the ports.HistoryRepository interface.
type FileRepository struct{}

// NewRepository creates a new FileRepository.
func NewRepository() ports.HistoryRepository {
	return &FileRepository{}
}

// Load implements the ports.HistoryRepository interface.
func (*FileRepository) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading history file %s: %w", toUserFriendlyPath(path), err)
	}
	return string(data), nil
}

// Replace implements the ports.HistoryRepository interface. The content goes
// to a temporary file in the target's own directory and is renamed over the
// original, so a run interrupted mid-write never leaves a partial history
// file behind. The original file mode is preserved on the replacement.
func (*FileRepository) Replace(path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat history file %s: %w", toUserFriendlyPath(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".histclean-*")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	// No-op after a successful rename.
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("setting mode on temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", toUserFriendlyPath(path), err)
	}
	return nil
}
