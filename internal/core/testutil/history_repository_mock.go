package testutil

import (
	"github.com/shellkit/histclean/internal/core/ports"
)

// MockHistoryRepository is a mock implementation of the
// ports.HistoryRepository interface.
type MockHistoryRepository struct {
	LoadFunc    func(path string) (string, error)
	ReplaceFunc func(path string, content string) error
}

// Load mocks the Load method.
func (m *MockHistoryRepository) Load(path string) (string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	// Default behavior: an empty history file.
	return "", nil
}

// Replace mocks the Replace method.
func (m *MockHistoryRepository) Replace(path string, content string) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(path, content)
	}
	return nil
}

// Ensure MockHistoryRepository implements the ports.HistoryRepository interface.
var _ ports.HistoryRepository = (*MockHistoryRepository)(nil)
