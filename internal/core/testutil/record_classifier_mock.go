package testutil

import (
	"github.com/shellkit/histclean/internal/core/ports"
)

// MockRecordClassifier is a mock implementation of the
// ports.RecordClassifier interface.
type MockRecordClassifier struct {
	RetainFunc func(command string) bool
}

// Retain mocks the Retain method.
func (m *MockRecordClassifier) Retain(command string) bool {
	if m.RetainFunc != nil {
		return m.RetainFunc(command)
	}
	// Default behavior: retain everything.
	return true
}

// Ensure MockRecordClassifier implements the ports.RecordClassifier interface.
var _ ports.RecordClassifier = (*MockRecordClassifier)(nil)
