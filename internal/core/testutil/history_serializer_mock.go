package testutil

import (
	"github.com/shellkit/histclean/internal/core/domain/history"
	"github.com/shellkit/histclean/internal/core/ports"
)

// MockHistorySerializer is a mock implementation of the
// ports.HistorySerializer interface.
type MockHistorySerializer struct {
	RenderFunc func(records []history.Record) string
}

// Render mocks the Render method.
func (m *MockHistorySerializer) Render(records []history.Record) string {
	if m.RenderFunc != nil {
		return m.RenderFunc(records)
	}
	// Default behavior: empty output.
	return ""
}

// Ensure MockHistorySerializer implements the ports.HistorySerializer interface.
var _ ports.HistorySerializer = (*MockHistorySerializer)(nil)
