package testutil

import (
	"iter"

	"github.com/shellkit/histclean/internal/core/domain/history"
	"github.com/shellkit/histclean/internal/core/ports"
)

// MockHistoryParser is a mock implementation of the ports.HistoryParser
// interface.
type MockHistoryParser struct {
	RecordsFunc func(input string) iter.Seq2[history.Record, error]
}

// Records mocks the Records method.
func (m *MockHistoryParser) Records(input string) iter.Seq2[history.Record, error] {
	if m.RecordsFunc != nil {
		return m.RecordsFunc(input)
	}
	// Default behavior: an empty sequence.
	return func(yield func(history.Record, error) bool) {}
}

// Ensure MockHistoryParser implements the ports.HistoryParser interface.
var _ ports.HistoryParser = (*MockHistoryParser)(nil)
