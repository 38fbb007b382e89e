package ports

import "github.com/shellkit/histclean/internal/core/domain/history"

// HistorySerializer renders an ordered record slice into the on-disk history
// text format.
type HistorySerializer interface {
	Render(records []history.Record) string
}
