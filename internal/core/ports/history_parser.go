package ports

import (
	"iter"

	"github.com/shellkit/histclean/internal/core/domain/history"
)

// HistoryParser produces a lazy, single-pass sequence of parse results over
// raw history text. Items carry either a valid record or a per-unit
// *history.ParseError; malformed units never terminate the sequence.
type HistoryParser interface {
	Records(input string) iter.Seq2[history.Record, error]
}
