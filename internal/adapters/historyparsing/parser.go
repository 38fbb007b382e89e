package historyparsing

import (
	"iter"

	"github.com/shellkit/histclean/internal/core/domain/history"
	"github.com/shellkit/histclean/internal/core/ports"
)

// Parser implements the ports.HistoryParser interface on top of the
// package's accumulator state machine.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() ports.HistoryParser {
	return &Parser{}
}

// Records implements the ports.HistoryParser interface.
func (*Parser) Records(input string) iter.Seq2[history.Record, error] {
	return Records(input)
}
