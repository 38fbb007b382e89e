/*
Package historyparsing turns raw history file text into a sequence of
history.Record values.

The on-disk format is line oriented: a timestamp marker line ("#" followed by
digits) opens a record, and every following non-blank line up to the next
marker is part of that record's command. Multi-line commands are joined with
"; ".
*/
package historyparsing

import (
	"iter"
	"strconv"
	"strings"

	"github.com/shellkit/histclean/internal/core/domain/history"
)

// Records returns a lazy, finite, single-pass sequence of parse results over
// the full history text. Each item is either a valid Record (nil error) or a
// *history.ParseError for one malformed unit; a parse error never terminates
// the sequence. The sequence is not restartable.
func Records(input string) iter.Seq2[history.Record, error] {
	return func(yield func(history.Record, error) bool) {
		var acc accumulator
		for line := range strings.Lines(input) {
			u, ok := acc.feed(strings.TrimRight(line, "\r\n"))
			if !ok {
				continue
			}
			if !yield(emit(u)) {
				return
			}
		}
		if u, ok := acc.finish(); ok {
			yield(emit(u))
		}
	}
}

// emit converts one closed unit into a Record or a ParseError.
func emit(u unit) (history.Record, error) {
	command := history.NormalizeCommand(u.command)

	if !u.hasMarker {
		return history.Record{}, &history.ParseError{Kind: history.OrphanCommand, Command: command}
	}

	digits := strings.TrimPrefix(u.marker, "#")
	ts, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return history.Record{}, &history.ParseError{
			Kind:    history.MalformedTimestamp,
			Marker:  u.marker,
			Command: command,
			Err:     err,
		}
	}

	if command == "" {
		return history.Record{}, &history.ParseError{Kind: history.EmptyCommand, Timestamp: uint32(ts)}
	}

	return history.Record{Timestamp: uint32(ts), Command: command}, nil
}
