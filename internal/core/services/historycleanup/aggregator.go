package historycleanup

import (
	"slices"

	"github.com/shellkit/histclean/internal/core/domain/history"
)

// aggregator deduplicates retained records by command text, keeping the
// maximum timestamp seen for each command.
type aggregator struct {
	byCommand map[string]uint32
}

func newAggregator() *aggregator {
	return &aggregator{byCommand: make(map[string]uint32)}
}

// fold merges one record into the map. An already-seen command only advances
// when the new timestamp is strictly greater: last-write-wins by timestamp,
// not by position in the file, and equal timestamps keep the existing entry.
func (a *aggregator) fold(rec history.Record) {
	if ts, ok := a.byCommand[rec.Command]; !ok || rec.Timestamp > ts {
		a.byCommand[rec.Command] = rec.Timestamp
	}
}

// records materializes the map into the final output order: timestamp
// ascending, ties broken by command string ascending.
func (a *aggregator) records() []history.Record {
	out := make([]history.Record, 0, len(a.byCommand))
	for command, ts := range a.byCommand {
		out = append(out, history.Record{Timestamp: ts, Command: command})
	}
	slices.SortFunc(out, history.Compare)
	return out
}
