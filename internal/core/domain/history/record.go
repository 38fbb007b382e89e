/*
Package history defines core domain entities for timestamped shell history.
*/
package history

import "strings"

/*
Record represents a single history entry: a command string and the epoch
timestamp at which it was last executed. This is a core domain entity.
*/
type Record struct {
	Timestamp uint32
	Command   string
}

// Compare orders records by timestamp ascending, then by command string
// ascending in byte order. This is the total order used for serialized output.
func Compare(a, b Record) int {
	switch {
	case a.Timestamp < b.Timestamp:
		return -1
	case a.Timestamp > b.Timestamp:
		return 1
	}
	return strings.Compare(a.Command, b.Command)
}

// NormalizeCommand collapses every whitespace run in s to a single space,
// strips leading and trailing whitespace, and removes trailing semicolons
// left behind by the multi-line join separator. The result is the canonical
// form a Record carries and the form the classifier matches against.
func NormalizeCommand(s string) string {
	return strings.TrimRight(strings.Join(strings.Fields(s), " "), ";")
}
