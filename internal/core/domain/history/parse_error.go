package history

import "fmt"

// ParseErrorKind identifies which parsing rule a history unit violated.
type ParseErrorKind int

const (
	// MalformedTimestamp means a timestamp marker line did not parse as an
	// unsigned 32-bit integer.
	MalformedTimestamp ParseErrorKind = iota
	// EmptyCommand means a valid timestamp had no command text attached.
	EmptyCommand
	// OrphanCommand means command text appeared before any timestamp marker.
	OrphanCommand
)

/*
ParseError describes a single malformed history unit. Each unit that fails to
parse is reported and dropped; a ParseError never aborts the pipeline.

The fields populated depend on Kind: MalformedTimestamp carries Marker (the
offending marker text) and Command, EmptyCommand carries Timestamp, and
OrphanCommand carries Command.
*/
type ParseError struct {
	Kind      ParseErrorKind
	Timestamp uint32
	Marker    string
	Command   string
	Err       error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MalformedTimestamp:
		return fmt.Sprintf("malformed timestamp %q: %v, %s", e.Marker, e.Err, e.Command)
	case EmptyCommand:
		return fmt.Sprintf("command was empty for timestamp %d", e.Timestamp)
	case OrphanCommand:
		return fmt.Sprintf("missing timestamp for command: %s", e.Command)
	}
	return "invalid history entry"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
