package historyparsing

import (
	"regexp"
	"strings"
)

// timestampMarker matches a timestamp marker line: '#' followed by one or
// more digits and nothing else.
var timestampMarker = regexp.MustCompile(`^#\d+$`)

/*
unit is one closed-out parse unit: the marker that was pending when the unit
closed (if any) and the raw accumulated command text, still carrying its
"; " join separators.
*/
type unit struct {
	marker    string
	hasMarker bool
	command   string
}

/*
accumulator is the parser state machine: the pending timestamp marker and the
command buffer carried across lines. Its two close-out triggers are
symmetric: feed closes a unit when a new marker arrives after command text,
finish closes whatever remains at end of input.
*/
type accumulator struct {
	pending    string
	hasPending bool
	buf        strings.Builder
}

// feed advances the state machine by one line. It returns ok=true with a
// closed unit when the line is a timestamp marker arriving while command
// text is buffered; every other line only updates internal state.
func (a *accumulator) feed(line string) (u unit, ok bool) {
	if timestampMarker.MatchString(line) {
		if a.buf.Len() == 0 {
			// Consecutive markers collapse to the last one seen.
			a.pending = line
			a.hasPending = true
			return unit{}, false
		}
		u = a.close()
		a.pending = line
		a.hasPending = true
		return u, true
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		// Blank lines neither break accumulation nor count as content.
		return unit{}, false
	}
	a.buf.WriteString(trimmed)
	a.buf.WriteString("; ")
	return unit{}, false
}

// finish closes out whatever the accumulator still holds at end of input.
// ok is false when there is neither a pending marker nor buffered text.
func (a *accumulator) finish() (u unit, ok bool) {
	if !a.hasPending && a.buf.Len() == 0 {
		return unit{}, false
	}
	return a.close(), true
}

func (a *accumulator) close() unit {
	u := unit{marker: a.pending, hasMarker: a.hasPending, command: a.buf.String()}
	a.pending = ""
	a.hasPending = false
	a.buf.Reset()
	return u
}
