package historyparsing

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shellkit/histclean/internal/core/domain/history"
)

// parseResult flattens one sequence item for comparison in tests.
type parseResult struct {
	Record  history.Record
	ErrKind history.ParseErrorKind
	IsErr   bool
}

func collect(t *testing.T, input string) []parseResult {
	t.Helper()
	var got []parseResult
	for rec, err := range Records(input) {
		if err != nil {
			var perr *history.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Records() yielded a non-ParseError error: %v", err)
			}
			got = append(got, parseResult{ErrKind: perr.Kind, IsErr: true})
			continue
		}
		got = append(got, parseResult{Record: rec})
	}
	return got
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []parseResult
	}{
		{
			name:  "empty input yields nothing",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines only yield nothing",
			input: "\n   \n\t\n",
			want:  nil,
		},
		{
			name:  "two simple records",
			input: "#123\necho foo\n#456\necho bar\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 123, Command: "echo foo"}},
				{Record: history.Record{Timestamp: 456, Command: "echo bar"}},
			},
		},
		{
			name:  "no trailing newline on final command",
			input: "#123\necho foo",
			want: []parseResult{
				{Record: history.Record{Timestamp: 123, Command: "echo foo"}},
			},
		},
		{
			name:  "consecutive markers collapse to the last",
			input: "#123\n#234\necho foo\n#654\n#456\necho bar\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 234, Command: "echo foo"}},
				{Record: history.Record{Timestamp: 456, Command: "echo bar"}},
			},
		},
		{
			name:  "multi-line command joined with semicolons",
			input: "#456\necho foo\necho bar\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 456, Command: "echo foo; echo bar"}},
			},
		},
		{
			name:  "whitespace runs collapse to single spaces",
			input: "#345\n   echo     foo  \n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 345, Command: "echo foo"}},
			},
		},
		{
			name:  "tabs collapse too",
			input: "#123\n\t\t\techo\tfoo\t\t\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 123, Command: "echo foo"}},
			},
		},
		{
			name:  "trailing marker with no command is an empty-command error",
			input: "#123\necho foo\n#456\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 123, Command: "echo foo"}},
				{ErrKind: history.EmptyCommand, IsErr: true},
			},
		},
		{
			name:  "bare markers are all empty-command errors",
			input: "#123\n#456\n",
			want: []parseResult{
				{ErrKind: history.EmptyCommand, IsErr: true},
			},
		},
		{
			name:  "command before any marker is an orphan error",
			input: "echo foo\n#456\necho bar\n",
			want: []parseResult{
				{ErrKind: history.OrphanCommand, IsErr: true},
				{Record: history.Record{Timestamp: 456, Command: "echo bar"}},
			},
		},
		{
			name:  "orphan command at end of input",
			input: "echo foo\n",
			want: []parseResult{
				{ErrKind: history.OrphanCommand, IsErr: true},
			},
		},
		{
			name:  "timestamp overflowing uint32 is malformed",
			input: "#99999999999\necho foo\n",
			want: []parseResult{
				{ErrKind: history.MalformedTimestamp, IsErr: true},
			},
		},
		{
			name:  "malformed unit does not poison later units",
			input: "#99999999999\necho foo\n#456\necho bar\n",
			want: []parseResult{
				{ErrKind: history.MalformedTimestamp, IsErr: true},
				{Record: history.Record{Timestamp: 456, Command: "echo bar"}},
			},
		},
		{
			name:  "marker with trailing content is command text, not a marker",
			input: "#123\n#456 oops\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 123, Command: "#456 oops"}},
			},
		},
		{
			name:  "blank lines inside a command do not break accumulation",
			input: "#123\necho foo\n\necho bar\n",
			want: []parseResult{
				{Record: history.Record{Timestamp: 123, Command: "echo foo; echo bar"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Records(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecords_MalformedTimestampCarriesContext(t *testing.T) {
	var perr *history.ParseError
	for _, err := range Records("#99999999999\necho foo\n") {
		if err != nil && errors.As(err, &perr) {
			break
		}
	}
	if perr == nil {
		t.Fatal("expected a ParseError for an overflowing timestamp")
	}
	if perr.Marker != "#99999999999" {
		t.Errorf("ParseError.Marker = %q, want %q", perr.Marker, "#99999999999")
	}
	if perr.Command != "echo foo" {
		t.Errorf("ParseError.Command = %q, want %q", perr.Command, "echo foo")
	}
	if perr.Err == nil {
		t.Error("ParseError.Err should wrap the strconv failure")
	}
}

func TestRecords_StopsWhenConsumerBreaks(t *testing.T) {
	input := "#123\necho foo\n#456\necho bar\n#789\necho baz\n"
	var seen int
	for range Records(input) {
		seen++
		if seen == 1 {
			break
		}
	}
	if seen != 1 {
		t.Errorf("consumed %d items after break, want 1", seen)
	}
}
