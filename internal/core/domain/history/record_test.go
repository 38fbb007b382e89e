package history

import "testing"

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "echo foo", "echo foo"},
		{"empty string", "", ""},
		{"only whitespace", " \t \n ", ""},
		{"leading and trailing spaces", "  echo foo  ", "echo foo"},
		{"internal run of spaces", "echo     foo", "echo foo"},
		{"tabs collapse like spaces", "\t\techo\tfoo\t", "echo foo"},
		{"trailing join separator stripped", "echo foo; echo bar; ", "echo foo; echo bar"},
		{"multiple trailing semicolons stripped", "echo foo;; ", "echo foo"},
		{"internal semicolons kept", "echo foo; echo bar", "echo foo; echo bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCommand(tt.in); got != tt.want {
				t.Errorf("NormalizeCommand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Record
		b    Record
		want int
	}{
		{"earlier timestamp first", Record{123, "zzz"}, Record{456, "aaa"}, -1},
		{"later timestamp last", Record{456, "aaa"}, Record{123, "zzz"}, 1},
		{"equal timestamps break on command", Record{123, "echo a"}, Record{123, "echo b"}, -1},
		{"equal timestamps reversed commands", Record{123, "echo b"}, Record{123, "echo a"}, 1},
		{"identical records", Record{123, "echo a"}, Record{123, "echo a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "empty command",
			err:  &ParseError{Kind: EmptyCommand, Timestamp: 456},
			want: "command was empty for timestamp 456",
		},
		{
			name: "orphan command",
			err:  &ParseError{Kind: OrphanCommand, Command: "echo foo"},
			want: "missing timestamp for command: echo foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
