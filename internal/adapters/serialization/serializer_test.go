package serialization

import (
	"testing"

	"github.com/shellkit/histclean/internal/core/domain/history"
)

func TestSerializer_Render(t *testing.T) {
	serializer := NewSerializer()

	tests := []struct {
		name    string
		records []history.Record
		want    string
	}{
		{
			name:    "no records render as empty text",
			records: nil,
			want:    "",
		},
		{
			name:    "single record",
			records: []history.Record{{Timestamp: 123, Command: "echo foo"}},
			want:    "#123\necho foo\n",
		},
		{
			name: "multiple records with no blank separators",
			records: []history.Record{
				{Timestamp: 123, Command: "echo foo"},
				{Timestamp: 456, Command: "echo bar"},
			},
			want: "#123\necho foo\n#456\necho bar\n",
		},
		{
			name:    "joined multi-line command stays on one line",
			records: []history.Record{{Timestamp: 456, Command: "echo foo; echo bar"}},
			want:    "#456\necho foo; echo bar\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := serializer.Render(tt.records); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
