/*
Package serialization renders cleaned history records back into the on-disk
text format.
*/
package serialization

import (
	"fmt"
	"strings"

	"github.com/shellkit/histclean/internal/core/domain/history"
	"github.com/shellkit/histclean/internal/core/ports"
)

// Serializer implements the ports.HistorySerializer interface.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() ports.HistorySerializer {
	return &Serializer{}
}

// Render produces the on-disk form of records: a "#<timestamp>" line followed
// by the command line, per record, with no blank separators. An empty slice
// renders as the empty string. The caller is responsible for passing records
// already in their final order.
func (*Serializer) Render(records []history.Record) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "#%d\n%s\n", r.Timestamp, r.Command)
	}
	return b.String()
}
