package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// Text is the human-readable export: one labeled block per item.
// Import is not supported; the format is for reading, not round trips.
type Text struct{}

const textRule = "--------------------------------------------------\n"

// Export writes every item as a labeled block.
func (Text) Export(w io.Writer, db *book.Database) error {
	for _, item := range db.Items() {
		var sb strings.Builder
		sb.WriteString(textRule)
		fmt.Fprintf(&sb, "%s\n", item.GetString("name"))

		for _, f := range book.StandardFields {
			if f.Name == "name" {
				continue
			}
			if v := item.GetString(f.Name); v != "" {
				fmt.Fprintf(&sb, "  %s: %s\n", f.Label, v)
			}
		}
		sb.WriteString("\n")

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
