// Package filter implements the import/export converters for
// address-book interchange formats. Each filter moves whole books
// between an io stream and a book.Database; none of them touches
// persistent storage.
package filter

import (
	"fmt"
	"io"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// Importer reads items from a stream into a database.
type Importer interface {
	Import(r io.Reader, db *book.Database) error
}

// Exporter writes every item of a database to a stream.
type Exporter interface {
	Export(w io.Writer, db *book.Database) error
}

// Filter is one registered interchange format. Importer or Exporter is
// nil when the direction is unsupported.
type Filter struct {
	Name        string
	Description string
	Importer    Importer
	Exporter    Exporter
}

// registry lists the supported formats in display order.
var registry = []Filter{
	{"ldif", "LDIF / Netscape addressbook", LDIF{}, LDIF{}},
	{"vcard", "vCard 3.0 file", VCard{}, VCard{}},
	{"csv", "comma separated values", CSV{}, CSV{}},
	{"text", "plain text", nil, Text{}},
	{"mutt", "mutt alias", nil, Mutt{}},
}

// Formats returns every registered filter.
func Formats() []Filter {
	out := make([]Filter, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the filter registered under name.
func Lookup(name string) (Filter, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}
	return Filter{}, false
}

// Convert imports a whole book in inFormat from in and exports it in
// outFormat to out.
func Convert(inFormat string, in io.Reader, outFormat string, out io.Writer) error {
	src, ok := Lookup(inFormat)
	if !ok {
		return fmt.Errorf("unknown input format %q", inFormat)
	}
	if src.Importer == nil {
		return fmt.Errorf("format %q does not support import", inFormat)
	}

	dst, ok := Lookup(outFormat)
	if !ok {
		return fmt.Errorf("unknown output format %q", outFormat)
	}
	if dst.Exporter == nil {
		return fmt.Errorf("format %q does not support export", outFormat)
	}

	db := book.NewDatabase()
	if err := src.Importer.Import(in, db); err != nil {
		return fmt.Errorf("import %s: %w", inFormat, err)
	}
	if err := dst.Exporter.Export(out, db); err != nil {
		return fmt.Errorf("export %s: %w", outFormat, err)
	}
	return nil
}
