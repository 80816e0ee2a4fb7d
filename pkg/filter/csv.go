package filter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// CSV converts between comma-separated files and address-book items.
// The first row is a header of field names; unknown columns are
// ignored on import.
type CSV struct{}

// Import reads CSV rows from r.
func (CSV) Import(r io.Reader, db *book.Database) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if book.IsStandardField(name) {
			columns[i] = name
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		item := book.NewItem()
		for i, value := range row {
			if i < len(columns) && columns[i] != "" && value != "" {
				item.SetString(columns[i], value)
			}
		}
		if len(item.Fields) > 0 {
			db.Add(item)
		}
	}
}

// Export writes a header of every standard field name followed by one
// row per item.
func (CSV) Export(w io.Writer, db *book.Database) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, len(book.StandardFields))
	for _, f := range book.StandardFields {
		header = append(header, f.Name)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, item := range db.Items() {
		for i, name := range header {
			row[i] = item.GetString(name)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
