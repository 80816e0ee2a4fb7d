package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// FileStore persists items in the classic flat-text datafile format:
// one "[N]" section per item followed by key=value lines, sections
// separated by blank lines. The format carries no item IDs, so Load
// assigns fresh ones; identity is not stable across reloads.
//
// Multi-line field values are not representable in this format; use the
// badger or sqlite backend for books with such fields.
type FileStore struct {
	path string
}

// NewFileStore returns a store over the datafile at path. The file is
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

const fileHeader = `# rolodex addressbook file
# This file was generated; comments and formatting are not preserved.
`

// Load reads the datafile. A missing file is an empty book.
func (s *FileStore) Load(ctx context.Context) ([]*book.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open datafile: %w", err)
	}
	defer f.Close()

	var (
		items   []*book.Item
		current *book.Item
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			current = book.NewItem()
			items = append(items, current)
		default:
			if current == nil {
				continue // stray line before the first section
			}
			key, value, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			current.SetString(strings.TrimSpace(key), value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read datafile: %w", err)
	}
	return items, nil
}

// Save writes the whole book, replacing the datafile atomically via a
// temp file rename.
func (s *FileStore) Save(ctx context.Context, items []*book.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(fileHeader)
	for i, it := range items {
		fmt.Fprintf(&sb, "\n[%d]\n", i)
		for _, f := range book.StandardFields {
			if v := it.GetString(f.Name); v != "" {
				fmt.Fprintf(&sb, "%s=%s\n", f.Name, v)
			}
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("write datafile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace datafile: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}
