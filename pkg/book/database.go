package book

import (
	"sort"
	"strings"
)

// DefaultSearchFields are the fields Find scans when none are given.
var DefaultSearchFields = []string{"name", "email", "nick"}

// Database is the in-memory collection of items. It is not safe for
// concurrent mutation; the CLI drives it from a single goroutine.
type Database struct {
	items []*Item
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// Load replaces the database contents.
func (db *Database) Load(items []*Item) {
	db.items = items
}

// Add appends an item.
func (db *Database) Add(it *Item) {
	db.items = append(db.items, it)
}

// Remove deletes the item with the given ID, reporting whether it was
// present.
func (db *Database) Remove(id string) bool {
	for i, it := range db.items {
		if it.ID == id {
			db.items = append(db.items[:i], db.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the items in their current order. The slice is shared;
// callers must not mutate its structure.
func (db *Database) Items() []*Item {
	return db.items
}

// Len returns the number of items.
func (db *Database) Len() int {
	return len(db.items)
}

// Find returns the items whose listed fields contain query as a
// case-insensitive substring. With no fields given it searches
// DefaultSearchFields.
func (db *Database) Find(query string, fields ...string) []*Item {
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}
	needle := strings.ToLower(query)

	var matches []*Item
	for _, it := range db.items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(it.GetString(f)), needle) {
				matches = append(matches, it)
				break
			}
		}
	}
	return matches
}

// SortBy stably orders items by the given field, case-insensitively.
// Items missing the field sort last.
func (db *Database) SortBy(field string) {
	sort.SliceStable(db.items, func(i, j int) bool {
		a := db.items[i].GetString(field)
		b := db.items[j].GetString(field)
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})
}

// SortBySurname orders items by the last whitespace-separated word of
// the name field, then by full name.
func (db *Database) SortBySurname() {
	sort.SliceStable(db.items, func(i, j int) bool {
		a, b := surname(db.items[i].Name()), surname(db.items[j].Name())
		if a != b {
			return a < b
		}
		return strings.ToLower(db.items[i].Name()) < strings.ToLower(db.items[j].Name())
	})
}

func surname(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}
