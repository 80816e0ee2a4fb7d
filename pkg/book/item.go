// Package book implements the address-book record model: items with
// named fields, and an in-memory database with search and sort over
// them. Persistence lives in pkg/book/store; import and export live in
// pkg/filter. Both exchange raw field bytes with items, never touching
// each other directly.
package book

import "github.com/google/uuid"

// Field describes one named attribute of an item.
type Field struct {
	Name  string
	Label string
}

// StandardFields is the field set every item can carry, in display
// order. Filters map foreign attribute names onto these.
var StandardFields = []Field{
	{"name", "Name"},
	{"email", "E-mail"},
	{"address", "Address"},
	{"address2", "Address2"},
	{"city", "City"},
	{"state", "State/Province"},
	{"zip", "ZIP/Postal Code"},
	{"country", "Country"},
	{"phone", "Home Phone"},
	{"workphone", "Work Phone"},
	{"fax", "Fax"},
	{"mobile", "Mobile"},
	{"nick", "Nickname/Alias"},
	{"url", "URL"},
	{"notes", "Notes"},
	{"custom1", "Custom1"},
	{"custom2", "Custom2"},
	{"custom3", "Custom3"},
	{"custom4", "Custom4"},
	{"custom5", "Custom5"},
}

// IsStandardField reports whether name is one of StandardFields.
func IsStandardField(name string) bool {
	for _, f := range StandardFields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Item is one address-book record. Field values are stored as strings
// but may carry arbitrary bytes; Get and Set exchange byte slices so
// codecs never have to assume printable text.
type Item struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// NewItem returns an empty item with a fresh ID.
func NewItem() *Item {
	return &Item{
		ID:     uuid.NewString(),
		Fields: make(map[string]string),
	}
}

// Get returns the raw bytes of a field, or nil when unset.
func (it *Item) Get(field string) []byte {
	v, ok := it.Fields[field]
	if !ok {
		return nil
	}
	return []byte(v)
}

// Set stores the raw bytes of a field. An empty value clears it.
func (it *Item) Set(field string, value []byte) {
	if len(value) == 0 {
		delete(it.Fields, field)
		return
	}
	if it.Fields == nil {
		it.Fields = make(map[string]string)
	}
	it.Fields[field] = string(value)
}

// GetString returns a field as a string, empty when unset.
func (it *Item) GetString(field string) string {
	return it.Fields[field]
}

// SetString stores a field from a string. An empty value clears it.
func (it *Item) SetString(field, value string) {
	if value == "" {
		delete(it.Fields, field)
		return
	}
	if it.Fields == nil {
		it.Fields = make(map[string]string)
	}
	it.Fields[field] = value
}

// Name returns the item's name field.
func (it *Item) Name() string {
	return it.Fields["name"]
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	cp := &Item{ID: it.ID, Fields: make(map[string]string, len(it.Fields))}
	for k, v := range it.Fields {
		cp.Fields[k] = v
	}
	return cp
}
