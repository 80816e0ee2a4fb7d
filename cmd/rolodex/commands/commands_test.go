package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmarchetti/rolodex/pkg/book"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty string", input: "", expected: []string{}},
		{name: "single field", input: "name", expected: []string{"name"}},
		{name: "multiple fields", input: "name,email,phone", expected: []string{"name", "email", "phone"}},
		{name: "spaces trimmed", input: "name, email , phone", expected: []string{"name", "email", "phone"}},
		{name: "empty items filtered out", input: "name,,email,", expected: []string{"name", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitFields(tt.input))
		})
	}
}

func TestHasAddress(t *testing.T) {
	db := book.NewDatabase()
	it := book.NewItem()
	it.SetString("name", "Alice")
	it.SetString("email", "alice@example.com, a.liddell@example.org")
	db.Add(it)

	assert.True(t, hasAddress(db, "alice@example.com"))
	assert.True(t, hasAddress(db, "A.Liddell@example.org"))
	assert.False(t, hasAddress(db, "bob@example.com"))
}

func TestPrintFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printFormats(&buf))

	out := buf.String()
	assert.Contains(t, out, "ldif")
	assert.Contains(t, out, "vcard")
	assert.Contains(t, out, "csv")
	assert.Contains(t, out, "mutt")
	// text and mutt are export-only
	assert.Contains(t, out, "no")
}

func TestIsSilent(t *testing.T) {
	assert.True(t, IsSilent(errSilent))
	assert.False(t, IsSilent(assert.AnError))
}
