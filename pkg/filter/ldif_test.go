package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmarchetti/rolodex/pkg/book"
)

func TestLDIFImport(t *testing.T) {
	t.Run("SingleRecord", func(t *testing.T) {
		input := "dn: cn=John Doe,mail=john@example.com\n" +
			"cn: John Doe\n" +
			"mail: john@example.com\n" +
			"homephone: 555-0100\n" +
			"objectclass: person\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))

		require.Equal(t, 1, db.Len())
		item := db.Items()[0]
		assert.Equal(t, "John Doe", item.GetString("name"))
		assert.Equal(t, "john@example.com", item.GetString("email"))
		assert.Equal(t, "555-0100", item.GetString("phone"))
	})

	t.Run("Base64Attribute", func(t *testing.T) {
		input := "cn:: Sm9obiBEb2U=\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))

		require.Equal(t, 1, db.Len())
		assert.Equal(t, "John Doe", db.Items()[0].GetString("name"))
	})

	t.Run("FoldedAttribute", func(t *testing.T) {
		input := "cn: John Doe\n" +
			"description: a note\n" +
			"  spanning lines\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))

		require.Equal(t, 1, db.Len())
		assert.Equal(t, "a note spanning lines", db.Items()[0].GetString("notes"))
	})

	t.Run("MultipleRecords", func(t *testing.T) {
		input := "cn: A\n\ncn: B\n\ncn: C\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))
		assert.Equal(t, 3, db.Len())
	})

	t.Run("MultipleMailAttributes", func(t *testing.T) {
		input := "cn: A\nmail: a@example.com\nmail: b@example.com\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))
		assert.Equal(t, "a@example.com,b@example.com", db.Items()[0].GetString("email"))
	})

	t.Run("MalformedLineSkippedNotFatal", func(t *testing.T) {
		input := "cn: John Doe\n" +
			"garbage without separator\n" +
			"mail:: not-valid-base64!\n" +
			"homeurl: https://example.com\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))

		require.Equal(t, 1, db.Len())
		item := db.Items()[0]
		assert.Equal(t, "John Doe", item.GetString("name"))
		assert.Equal(t, "https://example.com", item.GetString("url"))
		assert.Empty(t, item.GetString("email"))
	})

	t.Run("CellphoneAlias", func(t *testing.T) {
		input := "cn: A\ncellphone: 555-0111\n"

		db := book.NewDatabase()
		require.NoError(t, LDIF{}.Import(strings.NewReader(input), db))
		assert.Equal(t, "555-0111", db.Items()[0].GetString("mobile"))
	})
}

func TestLDIFExport(t *testing.T) {
	db := book.NewDatabase()
	item := book.NewItem()
	item.SetString("name", "John Doe")
	item.SetString("email", "john@example.com")
	item.SetString("notes", "hällo wörld") // forces base64
	db.Add(item)

	var buf bytes.Buffer
	require.NoError(t, LDIF{}.Export(&buf, db))
	out := buf.String()

	assert.Contains(t, out, "dn: cn=John Doe,mail=john@example.com\n")
	assert.Contains(t, out, "cn: John Doe\n")
	assert.Contains(t, out, "mail: john@example.com\n")
	assert.Contains(t, out, "description:: ")
	assert.Contains(t, out, "objectclass: person\n")
	assert.True(t, strings.HasSuffix(out, "\n\n"), "record must end with a blank line")
}

func TestLDIFRoundTrip(t *testing.T) {
	db := book.NewDatabase()

	a := book.NewItem()
	a.SetString("name", "John Doe")
	a.SetString("email", "john@example.com")
	a.SetString("city", "Springfield")
	a.SetString("notes", strings.Repeat("all work and no play ", 10))
	db.Add(a)

	b := book.NewItem()
	b.SetString("name", "Jane Röe") // non-ASCII name
	b.SetString("mobile", "555-0123")
	db.Add(b)

	var buf bytes.Buffer
	require.NoError(t, LDIF{}.Export(&buf, db))

	got := book.NewDatabase()
	require.NoError(t, LDIF{}.Import(&buf, got))
	require.Equal(t, 2, got.Len())

	assert.Equal(t, a.Fields, got.Items()[0].Fields)
	assert.Equal(t, b.Fields, got.Items()[1].Fields)
}
