package filter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmarchetti/rolodex/pkg/book"
)

func TestRegistry(t *testing.T) {
	t.Run("AllFormatsRegistered", func(t *testing.T) {
		names := make([]string, 0)
		for _, f := range Formats() {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"ldif", "vcard", "csv", "text", "mutt"}, names)
	})

	t.Run("ExportOnlyFormats", func(t *testing.T) {
		for _, name := range []string{"text", "mutt"} {
			f, ok := Lookup(name)
			require.True(t, ok)
			assert.Nil(t, f.Importer)
			assert.NotNil(t, f.Exporter)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, ok := Lookup("palm")
		assert.False(t, ok)
	})
}

func TestConvert(t *testing.T) {
	t.Run("LDIFToVCard", func(t *testing.T) {
		input := "cn: John Doe\nmail: john@example.com\n"

		var out bytes.Buffer
		require.NoError(t, Convert("ldif", strings.NewReader(input), "vcard", &out))
		assert.Contains(t, out.String(), "FN:John Doe\n")
		assert.Contains(t, out.String(), "EMAIL;TYPE=INTERNET:john@example.com\n")
	})

	t.Run("UnknownInputFormat", func(t *testing.T) {
		err := Convert("palm", strings.NewReader(""), "text", &bytes.Buffer{})
		assert.ErrorContains(t, err, "unknown input format")
	})

	t.Run("ImportFromExportOnlyFormat", func(t *testing.T) {
		err := Convert("text", strings.NewReader(""), "ldif", &bytes.Buffer{})
		assert.ErrorContains(t, err, "does not support import")
	})
}

func TestCSV(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		db := book.NewDatabase()
		item := book.NewItem()
		item.SetString("name", "John Doe")
		item.SetString("email", "john@example.com")
		item.SetString("notes", "has, comma")
		db.Add(item)

		var buf bytes.Buffer
		require.NoError(t, CSV{}.Export(&buf, db))

		got := book.NewDatabase()
		require.NoError(t, CSV{}.Import(&buf, got))
		require.Equal(t, 1, got.Len())
		assert.Equal(t, item.Fields, got.Items()[0].Fields)
	})

	t.Run("UnknownColumnsIgnored", func(t *testing.T) {
		input := "name,shoesize\nJohn,44\n"

		db := book.NewDatabase()
		require.NoError(t, CSV{}.Import(strings.NewReader(input), db))
		require.Equal(t, 1, db.Len())
		assert.Equal(t, map[string]string{"name": "John"}, db.Items()[0].Fields)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		db := book.NewDatabase()
		require.NoError(t, CSV{}.Import(strings.NewReader(""), db))
		assert.Equal(t, 0, db.Len())
	})
}

func TestTextExport(t *testing.T) {
	db := book.NewDatabase()
	item := book.NewItem()
	item.SetString("name", "John Doe")
	item.SetString("email", "john@example.com")
	db.Add(item)

	var buf bytes.Buffer
	require.NoError(t, Text{}.Export(&buf, db))

	assert.Contains(t, buf.String(), "John Doe\n")
	assert.Contains(t, buf.String(), "  E-mail: john@example.com\n")
}

func TestMuttExport(t *testing.T) {
	t.Run("AliasLines", func(t *testing.T) {
		db := book.NewDatabase()

		a := book.NewItem()
		a.SetString("name", "John Doe")
		a.SetString("email", "john@example.com,second@example.com")
		db.Add(a)

		b := book.NewItem()
		b.SetString("name", "Jane Roe")
		b.SetString("nick", "jr")
		b.SetString("email", "jane@example.com")
		db.Add(b)

		noMail := book.NewItem()
		noMail.SetString("name", "No Mail")
		db.Add(noMail)

		var buf bytes.Buffer
		require.NoError(t, Mutt{}.Export(&buf, db))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "alias john.doe John Doe <john@example.com>", lines[0])
		assert.Equal(t, "alias jr Jane Roe <jane@example.com>", lines[1])
	})

	t.Run("DuplicateAliasesDisambiguated", func(t *testing.T) {
		db := book.NewDatabase()
		for _, addr := range []string{"a@example.com", "b@example.com"} {
			item := book.NewItem()
			item.SetString("name", "John Doe")
			item.SetString("email", addr)
			db.Add(item)
		}

		var buf bytes.Buffer
		require.NoError(t, Mutt{}.Export(&buf, db))

		assert.Contains(t, buf.String(), "alias john.doe John Doe <a@example.com>")
		assert.Contains(t, buf.String(), "alias john.doe1 John Doe <b@example.com>")
	})
}
