package ldif

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecord(t *testing.T) {
	t.Run("SingleRecord", func(t *testing.T) {
		r := NewReader(strings.NewReader("cn: John Doe\nmail: john@example.com\n"))

		rec, err := r.ReadRecord()
		require.NoError(t, err)
		require.Len(t, rec, 2)
		assert.Equal(t, "cn: John Doe", string(rec[0].Text))
		assert.Equal(t, "mail: john@example.com", string(rec[1].Text))

		_, err = r.ReadRecord()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("RecordsSeparatedByBlankLines", func(t *testing.T) {
		r := NewReader(strings.NewReader("cn: A\n\n\ncn: B\n\n"))

		rec, err := r.ReadRecord()
		require.NoError(t, err)
		require.Len(t, rec, 1)
		assert.Equal(t, "cn: A", string(rec[0].Text))

		rec, err = r.ReadRecord()
		require.NoError(t, err)
		require.Len(t, rec, 1)
		assert.Equal(t, "cn: B", string(rec[0].Text))

		_, err = r.ReadRecord()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("ContinuationLinesJoined", func(t *testing.T) {
		r := NewReader(strings.NewReader("description: first part\n second part\n third\n"))

		rec, err := r.ReadRecord()
		require.NoError(t, err)
		require.Len(t, rec, 1)
		assert.Equal(t, "description: first partsecond partthird", string(rec[0].Text))
		assert.Equal(t, []int{23, 34}, rec[0].Folds)
	})

	t.Run("NoSentinelBytesInjected", func(t *testing.T) {
		r := NewReader(strings.NewReader("cn: folded\n name\n"))

		rec, err := r.ReadRecord()
		require.NoError(t, err)
		assert.NotContains(t, string(rec[0].Text), "\x01")
	})

	t.Run("EmptyInput", func(t *testing.T) {
		r := NewReader(strings.NewReader(""))
		_, err := r.ReadRecord()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("OnlyBlankLines", func(t *testing.T) {
		r := NewReader(strings.NewReader("\n\n\n"))
		_, err := r.ReadRecord()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("MissingTrailingNewline", func(t *testing.T) {
		r := NewReader(strings.NewReader("cn: A"))
		rec, err := r.ReadRecord()
		require.NoError(t, err)
		require.Len(t, rec, 1)
		assert.Equal(t, "cn: A", string(rec[0].Text))
	})
}

func TestReaderDecodePipeline(t *testing.T) {
	input := "dn: cn=John Doe,mail=john@example.com\n" +
		"cn: John Doe\n" +
		"description: a note that was\n" +
		" folded across lines\n" +
		"jpegPhoto:: ////\n" +
		"\n"

	r := NewReader(strings.NewReader(input))
	rec, err := r.ReadRecord()
	require.NoError(t, err)
	require.Len(t, rec, 4)

	typ, value, err := Decode(rec[2].Text)
	require.NoError(t, err)
	assert.Equal(t, "description", typ)
	assert.Equal(t, "a note that wasfolded across lines", string(value))

	typ, value, err = Decode(rec[3].Text)
	require.NoError(t, err)
	assert.Equal(t, "jpegPhoto", typ)
	assert.Equal(t, []byte{0xff, 0xff, 0xff}, value)
}
