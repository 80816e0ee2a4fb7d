package ldif

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlain(t *testing.T) {
	t.Run("SimpleAttribute", func(t *testing.T) {
		typ, value, err := Decode([]byte("cn: John Doe"))
		require.NoError(t, err)
		assert.Equal(t, "cn", typ)
		assert.Equal(t, []byte("John Doe"), value)
		assert.Len(t, value, 8)
	})

	t.Run("LeadingWhitespaceSkipped", func(t *testing.T) {
		typ, value, err := Decode([]byte("   cn: x"))
		require.NoError(t, err)
		assert.Equal(t, "cn", typ)
		assert.Equal(t, []byte("x"), value)
	})

	t.Run("SpaceBeforeColonTrimmed", func(t *testing.T) {
		typ, value, err := Decode([]byte("cn  : x"))
		require.NoError(t, err)
		assert.Equal(t, "cn", typ)
		assert.Equal(t, []byte("x"), value)
	})

	t.Run("NoSpaceAfterColon", func(t *testing.T) {
		typ, value, err := Decode([]byte("mail:a@b.example"))
		require.NoError(t, err)
		assert.Equal(t, "mail", typ)
		assert.Equal(t, []byte("a@b.example"), value)
	})

	t.Run("ContinuationMarkersRemoved", func(t *testing.T) {
		typ, value, err := Decode([]byte("cn: John\x01\x01 Doe"))
		require.NoError(t, err)
		assert.Equal(t, "cn", typ)
		assert.Equal(t, []byte("John Doe"), value)
	})

	t.Run("ValueAliasesInput", func(t *testing.T) {
		line := []byte("cn: John Doe")
		_, value, err := Decode(line)
		require.NoError(t, err)
		require.True(t, &value[0] == &line[4], "value must alias the input buffer")
	})
}

func TestDecodeBase64(t *testing.T) {
	t.Run("PaddedValue", func(t *testing.T) {
		typ, value, err := Decode([]byte("cn:: Sm9obiBEb2U="))
		require.NoError(t, err)
		assert.Equal(t, "cn", typ)
		assert.Equal(t, []byte("John Doe"), value)
		assert.Len(t, value, 8)
	})

	t.Run("FullGroupsNoPadding", func(t *testing.T) {
		typ, value, err := Decode([]byte("desc:: QUJD"))
		require.NoError(t, err)
		assert.Equal(t, "desc", typ)
		assert.Equal(t, []byte("ABC"), value)
	})

	t.Run("DoublePadding", func(t *testing.T) {
		_, value, err := Decode([]byte("x:: QQ=="))
		require.NoError(t, err)
		assert.Equal(t, []byte("A"), value)
	})

	t.Run("SinglePadding", func(t *testing.T) {
		_, value, err := Decode([]byte("x:: QUI="))
		require.NoError(t, err)
		assert.Equal(t, []byte("AB"), value)
	})

	t.Run("BinaryBytes", func(t *testing.T) {
		_, value, err := Decode([]byte("jpegPhoto:: ////"))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xff, 0xff}, value)
	})

	t.Run("EmbeddedNUL", func(t *testing.T) {
		// "A\x00B" encodes to "QQBC".
		_, value, err := Decode([]byte("data:: QQBC"))
		require.NoError(t, err)
		assert.Equal(t, []byte{'A', 0x00, 'B'}, value)
	})

	t.Run("MarkersInsideEncoding", func(t *testing.T) {
		_, value, err := Decode([]byte("cn:: Sm9obiBE\x01\x01b2U="))
		require.NoError(t, err)
		assert.Equal(t, []byte("John Doe"), value)
	})

	t.Run("DecodesInPlace", func(t *testing.T) {
		line := []byte("cn:: Sm9obiBEb2U=")
		_, value, err := Decode(line)
		require.NoError(t, err)
		require.True(t, &value[0] == &line[5], "decoded bytes must overwrite the input buffer")
	})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"NoSeparator", "noseparatorhere", ErrMissingSeparator},
		{"EmptyLine", "", ErrMissingSeparator},
		{"OnlyWhitespace", "   ", ErrMissingSeparator},
		{"ColonThenNothing", "cn:", ErrMissingValue},
		{"ColonThenWhitespace", "cn:   ", ErrMissingValue},
		{"DoubleColonThenWhitespace", "cn::  ", ErrMissingValue},
		{"InvalidBase64Char", "cn:: not-valid-base64!", ErrInvalidBase64Char},
		{"HighBitByte", "cn:: QUJ\xc3", ErrInvalidBase64Char},
		{"PaddingInFirstPosition", "cn:: =QUJ", ErrInvalidBase64Char},
		{"PaddingInSecondPosition", "cn:: Q=JD", ErrInvalidBase64Char},
		{"TruncatedGroup", "cn:: QQ", ErrInvalidBase64Char},
		{"TruncatedSecondGroup", "cn:: QUJDQQ", ErrInvalidBase64Char},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.line))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeStopsAtPadding(t *testing.T) {
	// A '=' in the third position contributes one byte and ends the
	// value even when more text follows.
	_, value, err := Decode([]byte("x:: QQ==QUJD"))
	require.NoError(t, err)
	assert.Equal(t, []byte("A"), value)
}

func TestRoundTrip(t *testing.T) {
	values := [][]byte{
		[]byte("John Doe"),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		{0x00},
		{0x00, 0x01, 0x02, 0xfe, 0xff},
		[]byte(": starts with colon"),
		[]byte(" starts with space"),
		[]byte("line\nbreak"),
		bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 64),
		bytes.Repeat([]byte("x"), 200),
		[]byte("ünïcödé"),
	}

	for _, v := range values {
		t.Run("", func(t *testing.T) {
			enc, err := Encode("attr", v)
			require.NoError(t, err)

			// Join through the reader, as an import pipeline would.
			rec, err := NewReader(bytes.NewReader(enc)).ReadRecord()
			require.NoError(t, err)
			require.Len(t, rec, 1)

			typ, got, err := Decode(rec[0].Text)
			require.NoError(t, err)
			assert.Equal(t, "attr", typ)
			assert.Equal(t, v, got)
		})
	}
}

func TestRoundTripLegacyMarkers(t *testing.T) {
	// The historical joiner replaced each newline+space pair with two
	// sentinel bytes instead of stitching lines. Decode still accepts
	// that form.
	long := bytes.Repeat([]byte{0xab, 0xcd, 0xef}, 80)
	enc, err := Encode("blob", long)
	require.NoError(t, err)

	line := bytes.TrimSuffix(enc, []byte("\n"))
	line = bytes.ReplaceAll(line, []byte("\n "), []byte{0x01, 0x01})

	typ, got, err := Decode(line)
	require.NoError(t, err)
	assert.Equal(t, "blob", typ)
	assert.Equal(t, long, got)
}
