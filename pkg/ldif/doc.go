// Package ldif implements the LDIF (LDAP Data Interchange Format)
// attribute codec used by the import and export filters.
//
// The codec is two pure, synchronous transforms with no shared state
// beyond read-only lookup tables:
//
//   - Decode splits one joined logical attribute line of the form
//     "type: value" or "type:: base64value" into its type and raw value
//     bytes, undoing base64 encoding in place.
//   - Encode serializes a (type, value) pair back into LDIF text,
//     folding physical lines at 76 columns and switching to base64 when
//     the value is not safely representable as plain text.
//
// Historically the line-joining stage marked former physical line
// breaks with an in-band sentinel byte (0x01) that the decoder later
// stripped. That is unsafe in general: nothing prevents the sentinel
// value from occurring in legitimate value bytes. Decode still strips
// the sentinel so existing pipelines keep working, but Reader is the
// supported joining stage: it returns joined lines together with
// explicit fold offsets and never injects sentinel bytes.
package ldif
