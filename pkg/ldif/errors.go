package ldif

import "errors"

// Codec errors. All decode errors are line-scoped and non-fatal: an
// import loop is expected to skip or report the offending line and
// continue with the next record. After a decode error the input buffer
// may have been partially rewritten and must not be reused.
var (
	// ErrMissingSeparator indicates the line contains no ':' between
	// attribute type and value.
	ErrMissingSeparator = errors.New("ldif: missing ':' separator")

	// ErrMissingValue indicates nothing but whitespace follows the
	// colon(s).
	ErrMissingValue = errors.New("ldif: missing value")

	// ErrInvalidBase64Char indicates a double-colon value contains a
	// character outside the base64 alphabet, misplaced padding, or a
	// truncated 4-character group.
	ErrInvalidBase64Char = errors.New("ldif: invalid base64 character")

	// ErrSizeOverflow indicates the worst-case output size computation
	// for Encode would overflow. The call fails rather than risking a
	// silent under-allocation.
	ErrSizeOverflow = errors.New("ldif: output size overflows")
)
