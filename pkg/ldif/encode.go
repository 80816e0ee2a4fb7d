package ldif

import "math"

// Encode serializes a (type, value) pair into an LDIF text fragment:
// one or more physical lines folded at LineWidth columns, terminated by
// a trailing newline. Inputs are never mutated; the returned buffer is
// freshly allocated and owned by the caller.
//
// The value is written as plain text when it is entirely printable
// ASCII and does not start with whitespace or ':'; otherwise it is
// base64-encoded after a double colon. The column counter replicates
// the original codec: the separator space is not counted, and counting
// restarts at 1 after every fold.
//
// Returns ErrSizeOverflow when the worst-case output size computation
// overflows; encoding otherwise succeeds for any byte sequence.
func Encode(typ string, value []byte) ([]byte, error) {
	size, err := sizeNeeded(len(typ), len(value))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, size)
	buf = append(buf, typ...)
	buf = append(buf, ':')
	col := len(typ) + 1

	if useBase64(value) {
		buf = append(buf, ':', ' ')
		col += 2
		buf = appendBase64Folded(buf, value, col)
	} else {
		buf = append(buf, ' ')
		for _, b := range value {
			if col > LineWidth {
				buf = append(buf, '\n', ' ')
				col = 1
			}
			buf = append(buf, b)
			col++
		}
	}

	buf = append(buf, '\n')
	return buf, nil
}

// useBase64 reports whether value requires the base64 representation:
// a first byte of whitespace or ':', or any non-printable or non-ASCII
// byte anywhere. An empty value encodes as plain text.
func useBase64(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	if value[0] < 0x80 && (isSpace(value[0]) || value[0] == ':') {
		return true
	}
	for _, b := range value {
		if !isPrint(b) {
			return true
		}
	}
	return false
}

// appendBase64Folded encodes value 3 bytes at a time into 4 base64
// symbols, folding at LineWidth. A final partial group is zero-padded
// to 3 bytes, encoded normally, and the last 1 or 2 emitted symbols are
// then overwritten with '=' (fold bytes are skipped when locating
// them: padding replaces symbols, never the fold's newline or space).
func appendBase64Folded(buf []byte, value []byte, col int) []byte {
	// Buffer offsets of the last four emitted symbols, for padding.
	var last [4]int

	emit := func(c byte) {
		if col > LineWidth {
			buf = append(buf, '\n', ' ')
			col = 1
		}
		last[0], last[1], last[2] = last[1], last[2], last[3]
		last[3] = len(buf)
		buf = append(buf, c)
		col++
	}

	emitGroup := func(b0, b1, b2 byte) {
		bits := uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
		emit(base64Alphabet[bits>>18&0x3f])
		emit(base64Alphabet[bits>>12&0x3f])
		emit(base64Alphabet[bits>>6&0x3f])
		emit(base64Alphabet[bits&0x3f])
	}

	i := 0
	for ; i+3 <= len(value); i += 3 {
		emitGroup(value[i], value[i+1], value[i+2])
	}

	if rem := len(value) - i; rem > 0 {
		var group [3]byte
		copy(group[:], value[i:])
		emitGroup(group[0], group[1], group[2])

		// 1 leftover byte needs 2 pad symbols, 2 leftover need 1.
		for pad := 3 - rem; pad > 0; pad-- {
			buf[last[4-pad]] = '='
		}
	}

	return buf
}

// sizeNeeded computes the worst-case encoded size for a type of tlen
// bytes and a value of vlen bytes: the base64 expansion (4/3 plus fixed
// overhead), separator and newline bytes, and two extra bytes per
// LineWidth chunk for folding. Every step is checked for integer
// overflow so Encode can never silently under-allocate.
func sizeNeeded(tlen, vlen int) (int, error) {
	if tlen < 0 || vlen < 0 {
		return 0, ErrSizeOverflow
	}
	if vlen > math.MaxInt/4 {
		return 0, ErrSizeOverflow
	}
	b64len := vlen * 4 / 3
	if b64len > math.MaxInt-3 {
		return 0, ErrSizeOverflow
	}
	b64len += 3

	if tlen > math.MaxInt-b64len || tlen+b64len > math.MaxInt-3 {
		return 0, ErrSizeOverflow
	}
	folds := (b64len + tlen + 3) / LineWidth
	if folds > math.MaxInt/2 {
		return 0, ErrSizeOverflow
	}
	foldOverhead := folds * 2

	if tlen > math.MaxInt-4-b64len {
		return 0, ErrSizeOverflow
	}
	size := tlen + 4 + b64len
	if size > math.MaxInt-foldOverhead {
		return 0, ErrSizeOverflow
	}
	size += foldOverhead

	if size == math.MaxInt {
		return 0, ErrSizeOverflow
	}
	return size + 1, nil
}
