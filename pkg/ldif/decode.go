package ldif

// Decode splits a joined logical attribute line of the form
// "type:[:] value" into its type and value. If a double colon separates
// type from value, the value is base64-encoded and Decode un-decodes it
// before returning.
//
// Decode rewrites line destructively and the returned value aliases it:
// no allocation is performed, and the caller must not reuse the buffer
// while the value is live, nor after an error (partial rewrites are not
// rolled back). Legacy continuation-marker bytes (0x01) embedded by an
// upstream line joiner are removed from the value.
//
// Returns:
//   - typ: attribute name, leading/trailing whitespace trimmed
//   - value: raw value bytes, base64-decoded when applicable
//   - error: ErrMissingSeparator, ErrMissingValue or ErrInvalidBase64Char
func Decode(line []byte) (typ string, value []byte, err error) {
	// Skip any leading space.
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}

	colon := -1
	for j := i; j < len(line); j++ {
		if line[j] == ':' {
			colon = j
			break
		}
	}
	if colon < 0 {
		return "", nil, ErrMissingSeparator
	}

	// Trim any space between type and ':'.
	end := colon
	for end > i && isSpace(line[end-1]) {
		end--
	}
	typ = string(line[i:end])

	// Double colon indicates a base64-encoded value.
	s := colon + 1
	b64 := false
	if s < len(line) && line[s] == ':' {
		s++
		b64 = true
	}

	// Skip space between the colon(s) and the value.
	for s < len(line) && isSpace(line[s]) {
		s++
	}
	if s >= len(line) {
		return "", nil, ErrMissingValue
	}

	// Delete continuation markers, compacting in place.
	d := s
	for p := s; p < len(line); p++ {
		if line[p] != continuationMarker {
			line[d] = line[p]
			d++
		}
	}
	raw := line[s:d]

	if !b64 {
		return typ, raw, nil
	}

	vlen, err := decodeBase64InPlace(raw)
	if err != nil {
		return "", nil, err
	}
	return typ, raw[:vlen], nil
}

// decodeBase64InPlace decodes 4-character base64 groups into 3-byte
// groups, overwriting buf front to back. The output never outruns the
// input (4 symbols shrink to 3 bytes), so the buffer is consumed before
// it is produced. Returns the decoded byte count.
//
// A '=' in the third position of a group ends decoding with 1 byte for
// that group; in the fourth position with 2 bytes. '=' anywhere else,
// any non-alphabet character, or a truncated trailing group is
// ErrInvalidBase64Char.
func decodeBase64InPlace(buf []byte) (int, error) {
	out := 0
	vlen := 0
	for i := 0; i < len(buf); i += 4 {
		if len(buf)-i < 3 {
			return 0, ErrInvalidBase64Char
		}

		n0 := symbolValue(buf[i])
		n1 := symbolValue(buf[i+1])
		if n0 == invalidSymbol || n1 == invalidSymbol {
			return 0, ErrInvalidBase64Char
		}
		b0 := n0<<2 | n1>>4
		b1 := (n1 & 0x0f) << 4

		if buf[i+2] == '=' {
			buf[out] = b0
			return vlen + 1, nil
		}
		n2 := symbolValue(buf[i+2])
		if n2 == invalidSymbol {
			return 0, ErrInvalidBase64Char
		}
		b1 |= n2 >> 2
		b2 := (n2 & 0x03) << 6

		if len(buf)-i < 4 {
			return 0, ErrInvalidBase64Char
		}
		if buf[i+3] == '=' {
			buf[out] = b0
			buf[out+1] = b1
			return vlen + 2, nil
		}
		n3 := symbolValue(buf[i+3])
		if n3 == invalidSymbol {
			return 0, ErrInvalidBase64Char
		}
		b2 |= n3

		buf[out] = b0
		buf[out+1] = b1
		buf[out+2] = b2
		out += 3
		vlen += 3
	}
	return vlen, nil
}

// symbolValue maps a base64 symbol to its 6-bit value, or invalidSymbol
// for anything outside the alphabet (including '=' and non-ASCII bytes).
func symbolValue(b byte) byte {
	if b&0x80 != 0 {
		return invalidSymbol
	}
	return base64Inverse[b&0x7f]
}
