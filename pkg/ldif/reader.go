package ldif

import (
	"bufio"
	"io"
)

// Line is one joined logical attribute line: the stitched text of a
// physical line and its continuations, plus the byte offsets in Text
// where each former physical line break occurred. No sentinel bytes are
// embedded; Folds carries the structure the legacy joiner encoded
// in-band.
type Line struct {
	Text  []byte
	Folds []int
}

// Reader reads LDIF records from a stream. A physical line beginning
// with a whitespace character continues the previous line; the
// whitespace character is dropped and the remainder appended. Records
// are separated by blank lines.
type Reader struct {
	s   *bufio.Scanner
	err error

	// One physical line of look-ahead, set when a record boundary has
	// been read past.
	peek     []byte
	havePeek bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{s: s}
}

// next returns the next physical line, honoring look-ahead.
func (r *Reader) next() ([]byte, bool) {
	if r.havePeek {
		r.havePeek = false
		return r.peek, true
	}
	if !r.s.Scan() {
		r.err = r.s.Err()
		return nil, false
	}
	return r.s.Bytes(), true
}

// ReadRecord returns the joined logical lines of the next record.
// It skips blank separator lines, then accumulates until the next blank
// line or end of input. io.EOF is returned once no records remain; any
// other error comes from the underlying stream.
func (r *Reader) ReadRecord() ([]Line, error) {
	if r.err != nil {
		return nil, r.err
	}

	var record []Line

	for {
		phys, ok := r.next()
		if !ok {
			if r.err != nil {
				return nil, r.err
			}
			if len(record) == 0 {
				return nil, io.EOF
			}
			return record, nil
		}

		if len(phys) == 0 {
			if len(record) == 0 {
				continue // leading separator
			}
			return record, nil
		}

		if isSpace(phys[0]) && len(record) > 0 {
			// Continuation: drop the single leading whitespace byte,
			// record the fold position, append the remainder.
			cur := &record[len(record)-1]
			cur.Folds = append(cur.Folds, len(cur.Text))
			cur.Text = append(cur.Text, phys[1:]...)
			continue
		}

		// Scanner reuses its buffer; the logical line owns a copy.
		text := make([]byte, len(phys), len(phys)+LineWidth)
		copy(text, phys)
		record = append(record, Line{Text: text})
	}
}
