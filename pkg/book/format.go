package book

import (
	"fmt"
	"strings"
)

// FormatItem renders an item through a placeholder format string such
// as "{nick} ({name}): {mobile}". Unknown placeholders render empty.
func FormatItem(it *Item, format string) string {
	var sb strings.Builder
	for {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			sb.WriteString(format)
			return sb.String()
		}
		close := strings.IndexByte(format[open:], '}')
		if close < 0 {
			sb.WriteString(format)
			return sb.String()
		}
		sb.WriteString(format[:open])
		sb.WriteString(it.GetString(format[open+1 : open+close]))
		format = format[open+close+1:]
	}
}

// ValidateFormat checks that every placeholder in a format string names
// a standard field and that braces are balanced.
func ValidateFormat(format string) error {
	for {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			if strings.IndexByte(format, '}') >= 0 {
				return fmt.Errorf("unbalanced '}' in format string")
			}
			return nil
		}
		close := strings.IndexByte(format[open:], '}')
		if close < 0 {
			return fmt.Errorf("unbalanced '{' in format string")
		}
		name := format[open+1 : open+close]
		if !IsStandardField(name) {
			return fmt.Errorf("unknown field %q in format string", name)
		}
		format = format[open+close+1:]
	}
}
