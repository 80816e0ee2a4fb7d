package filter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// VCard converts between vCard 3.0 files and address-book items. The
// importer accepts the common 2.1 spellings too (bare type parameters,
// either folding style).
type VCard struct{}

// Import reads vCards from r, one item per BEGIN/END pair.
func (VCard) Import(r io.Reader, db *book.Database) error {
	lines, err := unfoldVCard(r)
	if err != nil {
		return err
	}

	var item *book.Item
	for _, line := range lines {
		head, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		prop, params, _ := strings.Cut(head, ";")
		prop = strings.ToUpper(strings.TrimSpace(prop))
		params = strings.ToUpper(params)

		switch prop {
		case "BEGIN":
			if strings.EqualFold(value, "VCARD") {
				item = book.NewItem()
			}
		case "END":
			if item != nil && len(item.Fields) > 0 {
				db.Add(item)
			}
			item = nil
		}
		if item == nil {
			continue
		}

		switch prop {
		case "FN":
			item.SetString("name", unescapeVCard(value))
		case "N":
			if item.GetString("name") == "" {
				parts := strings.Split(value, ";")
				family := unescapeVCard(parts[0])
				given := ""
				if len(parts) > 1 {
					given = unescapeVCard(parts[1])
				}
				item.SetString("name", strings.TrimSpace(given+" "+family))
			}
		case "EMAIL":
			addr := unescapeVCard(value)
			if existing := item.GetString("email"); existing != "" {
				addr = existing + "," + addr
			}
			item.SetString("email", addr)
		case "TEL":
			field := "phone"
			switch {
			case strings.Contains(params, "CELL"):
				field = "mobile"
			case strings.Contains(params, "WORK"):
				field = "workphone"
			case strings.Contains(params, "FAX"):
				field = "fax"
			}
			if item.GetString(field) == "" {
				item.SetString(field, unescapeVCard(value))
			}
		case "ADR":
			// pobox;ext;street;locality;region;code;country
			parts := strings.Split(value, ";")
			for i, field := range []string{"", "", "address", "city", "state", "zip", "country"} {
				if field == "" || i >= len(parts) {
					continue
				}
				if v := unescapeVCard(parts[i]); v != "" {
					item.SetString(field, v)
				}
			}
		case "NICKNAME":
			nick, _, _ := strings.Cut(value, ",")
			item.SetString("nick", unescapeVCard(nick))
		case "URL":
			item.SetString("url", unescapeVCard(value))
		case "NOTE":
			item.SetString("notes", unescapeVCard(value))
		}
	}
	return nil
}

// Export writes one vCard 3.0 per item.
func (VCard) Export(w io.Writer, db *book.Database) error {
	var sb strings.Builder
	for _, item := range db.Items() {
		sb.Reset()
		sb.WriteString("BEGIN:VCARD\nVERSION:3.0\n")

		name := item.GetString("name")
		fmt.Fprintf(&sb, "FN:%s\n", escapeVCard(name))
		fmt.Fprintf(&sb, "N:%s\n", structuredName(name))

		for _, addr := range strings.Split(item.GetString("email"), ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				fmt.Fprintf(&sb, "EMAIL;TYPE=INTERNET:%s\n", escapeVCard(addr))
			}
		}

		for _, tel := range []struct{ field, typ string }{
			{"phone", "HOME"}, {"workphone", "WORK"}, {"mobile", "CELL"}, {"fax", "FAX"},
		} {
			if v := item.GetString(tel.field); v != "" {
				fmt.Fprintf(&sb, "TEL;TYPE=%s:%s\n", tel.typ, escapeVCard(v))
			}
		}

		if hasAnyField(item, "address", "city", "state", "zip", "country") {
			fmt.Fprintf(&sb, "ADR;TYPE=HOME:;;%s;%s;%s;%s;%s\n",
				escapeVCard(item.GetString("address")),
				escapeVCard(item.GetString("city")),
				escapeVCard(item.GetString("state")),
				escapeVCard(item.GetString("zip")),
				escapeVCard(item.GetString("country")))
		}

		if v := item.GetString("nick"); v != "" {
			fmt.Fprintf(&sb, "NICKNAME:%s\n", escapeVCard(v))
		}
		if v := item.GetString("url"); v != "" {
			fmt.Fprintf(&sb, "URL:%s\n", escapeVCard(v))
		}
		if v := item.GetString("notes"); v != "" {
			fmt.Fprintf(&sb, "NOTE:%s\n", escapeVCard(v))
		}

		sb.WriteString("END:VCARD\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// unfoldVCard reads physical lines and joins continuations (lines
// beginning with space or tab).
func unfoldVCard(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func structuredName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ";"
	}
	family := words[len(words)-1]
	given := strings.Join(words[:len(words)-1], " ")
	return escapeVCard(family) + ";" + escapeVCard(given)
}

func hasAnyField(item *book.Item, fields ...string) bool {
	for _, f := range fields {
		if item.GetString(f) != "" {
			return true
		}
	}
	return false
}

var vcardEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\n", "\\n",
)

func escapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}

func unescapeVCard(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			sb.WriteByte('\n')
		default:
			sb.WriteByte(s[i])
		}
	}
	return strings.TrimSpace(sb.String())
}
