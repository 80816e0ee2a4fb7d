package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// Mutt exports mutt alias lines: "alias key name <email>". Items
// without an e-mail address are skipped. Import is not supported.
type Mutt struct{}

// Export writes one alias line per item with an address. Only the
// first address of a comma-separated email field is used.
func (Mutt) Export(w io.Writer, db *book.Database) error {
	seen := make(map[string]int)

	for _, item := range db.Items() {
		email, _, _ := strings.Cut(item.GetString("email"), ",")
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		key := aliasKey(item)
		if n := seen[key]; n > 0 {
			key = fmt.Sprintf("%s%d", key, n)
		}
		seen[aliasKey(item)]++

		if _, err := fmt.Fprintf(w, "alias %s %s <%s>\n", key, item.GetString("name"), email); err != nil {
			return err
		}
	}
	return nil
}

// aliasKey picks the alias: the nickname when set, otherwise the name
// lowercased with whitespace collapsed to dots.
func aliasKey(item *book.Item) string {
	if nick := item.GetString("nick"); nick != "" {
		return nick
	}
	words := strings.Fields(strings.ToLower(item.GetString("name")))
	if len(words) == 0 {
		return "nobody"
	}
	return strings.Join(words, ".")
}
