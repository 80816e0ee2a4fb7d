package filter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gmarchetti/rolodex/internal/logger"
	"github.com/gmarchetti/rolodex/pkg/book"
	"github.com/gmarchetti/rolodex/pkg/ldif"
)

// ldifAttrs maps LDAP attribute names to item fields, in export order.
var ldifAttrs = []struct {
	attr  string
	field string
}{
	{"cn", "name"},
	{"mail", "email"},
	{"streetaddress", "address"},
	{"locality", "city"},
	{"st", "state"},
	{"postalcode", "zip"},
	{"countryname", "country"},
	{"homephone", "phone"},
	{"telephonenumber", "workphone"},
	{"facsimiletelephonenumber", "fax"},
	{"mobile", "mobile"},
	{"xmozillanickname", "nick"},
	{"homeurl", "url"},
	{"description", "notes"},
}

// ldifFieldByAttr resolves incoming attribute names, including aliases
// not used on export.
var ldifFieldByAttr = func() map[string]string {
	m := make(map[string]string, len(ldifAttrs)+1)
	for _, a := range ldifAttrs {
		m[a.attr] = a.field
	}
	m["cellphone"] = "mobile"
	return m
}()

// LDIF converts between LDIF records and address-book items, one
// record per item. The attribute codec lives in pkg/ldif; this filter
// only maps attribute names onto fields.
type LDIF struct{}

// Import reads LDIF records from r. Decode failures are line-scoped:
// the offending line is reported and skipped, never fatal to the whole
// import.
func (LDIF) Import(r io.Reader, db *book.Database) error {
	reader := ldif.NewReader(r)
	for {
		record, err := reader.ReadRecord()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		item := book.NewItem()
		for _, line := range record {
			typ, value, err := ldif.Decode(line.Text)
			if err != nil {
				logger.Warn("skipping malformed LDIF line", "error", err)
				continue
			}

			attr := strings.ToLower(typ)
			if attr == "dn" || attr == "objectclass" {
				continue
			}
			field, ok := ldifFieldByAttr[attr]
			if !ok {
				continue
			}

			if field == "email" && item.GetString("email") != "" {
				item.SetString("email", item.GetString("email")+","+string(value))
				continue
			}
			item.Set(field, value)
		}

		if len(item.Fields) > 0 {
			db.Add(item)
		}
	}
}

// Export writes one LDIF record per item, separated by blank lines.
func (LDIF) Export(w io.Writer, db *book.Database) error {
	for _, item := range db.Items() {
		dn := fmt.Sprintf("cn=%s,mail=%s", item.GetString("name"), item.GetString("email"))
		if err := writeAttr(w, "dn", []byte(dn)); err != nil {
			return err
		}

		for _, a := range ldifAttrs {
			value := item.Get(a.field)
			if len(value) == 0 {
				continue
			}
			if err := writeAttr(w, a.attr, value); err != nil {
				return err
			}
		}

		if err := writeAttr(w, "objectclass", []byte("person")); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(w io.Writer, attr string, value []byte) error {
	frag, err := ldif.Encode(attr, value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", attr, err)
	}
	_, err = w.Write(frag)
	return err
}
