package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gmarchetti/rolodex/internal/cli/prompt"
	"github.com/gmarchetti/rolodex/internal/logger"
	"github.com/gmarchetti/rolodex/internal/mail"
	"github.com/gmarchetti/rolodex/pkg/book"
)

var addEmailQuiet bool

var addEmailCmd = &cobra.Command{
	Use:   "add-email",
	Short: "Add the sender of a mail message read from stdin",
	Long: `Read an RFC 5322 mail message from stdin and add its sender to the
addressbook. Useful from a mail client keybinding, e.g. in mutt:

  macro index A "|rolodex add-email --quiet\n"

The sender is skipped when the address is already in the book. Without
--quiet the command asks for confirmation before adding.`,
	RunE: runAddEmail,
}

func init() {
	addEmailCmd.Flags().BoolVarP(&addEmailQuiet, "quiet", "q", false, "add without asking for confirmation")
}

func runAddEmail(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sender, err := mail.ParseSender(cmd.InOrStdin())
	if err != nil {
		return err
	}

	db, st, err := openBook(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if hasAddress(db, sender.Address) {
		cmd.Printf("%s is already in the addressbook.\n", sender.Address)
		return nil
	}

	if !addEmailQuiet {
		ok, err := prompt.Confirm(
			fmt.Sprintf("Add %s <%s> to the addressbook", sender.Name, sender.Address), true)
		if err != nil {
			if prompt.IsAborted(err) {
				return errSilent
			}
			return err
		}
		if !ok {
			return nil
		}
	}

	it := book.NewItem()
	fields := cfg.AddEmail.Fields
	if len(fields) < 2 {
		fields = []string{"name", "email"}
	}
	it.SetString(fields[0], sender.Name)
	it.SetString(fields[1], sender.Address)

	db.Add(it)
	if err := saveBook(cmd.Context(), st, db); err != nil {
		return err
	}

	logger.Debug("sender added", "id", it.ID, "address", sender.Address)
	cmd.Printf("Added %s <%s>.\n", sender.Name, sender.Address)
	return nil
}

// hasAddress reports whether any item's email field contains addr.
func hasAddress(db *book.Database, addr string) bool {
	addr = strings.ToLower(addr)
	for _, it := range db.Items() {
		for _, a := range strings.Split(it.GetString("email"), ",") {
			if strings.ToLower(strings.TrimSpace(a)) == addr {
				return true
			}
		}
	}
	return false
}
