package commands

import (
	"github.com/spf13/cobra"

	"github.com/gmarchetti/rolodex/internal/cli/prompt"
	"github.com/gmarchetti/rolodex/internal/logger"
	"github.com/gmarchetti/rolodex/pkg/book"
)

// addPromptFields are the fields asked for interactively, in order.
// Name is required; the rest may be left empty.
var addPromptFields = []string{
	"name", "email", "nick",
	"address", "city", "state", "zip", "country",
	"phone", "workphone", "mobile",
	"url", "notes",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact interactively",
	Long: `Add a new contact to the addressbook.

Prompts for each field in turn; only the name is required. Press
Ctrl+C at any prompt to abort without saving.`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	it := book.NewItem()
	for _, field := range addPromptFields {
		var value string
		if field == "name" {
			value, err = prompt.InputRequired("Name")
		} else {
			value, err = prompt.InputOptional(field)
		}
		if err != nil {
			if prompt.IsAborted(err) {
				cmd.Println("Aborted.")
				return errSilent
			}
			return err
		}
		if value != "" {
			it.SetString(field, value)
		}
	}

	ok, err := prompt.Confirm("Save entry", true)
	if err != nil {
		if prompt.IsAborted(err) {
			cmd.Println("Aborted.")
			return errSilent
		}
		return err
	}
	if !ok {
		cmd.Println("Discarded.")
		return nil
	}

	db, st, err := openBook(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	db.Add(it)
	if err := saveBook(cmd.Context(), st, db); err != nil {
		return err
	}

	logger.Debug("contact added", "id", it.ID, "name", it.Name())
	cmd.Printf("Added %s.\n", it.Name())
	return nil
}
