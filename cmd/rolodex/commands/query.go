package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gmarchetti/rolodex/pkg/book"
)

var queryFields string

var queryCmd = &cobra.Command{
	Use:   "query <string>",
	Short: "Search the addressbook (mutt query format)",
	Long: `Search the addressbook for contacts matching the given string
and print the matches in mutt's query format: a status line, then one
address per line:

  address<TAB>name<TAB>notes

The string "all" matches every contact.

The command exits with status 1 when nothing matches, so it can be
used directly as mutt's query_command:

  set query_command = "rolodex query '%s'"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryFields, "fields", "", "comma-separated fields to search (default: name, email, nick)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, st, err := openBook(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	fields := splitFields(queryFields)
	for _, f := range fields {
		if !book.IsStandardField(f) {
			return fmt.Errorf("unknown field: %q", f)
		}
	}

	out := cmd.OutOrStdout()

	var matches []*book.Item
	if strings.EqualFold(args[0], "all") {
		matches = db.Items()
	} else {
		matches = db.Find(args[0], fields...)
	}
	if len(matches) == 0 {
		fmt.Fprintln(out, "Not found")
		return errSilent
	}

	// mutt discards the first line of query output as a status message.
	fmt.Fprintln(out)

	for _, it := range matches {
		name := it.GetString("name")
		notes := it.GetString("notes")
		for _, addr := range strings.Split(it.GetString("email"), ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", addr, name, notes)
		}
	}
	return nil
}
