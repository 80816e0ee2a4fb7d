package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gmarchetti/rolodex/internal/cli/output"
	"github.com/gmarchetti/rolodex/pkg/book"
)

var (
	listOutput string
	listFields string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Long: `List every contact in the addressbook.

The table columns are chosen with --fields. The custom output format
renders each contact through the placeholder string configured under
ui.custom_format, e.g. "{nick} ({name}): {mobile}".

Examples:
  rolodex list
  rolodex list --fields name,email,mobile --sort surname
  rolodex list --output json
  rolodex list --output custom`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "output format (table, json, yaml, custom)")
	listCmd.Flags().StringVar(&listFields, "fields", "name,email,phone", "comma-separated table columns")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort order (name, surname)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listOutput)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, st, err := openBook(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	switch listSort {
	case "":
	case "name":
		db.SortBy("name")
	case "surname":
		db.SortBySurname()
	default:
		return fmt.Errorf("invalid sort order: %q (valid: name, surname)", listSort)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format, false)

	switch format {
	case output.FormatCustom:
		for _, it := range db.Items() {
			printer.Println(book.FormatItem(it, cfg.UI.CustomFormat))
		}
		return nil
	case output.FormatTable:
		fields := splitFields(listFields)
		for _, f := range fields {
			if !book.IsStandardField(f) {
				return fmt.Errorf("unknown field: %q", f)
			}
		}
		table := output.NewTableData(fields...)
		for _, it := range db.Items() {
			row := make([]string, len(fields))
			for i, f := range fields {
				row[i] = it.GetString(f)
			}
			table.AddRow(row...)
		}
		return printer.Print(table)
	default:
		return printer.Print(db.Items())
	}
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
