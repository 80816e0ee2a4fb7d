package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gmarchetti/rolodex/internal/cli/output"
	"github.com/gmarchetti/rolodex/internal/cli/prompt"
	"github.com/gmarchetti/rolodex/pkg/filter"
)

var (
	convertInFormat  string
	convertInFile    string
	convertOutFormat string
	convertOutFile   string
	convertForce     bool
	convertFormats   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an addressbook between interchange formats",
	Long: `Convert a whole addressbook from one interchange format to another.

Input and output default to stdin and stdout; use --infile and
--outfile for files. Use --formats to list the supported formats.

Examples:
  # List supported formats
  rolodex convert --formats

  # LDIF to vCard
  rolodex convert --informat ldif --infile export.ldif --outformat vcard --outfile contacts.vcf

  # Addressbook to mutt aliases on stdout
  rolodex convert --informat csv --infile contacts.csv --outformat mutt`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertInFormat, "informat", "", "input format")
	convertCmd.Flags().StringVar(&convertInFile, "infile", "-", "input file (default: stdin)")
	convertCmd.Flags().StringVar(&convertOutFormat, "outformat", "", "output format")
	convertCmd.Flags().StringVar(&convertOutFile, "outfile", "-", "output file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertForce, "force", false, "overwrite output file without asking")
	convertCmd.Flags().BoolVar(&convertFormats, "formats", false, "list supported formats")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertFormats {
		return printFormats(cmd.OutOrStdout())
	}

	if convertInFormat == "" || convertOutFormat == "" {
		return fmt.Errorf("both --informat and --outformat are required")
	}

	var in io.Reader
	if convertInFile == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(convertInFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	var out io.Writer
	if convertOutFile == "-" {
		out = cmd.OutOrStdout()
	} else {
		if _, err := os.Stat(convertOutFile); err == nil {
			ok, err := prompt.ConfirmWithForce(
				fmt.Sprintf("Overwrite %s?", convertOutFile), convertForce)
			if err != nil {
				return err
			}
			if !ok {
				return errSilent
			}
		}
		f, err := os.Create(convertOutFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return filter.Convert(convertInFormat, in, convertOutFormat, out)
}

func printFormats(w io.Writer) error {
	table := output.NewTableData("Format", "Description", "Import", "Export")
	for _, f := range filter.Formats() {
		table.AddRow(f.Name, f.Description, yesNo(f.Importer != nil), yesNo(f.Exporter != nil))
	}
	return output.PrintTable(w, table)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
