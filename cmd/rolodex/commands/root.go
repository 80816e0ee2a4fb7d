// Package commands implements the rolodex CLI commands.
package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile  string
	datafile string
)

// errSilent marks errors whose message has already been printed by the
// command; main still exits non-zero but must not print "Error:" again.
var errSilent = errors.New("silent")

// IsSilent reports whether err was already reported to the user.
func IsSilent(err error) bool {
	return errors.Is(err, errSilent)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex - Text-based address book",
	Long: `Rolodex is a text-based address book manager. It keeps contacts in a
local datafile and converts between interchange formats (LDIF, vCard,
CSV, plain text, mutt aliases).

Use "rolodex [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/rolodex/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&datafile, "datafile", "", "use an alternative datafile")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addEmailCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// GetConfigFile returns the config file path from the global flag.
func GetConfigFile() string {
	return cfgFile
}
