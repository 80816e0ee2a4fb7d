package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gmarchetti/rolodex/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample rolodex configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/rolodex/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  rolodex init

  # Initialize with custom path
  rolodex init --config ~/.rolodex.yaml

  # Force overwrite existing config
  rolodex init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	var configPath string
	var err error

	if configFile != "" {
		configPath, err = config.InitConfigToPath(configFile, initForce)
	} else {
		configPath, err = config.InitConfig(initForce)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to choose a database backend")
	fmt.Println("  2. Add a contact with: rolodex add")
	fmt.Println("  3. List your contacts with: rolodex list")

	return nil
}
