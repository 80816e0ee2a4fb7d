package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultConfigDir returns the per-user configuration directory,
// honoring XDG_CONFIG_HOME.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rolodex")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "rolodex")
}

// GetDefaultConfigPath returns the path of the default config file.
func GetDefaultConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.yaml")
}

// DefaultConfigExists reports whether a config file exists at the
// default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}

// InitConfig writes a commented sample configuration to the default
// location. It refuses to overwrite an existing file unless force is
// set. It returns the path written.
func InitConfig(force bool) (string, error) {
	return InitConfigToPath(GetDefaultConfigPath(), force)
}

// InitConfigToPath writes a sample configuration to the given path.
func InitConfigToPath(path string, force bool) (string, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	data, err := sampleConfig()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}

func sampleConfig() ([]byte, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
			Output: "stderr",
		},
		UI: UIConfig{
			CustomFormat: "{nick} ({name}): {mobile}",
		},
		AddEmail: AddEmailConfig{
			Fields: []string{"name", "email"},
		},
	}
	cfg.Database.ApplyDefaults()

	body, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal sample config: %w", err)
	}

	header := []byte("# rolodex configuration\n" +
		"# Environment variables with the ROLODEX_ prefix override any\n" +
		"# value here, e.g. ROLODEX_DATABASE_TYPE=sqlite.\n\n")
	return append(header, body...), nil
}
