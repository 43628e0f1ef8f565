// Root command for the housebook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

const version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:     "housebook",
	Short:   "Housebook is a record keeper for real-estate agents",
	Version: version,
	Long: `Housebook tracks contacts (clients who may buy or sell) and property
listings, and maintains bidirectional owner/buyer/seller relationships
between them. Every command is atomic: it either applies completely or
leaves both books untouched.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.housebook)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.housebook-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addContactCmd)
	rootCmd.AddCommand(addPropertyCmd)
	rootCmd.AddCommand(editContactCmd)
	rootCmd.AddCommand(deleteContactCmd)
	rootCmd.AddCommand(deletePropertyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(soldCmd)
	rootCmd.AddCommand(unsoldCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(filterContactsCmd)
	rootCmd.AddCommand(filterPropertiesCmd)
}

// resolveDataDir returns the data directory following the precedence
// --data-dir flag > config.yaml data_dir > HOUSEBOOK_DATA_DIR env >
// default $(CWD)/.housebook-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > HOUSEBOOK_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the housebook data store",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()
		cmd.Println("Housebook initialized")
		return nil
	},
}
