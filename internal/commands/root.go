// Package commands holds the contasmart CLI: the accounting toolkit surface
// that works directly on the ledger file, without the API server.
package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:   "contasmart",
		Short: "Executive accounting toolkit",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding the ledger file and backups")

	paths := &paths{dataDir: &dataDir}

	rootCmd.AddCommand(newDRECommand())
	rootCmd.AddCommand(newBalanceCommand(paths))
	rootCmd.AddCommand(newPostCommand(paths))
	rootCmd.AddCommand(newExportCommand(paths))
	rootCmd.AddCommand(newImportCommand(paths))
	rootCmd.AddCommand(newBackupCommand(paths))

	return rootCmd
}

type paths struct {
	dataDir *string
}

func (p *paths) ledgerFile() string {
	return filepath.Join(*p.dataDir, "ledger.json")
}

func (p *paths) backupDir() string {
	return filepath.Join(*p.dataDir, "backups")
}
