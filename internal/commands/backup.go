package commands

import (
	"github.com/spf13/cobra"

	"github.com/contasmart/contasmart/internal/backup"
)

func newBackupCommand(p *paths) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage ledger data backups",
	}

	cmd.AddCommand(newBackupCreateCommand(p))
	cmd.AddCommand(newBackupListCommand(p))
	cmd.AddCommand(newBackupRestoreCommand(p))

	return cmd
}

func newBackupCreateCommand(p *paths) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Archive the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := backup.NewManager(*p.dataDir, p.backupDir()).Create(reason)
			if err != nil {
				return err
			}

			cmd.Printf("created %s (%d files)\n", info.Name, len(info.Files))

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "manual", "why this backup was taken")

	return cmd
}

func newBackupListCommand(p *paths) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available backups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := backup.NewManager(*p.dataDir, p.backupDir()).List()
			if err != nil {
				return err
			}

			if len(infos) == 0 {
				cmd.Println("no backups yet")
				return nil
			}

			for _, info := range infos {
				cmd.Printf("%s  %s  %d files  %s\n",
					info.Name, info.CreatedAt.Format("2006-01-02 15:04:05"), len(info.Files), info.Reason)
			}

			return nil
		},
	}
}

func newBackupRestoreCommand(p *paths) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "restore <name>",
		Short: "Restore a backup into the data directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := dest
			if target == "" {
				target = *p.dataDir
			}

			if err := backup.NewManager(*p.dataDir, p.backupDir()).Restore(args[0], target); err != nil {
				return err
			}

			cmd.Printf("restored %s into %s\n", args[0], target)

			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "restore into this directory instead of the data directory")

	return cmd
}
