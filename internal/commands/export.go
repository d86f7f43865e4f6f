package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contasmart/contasmart/internal/export"
	"github.com/contasmart/contasmart/internal/ledger/store"
)

func newExportCommand(p *paths) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ledger postings as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := store.New(p.ledgerFile()).Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()

				w = f
			}

			if err := export.WriteTransactions(w, book.Entries()); err != nil {
				return err
			}

			if out != "" {
				cmd.Printf("wrote %s\n", out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "destination file (defaults to stdout)")

	return cmd
}
