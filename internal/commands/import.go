package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/contasmart/contasmart/internal/export"
	"github.com/contasmart/contasmart/internal/ledger/store"
)

func newImportCommand(p *paths) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replay a transactions CSV into the ledger file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			entries, err := export.ReadTransactions(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			s := store.New(p.ledgerFile())

			book, err := s.Load()
			if err != nil {
				return err
			}

			// Entries are replayed through Post so every imported row is
			// re-validated against the chart; ids are reassigned.
			for i, e := range entries {
				if _, err := book.Post(e.Date, e.Description, e.Debit, e.Credit, e.Amount); err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
			}

			if err := s.Save(book); err != nil {
				return err
			}

			cmd.Printf("imported %d entries\n", len(entries))

			return nil
		},
	}
}
