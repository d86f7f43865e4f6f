package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contasmart/contasmart/internal/format"
	"github.com/contasmart/contasmart/internal/ledger/store"
)

func newPostCommand(p *paths) *cobra.Command {
	var flags struct {
		date        string
		description string
		debit       string
		credit      string
		amount      string
	}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Append a double-entry posting to the ledger file",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()

			if flags.date != "" {
				parsed, err := time.Parse(time.DateOnly, flags.date)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}

				date = parsed
			}

			amount, err := decimal.NewFromString(flags.amount)
			if err != nil {
				return fmt.Errorf("parsing --amount: %w", err)
			}

			s := store.New(p.ledgerFile())

			book, err := s.Load()
			if err != nil {
				return err
			}

			entry, err := book.Post(date, flags.description, flags.debit, flags.credit, amount)
			if err != nil {
				return err
			}

			if err := s.Save(book); err != nil {
				return err
			}

			cmd.Printf("posted entry %d: %s, debit %s / credit %s, %s\n",
				entry.ID, entry.Description, entry.Debit, entry.Credit, format.Currency(entry.Amount))

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.date, "date", "", "posting date as YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&flags.description, "description", "", "what the posting records (required)")
	cmd.Flags().StringVar(&flags.debit, "debit", "", "account to debit (required)")
	cmd.Flags().StringVar(&flags.credit, "credit", "", "account to credit (required)")
	cmd.Flags().StringVar(&flags.amount, "amount", "", "posting amount (required)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
