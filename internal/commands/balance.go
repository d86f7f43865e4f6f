package commands

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contasmart/contasmart/internal/format"
	"github.com/contasmart/contasmart/internal/ledger/store"
	"github.com/contasmart/contasmart/internal/report"
)

func newBalanceCommand(p *paths) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the balance sheet derived from the ledger file",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := store.New(p.ledgerFile()).Load()
			if err != nil {
				return err
			}

			sheet, err := report.FromLedger(book)
			if err != nil {
				return err
			}

			cmd.Printf("BALANÇO PATRIMONIAL - %s (%s)\n\n", sheet.Entity, sheet.Period)

			printSection(cmd, "ATIVO CIRCULANTE", sheet.CurrentAssets)
			printSection(cmd, "ATIVO NÃO CIRCULANTE", sheet.NonCurrentAssets)
			printTotal(cmd, "TOTAL DO ATIVO", sheet.TotalAssets)

			printSection(cmd, "PASSIVO CIRCULANTE", sheet.CurrentLiabilities)
			printSection(cmd, "PASSIVO NÃO CIRCULANTE", sheet.NonCurrentLiabilities)
			printSection(cmd, "PATRIMÔNIO LÍQUIDO", sheet.Equity)
			printTotal(cmd, "TOTAL DO PASSIVO + PL", sheet.TotalLiabilities.Add(sheet.Equity.Total))

			if sheet.Balanced {
				cmd.Println("Equação patrimonial: OK")
			} else {
				cmd.Println("Equação patrimonial: NÃO FECHA")
			}

			return nil
		},
	}
}

func printSection(cmd *cobra.Command, title string, s report.Section) {
	cmd.Println(title)

	names := make([]string, 0, len(s.Accounts))
	for name := range s.Accounts {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("  %-30s %18s\n", name, format.Currency(s.Accounts[name]))
	}

	cmd.Printf("  %-30s %18s\n\n", "Subtotal", format.Currency(s.Total))
}

func printTotal(cmd *cobra.Command, title string, v decimal.Decimal) {
	cmd.Printf("%-32s %18s\n\n", title, format.Currency(v))
}
