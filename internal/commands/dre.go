package commands

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/contasmart/contasmart/internal/export"
	"github.com/contasmart/contasmart/internal/statement"
)

func newDRECommand() *cobra.Command {
	var flags struct {
		grossRevenue      string
		deductions        string
		costOfSales       string
		operatingExpenses string
		financialExpenses string
		otherIncome       string
		taxes             string
		out               string
	}

	cmd := &cobra.Command{
		Use:   "dre",
		Short: "Compute an income statement from flat figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := statement.Input{}

			for _, f := range []struct {
				name  string
				raw   string
				field *decimal.Decimal
			}{
				{"gross-revenue", flags.grossRevenue, &in.GrossRevenue},
				{"deductions", flags.deductions, &in.RevenueDeductions},
				{"cost-of-sales", flags.costOfSales, &in.CostOfSales},
				{"operating-expenses", flags.operatingExpenses, &in.OperatingExpenses},
				{"financial-expenses", flags.financialExpenses, &in.FinancialExpenses},
				{"other-income", flags.otherIncome, &in.OtherIncome},
				{"taxes", flags.taxes, &in.Taxes},
			} {
				v, err := decimal.NewFromString(f.raw)
				if err != nil {
					return fmt.Errorf("parsing --%s: %w", f.name, err)
				}

				*f.field = v
			}

			result, err := statement.Compute(in)
			if err != nil {
				return err
			}

			printStatement(cmd, result)

			if flags.out == "" {
				return nil
			}

			f, err := os.Create(flags.out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flags.out, err)
			}
			defer f.Close()

			if err := export.WriteStatementLines(f, result.Lines); err != nil {
				return fmt.Errorf("writing %s: %w", flags.out, err)
			}

			cmd.Printf("\nwrote %s\n", flags.out)

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.grossRevenue, "gross-revenue", "0", "gross revenue for the period")
	cmd.Flags().StringVar(&flags.deductions, "deductions", "0", "revenue deductions (taxes on sales, returns)")
	cmd.Flags().StringVar(&flags.costOfSales, "cost-of-sales", "0", "cost of goods or services sold")
	cmd.Flags().StringVar(&flags.operatingExpenses, "operating-expenses", "0", "operating expenses")
	cmd.Flags().StringVar(&flags.financialExpenses, "financial-expenses", "0", "financial expenses")
	cmd.Flags().StringVar(&flags.otherIncome, "other-income", "0", "other operating income")
	cmd.Flags().StringVar(&flags.taxes, "taxes", "0", "income tax for the period")
	cmd.Flags().StringVar(&flags.out, "out", "", "also write the line items to this CSV file")

	return cmd
}

func printStatement(cmd *cobra.Command, r *statement.Result) {
	cmd.Println("DEMONSTRAÇÃO DO RESULTADO DO EXERCÍCIO")
	cmd.Println()

	for _, line := range r.Lines {
		marker := "  "
		if line.Subtotal {
			marker = "= "
		}

		cmd.Printf("%s%-38s %18s %9s%%\n", marker, line.Description, line.Formatted, line.PercentOfRevenue.StringFixed(2))
	}

	cmd.Println()
	cmd.Printf("Classificação: %s\n", r.Tier)

	for _, a := range r.Alerts {
		cmd.Printf("Alerta: %s\n", a)
	}

	for _, rec := range r.Recommendations {
		cmd.Printf("Recomendação: %s\n", rec)
	}
}
