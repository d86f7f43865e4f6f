// Package statement computes the income statement (DRE): the derivation
// chain from gross revenue down to net profit, margin percentages, a
// qualitative profitability tier and a detailed line-item table.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/format"
	"github.com/contasmart/contasmart/internal/validation"
)

// Input carries the flat figures one calculation works on. Absent fields are
// zero. Inputs have no persisted identity.
type Input struct {
	GrossRevenue      decimal.Decimal `json:"gross_revenue"`
	RevenueDeductions decimal.Decimal `json:"revenue_deductions"`
	CostOfSales       decimal.Decimal `json:"cost_of_sales"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	FinancialExpenses decimal.Decimal `json:"financial_expenses"`
	OtherIncome       decimal.Decimal `json:"other_income"`
	Taxes             decimal.Decimal `json:"taxes"`
}

// Tier is the qualitative profitability label derived from net margin.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierHigh      Tier = "high"
	TierModerate  Tier = "moderate"
	TierLow       Tier = "low"
	TierCritical  Tier = "critical"
)

// Line is one row of the detailed statement table. Negative values are
// rendered in parentheses.
type Line struct {
	Description      string          `json:"description"`
	Value            decimal.Decimal `json:"value"`
	PercentOfRevenue decimal.Decimal `json:"percent_of_revenue"`
	Formatted        string          `json:"formatted"`
	Subtotal         bool            `json:"subtotal"`
}

// Result holds every intermediate figure of a statement calculation, the
// derived margins and analysis, and the presentation table.
type Result struct {
	Input Input `json:"input"`

	NetRevenue      decimal.Decimal `json:"net_revenue"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	OperatingProfit decimal.Decimal `json:"operating_profit"`
	PreTaxProfit    decimal.Decimal `json:"pre_tax_profit"`
	NetProfit       decimal.Decimal `json:"net_profit"`

	GrossMargin     decimal.Decimal `json:"gross_margin"`
	OperatingMargin decimal.Decimal `json:"operating_margin"`
	NetMargin       decimal.Decimal `json:"net_margin"`

	Tier            Tier     `json:"tier"`
	Alerts          []string `json:"alerts,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`

	Lines []Line `json:"lines"`
}

var (
	hundred = decimal.NewFromInt(100)

	tierThresholds = []struct {
		min  decimal.Decimal
		tier Tier
	}{
		{decimal.NewFromInt(20), TierExcellent},
		{decimal.NewFromInt(15), TierHigh},
		{decimal.NewFromInt(10), TierModerate},
		{decimal.NewFromInt(5), TierLow},
	}
)

// Compute derives the full income statement for in. It fails with a
// validation error when gross revenue is negative; every other edge case
// (zero revenue, losses) is a defined result, not an error.
func Compute(in Input) (*Result, error) {
	if in.GrossRevenue.IsNegative() {
		return nil, validation.Errorf("gross_revenue", "must not be negative, got %s", in.GrossRevenue)
	}

	r := &Result{Input: in}

	r.NetRevenue = in.GrossRevenue.Sub(in.RevenueDeductions)
	r.GrossProfit = in.GrossRevenue.Sub(in.CostOfSales)
	r.OperatingProfit = r.GrossProfit.Sub(in.OperatingExpenses)
	r.PreTaxProfit = r.OperatingProfit.Sub(in.FinancialExpenses).Add(in.OtherIncome)
	r.NetProfit = r.PreTaxProfit.Sub(in.Taxes)

	r.GrossMargin = marginOf(r.GrossProfit, in.GrossRevenue)
	r.OperatingMargin = marginOf(r.OperatingProfit, in.GrossRevenue)
	r.NetMargin = marginOf(r.NetProfit, in.GrossRevenue)

	r.Tier = tierOf(r.NetMargin)
	r.analyze()
	r.buildLines()

	return r, nil
}

// marginOf returns value/revenue*100, or zero when revenue is zero.
func marginOf(value, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}

	return value.Div(revenue).Mul(hundred)
}

func tierOf(netMargin decimal.Decimal) Tier {
	for _, t := range tierThresholds {
		if netMargin.GreaterThan(t.min) {
			return t.tier
		}
	}

	return TierCritical
}

func (r *Result) analyze() {
	if r.Tier == TierCritical {
		r.Alerts = append(r.Alerts, "profitability is very low; review costs and pricing")
	}

	if r.NetProfit.IsNegative() {
		r.Alerts = append(r.Alerts, "net loss for the period; urgent review required")
	}

	if r.NetProfit.IsPositive() && r.GrossProfit.Div(r.NetProfit).GreaterThan(decimal.NewFromInt(5)) {
		r.Recommendations = append(r.Recommendations, "high tax and expense load; consider tax planning")
	}
}

func (r *Result) buildLines() {
	in := r.Input

	rows := []struct {
		description string
		value       decimal.Decimal
		subtotal    bool
	}{
		{"Gross revenue", in.GrossRevenue, false},
		{"(-) Revenue deductions", in.RevenueDeductions.Neg(), false},
		{"Net revenue", r.NetRevenue, true},
		{"(-) Cost of sales", in.CostOfSales.Neg(), false},
		{"Gross profit", r.GrossProfit, true},
		{"(-) Operating expenses", in.OperatingExpenses.Neg(), false},
		{"Operating profit", r.OperatingProfit, true},
		{"(-) Financial expenses", in.FinancialExpenses.Neg(), false},
		{"(+) Other income", in.OtherIncome, false},
		{"Pre-tax profit", r.PreTaxProfit, true},
		{"(-) Taxes", in.Taxes.Neg(), false},
		{"Net profit", r.NetProfit, true},
	}

	r.Lines = make([]Line, 0, len(rows))

	for _, row := range rows {
		r.Lines = append(r.Lines, Line{
			Description:      row.description,
			Value:            row.value,
			PercentOfRevenue: marginOf(row.value, in.GrossRevenue),
			Formatted:        format.Accounting(row.value),
			Subtotal:         row.subtotal,
		})
	}
}
