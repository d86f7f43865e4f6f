package statement

import "github.com/shopspring/decimal"

// Ratio helpers are pure, total functions: division by zero resolves to
// zero (or the documented special case), never an error.

// CurrentRatio returns currentAssets / currentLiabilities, or zero when
// there are no current liabilities.
func CurrentRatio(currentAssets, currentLiabilities decimal.Decimal) decimal.Decimal {
	if currentLiabilities.IsZero() {
		return decimal.Zero
	}

	return currentAssets.Div(currentLiabilities)
}

// TotalIndebtedness returns total liabilities as a percentage of total
// assets, or zero when there are no assets.
func TotalIndebtedness(totalLiabilities, totalAssets decimal.Decimal) decimal.Decimal {
	if totalAssets.IsZero() {
		return decimal.Zero
	}

	return totalLiabilities.Div(totalAssets).Mul(hundred)
}

// LiabilityComposition returns current liabilities as a percentage of total
// liabilities, or zero when there are no liabilities.
func LiabilityComposition(currentLiabilities, totalLiabilities decimal.Decimal) decimal.Decimal {
	if totalLiabilities.IsZero() {
		return decimal.Zero
	}

	return currentLiabilities.Div(totalLiabilities).Mul(hundred)
}

// PercentChange returns the percentage change from previous to current.
// When previous is zero the change is 100 if current is positive, else 0.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}

		return decimal.Zero
	}

	return current.Sub(previous).Div(previous).Mul(hundred)
}

// ReturnOnInvestment returns profit as a percentage of investment, or zero
// when there is no investment.
func ReturnOnInvestment(profit, investment decimal.Decimal) decimal.Decimal {
	if investment.IsZero() {
		return decimal.Zero
	}

	return profit.Div(investment).Mul(hundred)
}
