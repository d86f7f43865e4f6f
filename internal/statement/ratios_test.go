package statement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/contasmart/contasmart/internal/statement"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{name: "BothZero", current: "0", previous: "0", want: "0"},
		{name: "FromZero", current: "50", previous: "0", want: "100"},
		{name: "Decrease", current: "80", previous: "100", want: "-20"},
		{name: "Increase", current: "150", previous: "100", want: "50"},
		{name: "NegativeFromZero", current: "-5", previous: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statement.PercentChange(dec(tt.current), dec(tt.previous))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestCurrentRatio(t *testing.T) {
	assert.True(t, statement.CurrentRatio(dec("700"), dec("200")).Equal(dec("3.5")))
	assert.True(t, statement.CurrentRatio(dec("700"), decimal.Zero).IsZero())
}

func TestTotalIndebtedness(t *testing.T) {
	assert.True(t, statement.TotalIndebtedness(dec("500"), dec("1000")).Equal(dec("50")))
	assert.True(t, statement.TotalIndebtedness(dec("500"), decimal.Zero).IsZero())
}

func TestLiabilityComposition(t *testing.T) {
	assert.True(t, statement.LiabilityComposition(dec("200"), dec("500")).Equal(dec("40")))
	assert.True(t, statement.LiabilityComposition(dec("200"), decimal.Zero).IsZero())
}

func TestReturnOnInvestment(t *testing.T) {
	assert.True(t, statement.ReturnOnInvestment(dec("150"), dec("1000")).Equal(dec("15")))
	assert.True(t, statement.ReturnOnInvestment(dec("150"), decimal.Zero).IsZero())
}
