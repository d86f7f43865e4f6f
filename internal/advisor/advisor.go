package advisor

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contasmart/contasmart/internal/analytics"
	"github.com/contasmart/contasmart/internal/format"
	"github.com/contasmart/contasmart/internal/goal"
)

// Level classifies how urgent a recommendation is.
type Level string

const (
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Recommendation is one piece of advice derived from the user's data.
type Recommendation struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Input carries everything the rules look at. All of it comes from the
// analytics and goal services so the evaluation itself stays free of I/O.
// Monthly is expected oldest first and Categories largest first, the order
// the analytics service produces.
type Input struct {
	Monthly    []analytics.MonthTotal
	Summary    *analytics.Summary
	Categories []analytics.CategoryTotal
	Goals      []*goal.Goal
	Now        time.Time
}

var (
	spikeFactor       = decimal.RequireFromString("1.2")
	minSavingsRate    = decimal.NewFromInt(10)
	dominantShare     = decimal.NewFromInt(40)
	atRiskProgress    = decimal.NewFromInt(50)
	atRiskDeadlineDur = 15 * 24 * time.Hour
)

// Evaluate runs every rule against the input and returns the
// recommendations that fired, warnings first.
func Evaluate(in Input) []Recommendation {
	var warnings, infos []Recommendation

	if rec, ok := expenseSpike(in.Monthly); ok {
		warnings = append(warnings, rec)
	}

	for _, g := range in.Goals {
		if rec, ok := goalAtRisk(g, in.Now); ok {
			warnings = append(warnings, rec)
		}
	}

	if rec, ok := lowSavingsRate(in.Summary); ok {
		infos = append(infos, rec)
	}

	if rec, ok := dominantCategory(in.Categories); ok {
		infos = append(infos, rec)
	}

	return append(warnings, infos...)
}

// expenseSpike fires when the latest month's expense exceeds the previous
// month's by more than 20%.
func expenseSpike(monthly []analytics.MonthTotal) (Recommendation, bool) {
	if len(monthly) < 2 {
		return Recommendation{}, false
	}

	latest := monthly[len(monthly)-1]
	previous := monthly[len(monthly)-2]

	if !previous.Expense.IsPositive() {
		return Recommendation{}, false
	}

	if latest.Expense.LessThanOrEqual(previous.Expense.Mul(spikeFactor)) {
		return Recommendation{}, false
	}

	return Recommendation{
		Level: LevelWarning,
		Title: "Gastos em alta",
		Message: fmt.Sprintf("Seus gastos de %s somaram %s, mais de 20%% acima do mês anterior (%s). Revise as despesas recentes.",
			latest.Month, format.Currency(latest.Expense), format.Currency(previous.Expense)),
	}, true
}

// lowSavingsRate fires when the user earns money this month but keeps less
// than 10% of it.
func lowSavingsRate(summary *analytics.Summary) (Recommendation, bool) {
	if summary == nil || !summary.MonthIncome.IsPositive() {
		return Recommendation{}, false
	}

	if summary.SavingsRate.GreaterThanOrEqual(minSavingsRate) {
		return Recommendation{}, false
	}

	return Recommendation{
		Level: LevelInfo,
		Title: "Taxa de poupança baixa",
		Message: fmt.Sprintf("Você está poupando %s da sua renda mensal. O recomendado é guardar ao menos 10%%.",
			format.Percent(summary.SavingsRate)),
	}, true
}

// dominantCategory fires when one category concentrates more than 40% of the
// top three expense categories.
func dominantCategory(categories []analytics.CategoryTotal) (Recommendation, bool) {
	if len(categories) < 2 {
		return Recommendation{}, false
	}

	top := categories
	if len(top) > 3 {
		top = top[:3]
	}

	total := decimal.Zero
	for _, c := range top {
		total = total.Add(c.Total)
	}

	if !total.IsPositive() {
		return Recommendation{}, false
	}

	leader := top[0]
	share := leader.Total.Div(total).Mul(decimal.NewFromInt(100))

	if share.LessThanOrEqual(dominantShare) {
		return Recommendation{}, false
	}

	return Recommendation{
		Level: LevelInfo,
		Title: "Categoria dominante",
		Message: fmt.Sprintf("%s concentra %s dos seus maiores gastos do mês. Vale conferir se há espaço para reduzir.",
			leader.Name, format.Percent(share)),
	}, true
}

// goalAtRisk fires when a goal is under half done with its deadline less
// than 15 days away.
func goalAtRisk(g *goal.Goal, now time.Time) (Recommendation, bool) {
	if g == nil || g.Completed || g.Deadline == nil {
		return Recommendation{}, false
	}

	remaining := g.Deadline.Sub(now)
	if remaining <= 0 || remaining >= atRiskDeadlineDur {
		return Recommendation{}, false
	}

	if g.Progress().GreaterThanOrEqual(atRiskProgress) {
		return Recommendation{}, false
	}

	return Recommendation{
		Level: LevelWarning,
		Title: "Meta em risco",
		Message: fmt.Sprintf("A meta %q está em %s com o prazo terminando em %d dias. Considere um aporte extra.",
			g.Title, format.Percent(g.Progress()), int(remaining.Hours()/24)),
	}, true
}

// FAQ is a canned question/answer pair for the advisor page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQs returns the static advisor questions, in display order.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "Quanto devo guardar por mês?",
			Answer:   "Uma referência comum é a regra 50/30/20: 50% para necessidades, 30% para desejos e 20% para poupança e investimentos.",
		},
		{
			Question: "Como montar uma reserva de emergência?",
			Answer:   "Some seus gastos mensais essenciais e multiplique por seis. Guarde esse valor em uma aplicação líquida antes de investir em ativos de maior risco.",
		},
		{
			Question: "Vale a pena quitar dívidas antes de investir?",
			Answer:   "Quase sempre sim. Dívidas com juros acima do rendimento dos seus investimentos corroem o patrimônio mais rápido do que ele cresce.",
		},
		{
			Question: "Como as categorias ajudam no controle?",
			Answer:   "Classificar cada lançamento mostra onde o dinheiro realmente vai. Categorias com crescimento constante são as primeiras candidatas a corte.",
		},
	}
}
