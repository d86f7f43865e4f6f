package category

import "time"

// Type says whether a category classifies income or expense transactions.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category is a per-user transaction label with display attributes.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Type      Type
	Color     string
	Icon      string
	CreatedAt time.Time
}

// Defaults returns the category set seeded for every new user.
func Defaults() []Category {
	return []Category{
		{Name: "Salário", Type: TypeIncome, Color: "#00b894", Icon: "fas fa-briefcase"},
		{Name: "Investimentos", Type: TypeIncome, Color: "#0984e3", Icon: "fas fa-chart-line"},
		{Name: "Freelance", Type: TypeIncome, Color: "#6c5ce7", Icon: "fas fa-laptop"},
		{Name: "Outros Rendimentos", Type: TypeIncome, Color: "#00cec9", Icon: "fas fa-coins"},

		{Name: "Moradia", Type: TypeExpense, Color: "#d63031", Icon: "fas fa-home"},
		{Name: "Alimentação", Type: TypeExpense, Color: "#e17055", Icon: "fas fa-utensils"},
		{Name: "Transporte", Type: TypeExpense, Color: "#fdcb6e", Icon: "fas fa-car"},
		{Name: "Saúde", Type: TypeExpense, Color: "#e84393", Icon: "fas fa-heartbeat"},
		{Name: "Lazer", Type: TypeExpense, Color: "#a29bfe", Icon: "fas fa-gamepad"},
		{Name: "Educação", Type: TypeExpense, Color: "#74b9ff", Icon: "fas fa-graduation-cap"},
		{Name: "Outros Gastos", Type: TypeExpense, Color: "#636e72", Icon: "fas fa-tag"},
	}
}
