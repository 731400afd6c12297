package ledger

import "strings"

// Category labels a transaction. The known categories are listed below, any
// other non-empty label is a custom category chosen by the user.
type Category string

const (
	CategorySalary      Category = "Salário"
	CategoryInvestments Category = "Investimentos"
	CategorySales       Category = "Vendas"
	CategoryOther       Category = "Outros"
	CategoryFood        Category = "Alimentação"
	CategoryTransport   Category = "Transporte"
	CategoryHousing     Category = "Moradia"
	CategoryLeisure     Category = "Lazer"
	CategoryHealth      Category = "Saúde"
	CategoryEducation   Category = "Educação"
	CategoryBills       Category = "Contas"

	// CategorySavings is used for the expense mirroring a savings goal deposit.
	CategorySavings Category = "Poupança"
)

var (
	incomeCategories  = []Category{CategorySalary, CategoryInvestments, CategorySales, CategoryOther}
	expenseCategories = []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryLeisure,
		CategoryHealth,
		CategoryEducation,
		CategoryBills,
		CategoryOther,
	}
)

// Known reports if the category is one of the predefined categories.
func (c Category) Known() bool {
	if c == CategorySavings {
		return true
	}

	for _, k := range incomeCategories {
		if c == k {
			return true
		}
	}

	for _, k := range expenseCategories {
		if c == k {
			return true
		}
	}

	return false
}

// Custom reports if the category is a user defined label.
func (c Category) Custom() bool {
	return c != "" && !c.Known()
}

// NormalizeCategory trims the label and falls back to "Outros" for empty ones.
func NormalizeCategory(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOther
	}

	return Category(s)
}

// SuggestedCategories returns the categories offered for a transaction type.
func SuggestedCategories(t TransactionType) []Category {
	var src []Category
	switch t {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	default:
		return []Category{}
	}

	return append([]Category(nil), src...)
}
