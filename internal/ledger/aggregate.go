package ledger

import (
	"sort"
	"time"

	"github.com/meu-painel/backend/internal/types"
	"github.com/shopspring/decimal"
)

// HistoryMonths is the number of months covered by the balance history.
const HistoryMonths = 6

// CategoryTotal is the summed expense of one category.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryShare is a CategoryTotal with its share of all expenses.
type CategoryShare struct {
	CategoryTotal
	Percent decimal.Decimal `json:"percent"` // Share of the total expense, in percent
}

// MonthBalance sums up one calendar month.
type MonthBalance struct {
	Month   types.Month     `json:"month"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// SavingsBand classifies a savings rate.
type SavingsBand string

const (
	SavingsBandExcellent SavingsBand = "excelente"
	SavingsBandGood      SavingsBand = "boa"
	SavingsBandLow       SavingsBand = "baixa"
)

// SpendingStatus classifies expenses relative to income.
type SpendingStatus string

const (
	SpendingControlled SpendingStatus = "controlado"
	SpendingAttention  SpendingStatus = "atencao"
)

var (
	cautionShare    = decimal.RequireFromString("0.8")
	excellentRate   = decimal.NewFromInt(20)
	goodRate        = decimal.NewFromInt(10)
	historyMonthsDc = decimal.NewFromInt(HistoryMonths)
)

// TotalByType sums the amounts of all transactions of the given type.
func TotalByType(transactions []Transaction, t TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tr := range transactions {
		if tr.Type == t {
			total = total.Add(tr.Amount)
		}
	}
	return total
}

// Balance is the income total minus the expense total.
func Balance(transactions []Transaction) decimal.Decimal {
	return TotalByType(transactions, Income).Sub(TotalByType(transactions, Expense))
}

// ExpenseByCategory sums expenses per category. Categories appear in the
// order they are first encountered.
func ExpenseByCategory(transactions []Transaction) []CategoryTotal {
	totals := []CategoryTotal{}
	index := map[Category]int{}

	for _, t := range transactions {
		if t.Type != Expense {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			index[t.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: t.Category, Amount: t.Amount})
			continue
		}

		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}

	return totals
}

// sortedByAmount returns a copy sorted descending by amount. Equal amounts
// keep their relative order.
func sortedByAmount(totals []CategoryTotal) []CategoryTotal {
	sorted := append([]CategoryTotal(nil), totals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	return sorted
}

// TopCategory returns the category with the highest expense. On ties, the
// first encountered category wins. ok is false when there are no expenses.
func TopCategory(totals []CategoryTotal) (top CategoryTotal, ok bool) {
	if len(totals) == 0 {
		return CategoryTotal{}, false
	}

	return sortedByAmount(totals)[0], true
}

// CategoryBreakdown returns all expense categories sorted descending by amount
// with their share of the total expense.
func CategoryBreakdown(transactions []Transaction) []CategoryShare {
	totals := sortedByAmount(ExpenseByCategory(transactions))
	expense := TotalByType(transactions, Expense)

	shares := make([]CategoryShare, 0, len(totals))
	for _, t := range totals {
		percent := decimal.Zero
		if expense.IsPositive() {
			percent = t.Amount.Div(expense).Mul(hundred).Round(2)
		}

		shares = append(shares, CategoryShare{CategoryTotal: t, Percent: percent})
	}

	return shares
}

// TopCategories returns at most n entries of the category breakdown.
func TopCategories(transactions []Transaction, n int) []CategoryShare {
	shares := CategoryBreakdown(transactions)
	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// MonthlyBalanceHistory sums income and expense for the months trailing the
// reference month, oldest first. The reference month is the last entry.
// Months without transactions are included with zero sums.
func MonthlyBalanceHistory(transactions []Transaction, months int, reference time.Time) []MonthBalance {
	if months <= 0 {
		months = HistoryMonths
	}

	current := types.MonthOf(reference)
	history := make([]MonthBalance, 0, months)

	for i := months - 1; i >= 0; i-- {
		m := current.AddDate(0, -i)
		income := decimal.Zero
		expense := decimal.Zero

		for _, t := range transactions {
			if !m.Contains(t.Date.In(reference.Location())) {
				continue
			}

			switch t.Type {
			case Income:
				income = income.Add(t.Amount)
			case Expense:
				expense = expense.Add(t.Amount)
			}
		}

		history = append(history, MonthBalance{
			Month:   m,
			Label:   m.Label(),
			Income:  income,
			Expense: expense,
			Net:     income.Sub(expense),
		})
	}

	return history
}

// SavingsRate is the share of income that was not spent, in percent. It is
// zero when there is no income.
func SavingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	return income.Sub(expense).Div(income).Mul(hundred).Round(2)
}

// SavingsRateBand classifies a savings rate.
func SavingsRateBand(rate decimal.Decimal) SavingsBand {
	switch {
	case rate.GreaterThan(excellentRate):
		return SavingsBandExcellent
	case rate.GreaterThan(goodRate):
		return SavingsBandGood
	default:
		return SavingsBandLow
	}
}

// SpendingControl reports if expenses stay below 80% of the income.
func SpendingControl(income, expense decimal.Decimal) SpendingStatus {
	if expense.LessThan(income.Mul(cautionShare)) {
		return SpendingControlled
	}
	return SpendingAttention
}

// ExceedsCautionShare reports if expense is more than 80% of income.
func ExceedsCautionShare(income, expense decimal.Decimal) bool {
	return expense.GreaterThan(income.Mul(cautionShare))
}

// AverageMonthlyExpense spreads the expense total over the history months.
func AverageMonthlyExpense(expense decimal.Decimal) decimal.Decimal {
	return expense.Div(historyMonthsDc).Round(2)
}

// BiggestExpense returns the expense with the highest amount. On ties, the
// first one wins.
func BiggestExpense(transactions []Transaction) (Transaction, bool) {
	var biggest Transaction
	found := false

	for _, t := range transactions {
		if t.Type != Expense {
			continue
		}

		if !found || t.Amount.GreaterThan(biggest.Amount) {
			biggest = t
			found = true
		}
	}

	return biggest, found
}

// Summary holds the headline figures of a set of transactions.
type Summary struct {
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Balance     decimal.Decimal `json:"balance"`
	SavingsRate decimal.Decimal `json:"savingsRate"`
}

// Summarize computes the headline figures.
func Summarize(transactions []Transaction) Summary {
	income := TotalByType(transactions, Income)
	expense := TotalByType(transactions, Expense)

	return Summary{
		Income:      income,
		Expense:     expense,
		Balance:     income.Sub(expense),
		SavingsRate: SavingsRate(income, expense),
	}
}

// Combined is the joint view over several people.
type Combined struct {
	Summary
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`
}

// Combine merges the transactions of several people and summarizes them.
func Combine(people ...PersonData) Combined {
	var all []Transaction
	for _, p := range people {
		all = append(all, p.Transactions...)
	}

	return Combined{
		Summary:           Summarize(all),
		ExpenseByCategory: ExpenseByCategory(all),
	}
}
