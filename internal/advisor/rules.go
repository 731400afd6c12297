package advisor

import (
	"sort"
	"time"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// upcomingDays is the window in which a bill counts as upcoming.
const upcomingDays = 7

// facts are computed once and shared by all rules.
type facts struct {
	today        time.Time
	transactions []ledger.Transaction
	expenses     []ledger.Transaction
	income       decimal.Decimal
	expense      decimal.Decimal
}

func newFacts(transactions []ledger.Transaction, today time.Time) facts {
	f := facts{
		today:        today,
		transactions: transactions,
		income:       ledger.TotalByType(transactions, ledger.Income),
		expense:      ledger.TotalByType(transactions, ledger.Expense),
	}

	for _, t := range transactions {
		if t.Type == ledger.Expense {
			f.expenses = append(f.expenses, t)
		}
	}

	return f
}

// bills returns the expenses with a due date for which match returns true,
// sorted ascending by due date.
func (f facts) bills(match func(days int) bool) []Bill {
	var bills []Bill
	for _, t := range f.expenses {
		days, ok := t.DaysUntilDue(f.today)
		if !ok || !match(days) {
			continue
		}

		bills = append(bills, Bill{
			Description: t.Description,
			Amount:      t.Amount,
			DueDate:     *t.DueDate,
			Days:        days,
		})
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].DueDate.Before(bills[j].DueDate)
	})

	return bills
}

// rule inspects the facts and the sections produced so far. It returns
// false when it has nothing to report.
type rule func(f facts, produced []Section) (Section, bool)

// rules in report order.
var rules = []rule{
	overdueBills,
	upcomingBills,
	topCategory,
	balanceCommentary,
	generalTips,
}

func overdueBills(f facts, _ []Section) (Section, bool) {
	bills := f.bills(func(days int) bool { return days < 0 })
	if len(bills) == 0 {
		return Section{}, false
	}

	return Section{Kind: KindOverdue, Bills: bills}, true
}

func upcomingBills(f facts, _ []Section) (Section, bool) {
	bills := f.bills(func(days int) bool { return days >= 0 && days <= upcomingDays })
	if len(bills) == 0 {
		return Section{}, false
	}

	return Section{Kind: KindUpcoming, Bills: bills}, true
}

func topCategory(f facts, _ []Section) (Section, bool) {
	if len(f.expenses) == 0 {
		return Section{}, false
	}

	top, ok := ledger.TopCategory(ledger.ExpenseByCategory(f.expenses))
	if !ok {
		return Section{}, false
	}

	return Section{Kind: KindTopCategory, Top: &top}, true
}

// balanceCommentary compares income and expense. The cases are mutually
// exclusive and checked in order.
func balanceCommentary(f facts, _ []Section) (Section, bool) {
	if f.income.IsZero() && f.expense.IsZero() {
		return Section{}, false
	}

	totals := &Totals{
		Income:  f.income,
		Expense: f.expense,
		Balance: f.income.Sub(f.expense),
	}

	switch {
	case f.expense.GreaterThan(f.income):
		return Section{Kind: KindNegativeBalance, Totals: totals}, true
	case f.income.IsPositive() && ledger.ExceedsCautionShare(f.income, f.expense):
		return Section{Kind: KindBudgetCaution, Totals: totals}, true
	case f.income.IsPositive() && !totals.Balance.IsNegative():
		return Section{Kind: KindPositiveBalance, Totals: totals}, true
	}

	return Section{}, false
}

func generalTips(f facts, produced []Section) (Section, bool) {
	if len(produced) >= 2 || len(f.transactions) == 0 {
		return Section{}, false
	}

	return Section{Kind: KindTips}, true
}

// Evaluate runs every rule against the transactions and returns the
// produced sections in report order.
func Evaluate(transactions []ledger.Transaction, today time.Time) []Section {
	f := newFacts(transactions, today)

	sections := []Section{}
	for _, r := range rules {
		if s, ok := r(f, sections); ok {
			sections = append(sections, s)
		}
	}

	return sections
}
