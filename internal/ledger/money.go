package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the only locale amounts and dates are rendered in.
var Locale = language.BrazilianPortuguese

// Separators of Locale, read once from a float small enough to print exactly.
var groupSep, decimalSep = func() (string, string) {
	r := []rune(message.NewPrinter(Locale).Sprintf("%.2f", 1000.5))
	return string(r[1]), string(r[5])
}()

// FormatBRL renders an amount in Brazilian reais, e.g. "R$ 1.234,56".
// Digits come from the decimal itself so large amounts keep their cents.
func FormatBRL(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	whole, frac, _ := strings.Cut(amount.Abs().StringFixed(2), ".")

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(groupSep)
		}
		b.WriteRune(d)
	}
	return sign + "R$ " + b.String() + decimalSep + frac
}

// FormatDate renders a day as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
