// Package importer turns bank statements into transactions.
package importer

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrParse = errors.New("the statement could not be parsed")

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)

	// Opening tags on their own line that are missing the closing bracket
	unclosedTagPattern = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Transaction is a parsed statement line.
type Transaction struct {
	Transaction ledger.Transaction
	FITID       string
	Hash        string
}

// preprocess fixes formatting problems that banks commonly produce and
// that the OFX parser does not accept.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTagPattern.ReplaceAllString(content, "$1>")
}

// ParseOFX reads bank and credit card statement transactions from an OFX or
// QFX file. Debits become expenses, credits become income. Lines with a zero
// amount are skipped. Categories are left empty for Categorize to fill in.
func ParseOFX(r io.Reader) ([]Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	transactions := []Transaction{}

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}

		for _, t := range stmt.BankTranList.Transactions {
			if parsed, ok := convert(t); ok {
				transactions = append(transactions, parsed)
			}
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}

		for _, t := range stmt.BankTranList.Transactions {
			if parsed, ok := convert(t); ok {
				transactions = append(transactions, parsed)
			}
		}
	}

	log.Debug().Int("transactions", len(transactions)).Int("bank", len(resp.Bank)).Int("credit card", len(resp.CreditCard)).Msg("Parsed OFX statement")
	return transactions, nil
}

func convert(t ofxgo.Transaction) (Transaction, bool) {
	f, _ := t.TrnAmt.Float64()
	amount := decimal.NewFromFloat(f).Round(2)
	if amount.IsZero() {
		log.Debug().Str("fitid", string(t.FiTID)).Msg("Skipping OFX transaction without amount")
		return Transaction{}, false
	}

	tt := ledger.Income
	if amount.IsNegative() {
		tt = ledger.Expense
		amount = amount.Neg()
	}

	description := describe(t)
	date := t.DtPosted.Time.UTC()

	return Transaction{
		Transaction: ledger.Transaction{
			Description: description,
			Amount:      amount,
			Type:        tt,
			Date:        date,
		},
		FITID: string(t.FiTID),
		Hash:  Hash(string(t.FiTID), date, amount, description),
	}, true
}

// describe prefers the payee over the name over the memo.
func describe(t ofxgo.Transaction) string {
	candidates := []string{string(t.Name), string(t.Memo)}
	if t.Payee != nil {
		candidates = append([]string{string(t.Payee.Name)}, candidates...)
	}

	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}

	return t.TrnType.String()
}
