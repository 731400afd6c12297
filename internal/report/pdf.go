// Package report renders the downloadable PDF report of a profile.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/meu-painel/backend/internal/ledger"
)

const (
	Title = "Relatório Financeiro Pessoal"

	marginLeft = 14.0
	rowHeight  = 7.0
)

// Table columns and their widths in mm.
var (
	columns = []string{"Descrição", "Categoria", "Vencimento", "Valor"}
	widths  = []float64{76, 40, 30, 36}
)

// Filename is the name the report is offered for download under.
func Filename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == '"', r == '\\', r == '/':
			return '_'
		}
		return r
	}, name)

	return fmt.Sprintf("relatorio_%s.pdf", name)
}

// TableRows returns the transaction table, most recent first.
func TableRows(p ledger.PersonData) [][]string {
	transactions := ledger.RecentFirst(p.Transactions)

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		due := "-"
		if t.DueDate != nil {
			due = ledger.FormatDate(t.DueDate.Time())
		}

		sign := "+"
		if t.Type == ledger.Expense {
			sign = "-"
		}

		rows = append(rows, []string{
			t.Description,
			string(t.Category),
			due,
			fmt.Sprintf("%s %s", sign, ledger.FormatBRL(t.Amount)),
		})
	}

	return rows
}

// PDF writes the report for the profile to w.
func PDF(w io.Writer, p ledger.PersonData, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetCreator("meu-painel", true)
	pdf.SetCreationDate(now)
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.AddPage()

	// The core fonts use cp1252, which covers the pt-BR accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginLeft, 22, tr(Title))

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(marginLeft, 28, tr(fmt.Sprintf("Gerado em %s", ledger.FormatDate(now))))

	summary := ledger.Summarize(p.Transactions)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginLeft, 40, tr(fmt.Sprintf("Relatório de %s", p.Name)))

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(marginLeft, 47, tr(fmt.Sprintf("Total Receitas: %s", ledger.FormatBRL(summary.Income))))
	pdf.Text(marginLeft, 54, tr(fmt.Sprintf("Total Despesas: %s", ledger.FormatBRL(summary.Expense))))
	pdf.Text(marginLeft, 61, tr(fmt.Sprintf("Saldo: %s", ledger.FormatBRL(summary.Balance))))

	pdf.SetY(68)
	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(74, 144, 226)
		pdf.SetTextColor(255, 255, 255)
		for i, c := range columns {
			pdf.CellFormat(widths[i], rowHeight, tr(c), "", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}

	header()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	for n, row := range TableRows(p) {
		if pdf.GetY()+rowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}

		// Striped rows
		fill := n%2 == 1
		pdf.SetFillColor(245, 245, 245)

		for i, cell := range row {
			align := "L"
			if i == len(row)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], rowHeight, fit(pdf, tr(cell), widths[i]), "", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	return nil
}

// fit shortens s so that it fits into a cell of the given width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	const ellipsis = "..."
	limit := width - 2*pdf.GetCellMargin()

	if pdf.GetStringWidth(s) <= limit {
		return s
	}

	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+ellipsis) > limit {
		r = r[:len(r)-1]
	}

	return string(r) + ellipsis
}
