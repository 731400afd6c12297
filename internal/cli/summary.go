package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/meu-painel/backend/internal/advisor"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/spf13/cobra"
)

func summaryCmd(o *options) *cobra.Command {
	var file, date string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the headline figures, goals and bills of a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(file)
			if err != nil {
				return err
			}

			today, err := o.today(date)
			if err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), doc, today)
		},
	}

	cmd.Flags().StringVar(&file, "snapshot", "", "snapshot file to summarize")
	cmd.Flags().StringVar(&date, "date", "", "reference day for bills as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func printSummary(w io.Writer, p ledger.PersonData, today time.Time) error {
	s := ledger.Summarize(p.Transactions)

	balanceStyle := SuccessStyle
	if s.Balance.IsNegative() {
		balanceStyle = ErrorStyle
	}

	var figures strings.Builder
	tw := tabwriter.NewWriter(&figures, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Receitas\t%s\n", ledger.FormatBRL(s.Income))
	fmt.Fprintf(tw, "Despesas\t%s\n", ledger.FormatBRL(s.Expense))
	fmt.Fprintf(tw, "Saldo\t%s\n", balanceStyle.Render(ledger.FormatBRL(s.Balance)))
	fmt.Fprintf(tw, "Taxa de poupança\t%s%% (%s)", s.SavingsRate.StringFixed(1), ledger.SavingsRateBand(s.SavingsRate))
	if err := tw.Flush(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(p.Name) + "\n")
	b.WriteString(BoxStyle.Render(figures.String()) + "\n")

	if top := ledger.TopCategories(p.Transactions, 3); len(top) > 0 {
		b.WriteString("\n" + TitleStyle.Render("Maiores categorias") + "\n")
		for _, c := range top {
			fmt.Fprintf(&b, "  %s: %s (%s%%)\n", c.Category, ledger.FormatBRL(c.Amount), c.Percent.StringFixed(1))
		}
	}

	if len(p.SavingsGoals) > 0 {
		b.WriteString("\n" + TitleStyle.Render("Metas") + "\n")
		for _, g := range p.SavingsGoals {
			line := fmt.Sprintf("  %s: %s de %s (%s%%)", g.Name, ledger.FormatBRL(g.CurrentAmount), ledger.FormatBRL(g.TargetAmount), g.Progress().StringFixed(0))
			if g.Achieved() {
				line = SuccessStyle.Render(line + " ✓")
			}
			b.WriteString(line + "\n")
		}
	}

	for _, section := range advisor.Evaluate(p.Transactions, today) {
		switch section.Kind {
		case advisor.KindOverdue:
			b.WriteString("\n" + WarningStyle.Render(fmt.Sprintf("%d conta(s) vencida(s)", len(section.Bills))) + "\n")
		case advisor.KindUpcoming:
			b.WriteString("\n" + SubtleStyle.Render(fmt.Sprintf("%d conta(s) a vencer nos próximos dias", len(section.Bills))) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
