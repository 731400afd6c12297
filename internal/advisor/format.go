package advisor

import (
	"fmt"
	"strings"

	"github.com/meu-painel/backend/internal/ledger"
)

// Separator is placed between two sections of the report.
const Separator = "\n\n---\n\n"

// NoInsights is the whole report when no rule produced a section.
const NoInsights = "# Nenhum insight por enquanto\n\nAdicione algumas transações, especialmente despesas com datas de vencimento, para receber sugestões personalizadas."

// Format renders the sections as markdown.
func Format(sections []Section) string {
	if len(sections) == 0 {
		return NoInsights
	}

	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, FormatSection(s))
	}

	return strings.Join(parts, Separator)
}

// FormatSection renders a single section.
func FormatSection(s Section) string {
	var b strings.Builder

	switch s.Kind {
	case KindOverdue:
		b.WriteString("# ⚠️ Contas Atrasadas\n\n")
		b.WriteString("**Atenção:** Você possui contas que já venceram. Pagar contas em atraso pode gerar multas e juros. Priorize o pagamento delas o mais rápido possível.\n\n")
		b.WriteString("**Contas vencidas:**\n")
		writeBills(&b, "Venceu em", s.Bills)

	case KindUpcoming:
		b.WriteString("# 🗓️ Contas Próximas do Vencimento\n\n")
		b.WriteString("**Fique de olho!** As seguintes contas vencem em breve. Organize-se para não perder o prazo.\n\n")
		b.WriteString("**Contas a vencer:**\n")
		writeBills(&b, "Vence em", s.Bills)

	case KindTopCategory:
		b.WriteString("# 📊 Análise de Gastos\n\n")
		if s.Top != nil {
			fmt.Fprintf(&b, "**Onde seu dinheiro está indo?** Sua maior despesa é com **%s**, totalizando **%s**.\n\n", s.Top.Category, ledger.FormatBRL(s.Top.Amount))
		}
		b.WriteString("* Avalie se é possível reduzir despesas nessa área. Pequenos cortes podem fazer uma grande diferença no final do mês.")

	case KindNegativeBalance:
		b.WriteString("# ⚖️ Balanço Mensal\n\n")
		if s.Totals != nil {
			fmt.Fprintf(&b, "**Atenção, saldo negativo!** Suas despesas (%s) foram maiores que suas receitas (%s). É importante reavaliar seus gastos.\n\n", ledger.FormatBRL(s.Totals.Expense), ledger.FormatBRL(s.Totals.Income))
		}
		b.WriteString("* Reveja seu orçamento e identifique onde pode economizar para reverter essa situação.")

	case KindBudgetCaution:
		b.WriteString("# ⚖️ Balanço Mensal\n\n")
		if s.Totals != nil {
			fmt.Fprintf(&b, "**Cuidado com o orçamento!** Suas despesas (%s) representam mais de 80%% da sua receita (%s). Isso pode deixar pouco espaço para imprevistos e para poupar.\n\n", ledger.FormatBRL(s.Totals.Expense), ledger.FormatBRL(s.Totals.Income))
		}
		b.WriteString("* Tente identificar gastos não essenciais que podem ser cortados ou reduzidos.")

	case KindPositiveBalance:
		b.WriteString("# 💰 Saldo Positivo!\n\n")
		if s.Totals != nil {
			fmt.Fprintf(&b, "**Bom trabalho!** Você manteve um saldo positivo de **%s**.\n\n", ledger.FormatBRL(s.Totals.Balance))
		}
		b.WriteString("* Considere usar parte desse valor para começar uma reserva de emergência ou para investir em seus objetivos de longo prazo.")

	case KindTips:
		b.WriteString("# ✨ Dicas Gerais\n\n")
		b.WriteString("* **Planejamento é tudo:** Crie um orçamento mensal. Defina limites de gastos para cada categoria e acompanhe seu progresso.\n")
		b.WriteString("* **Reserva de Emergência:** Ter um fundo para cobrir de 3 a 6 meses de despesas essenciais pode trazer muita tranquilidade. Comece a construir o seu, mesmo que com pouco.\n")
	}

	return b.String()
}

func writeBills(b *strings.Builder, verb string, bills []Bill) {
	for _, bill := range bills {
		fmt.Fprintf(b, "* %s (%s %s) - %s\n", bill.Description, verb, ledger.FormatDate(bill.DueDate.Time()), ledger.FormatBRL(bill.Amount))
	}
}
