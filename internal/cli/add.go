package cli

import (
	"fmt"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/types"
	"github.com/spf13/cobra"
)

func addCmd(o *options) *cobra.Command {
	var file, description, amount, kind, category, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to a snapshot",
		Long: `Add a transaction to a snapshot.

The snapshot file is created when it does not exist yet. Due dates are only
kept for expenses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readOrCreateDocument(file)
			if err != nil {
				return err
			}

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}

			t := ledger.Transaction{
				Description: description,
				Amount:      value,
				Type:        ledger.TransactionType(kind),
				Category:    ledger.Category(category),
			}

			if due != "" {
				d, err := types.ParseDate(due)
				if err != nil {
					return fmt.Errorf("the due date must be given as YYYY-MM-DD: %w", err)
				}
				t.DueDate = &d
			}

			doc, t, err = doc.AddTransaction(t, o.now())
			if err != nil {
				return err
			}

			if err := writeDocument(file, doc); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Transação adicionada: %s, %s (%s)", t.Description, ledger.FormatBRL(t.Signed()), t.Category)))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&file, "snapshot", "", "snapshot file to change")
	flags.StringVarP(&description, "description", "d", "", "description")
	flags.StringVarP(&amount, "amount", "a", "", "positive amount, e.g. 49,90")
	flags.StringVarP(&kind, "type", "t", string(ledger.Expense), "income or expense")
	flags.StringVarP(&category, "category", "c", "", "category (default \"Outros\")")
	flags.StringVar(&due, "due", "", "due date of a bill as YYYY-MM-DD")

	for _, flag := range []string{"snapshot", "description", "amount"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}
