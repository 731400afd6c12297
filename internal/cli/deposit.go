package cli

import (
	"fmt"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/spf13/cobra"
)

func depositCmd(o *options) *cobra.Command {
	var file, goal, amount string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into a savings goal of a snapshot",
		Long: `Deposit into a savings goal of a snapshot.

The deposit is also recorded as an expense in the category "Poupança".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(file)
			if err != nil {
				return err
			}

			id, err := findGoal(doc, goal)
			if err != nil {
				return err
			}

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}

			doc, g, _, err := doc.Deposit(id, value, o.now())
			if err != nil {
				return err
			}

			if err := writeDocument(file, doc); err != nil {
				return err
			}

			msg := fmt.Sprintf("%s: %s de %s (%s%%)", g.Name, ledger.FormatBRL(g.CurrentAmount), ledger.FormatBRL(g.TargetAmount), g.Progress().StringFixed(0))
			if g.Achieved() {
				msg += " Meta atingida!"
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(msg))
			return err
		},
	}

	cmd.Flags().StringVar(&file, "snapshot", "", "snapshot file to change")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "id or name of the goal")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "positive amount")

	for _, flag := range []string{"snapshot", "goal", "amount"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}
