package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/spf13/cobra"
)

var ErrGoalAmbiguous = errors.New("more than one goal has this name, use the id instead")

func goalCmd(o *options) *cobra.Command {
	var file, name, target string

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Add a savings goal to a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readOrCreateDocument(file)
			if err != nil {
				return err
			}

			value, err := parseAmount(target)
			if err != nil {
				return err
			}

			doc, g, err := doc.AddGoal(ledger.SavingsGoal{Name: name, TargetAmount: value})
			if err != nil {
				return err
			}

			if err := writeDocument(file, doc); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Meta criada: %s, alvo %s (%s)", g.Name, ledger.FormatBRL(g.TargetAmount), g.ID)))
			return err
		},
	}

	cmd.Flags().StringVar(&file, "snapshot", "", "snapshot file to change")
	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the goal")
	cmd.Flags().StringVar(&target, "target", "", "target amount")

	for _, flag := range []string{"snapshot", "name", "target"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

// findGoal returns the id of the goal with the given id or, ignoring case,
// name.
func findGoal(p ledger.PersonData, ref string) (string, error) {
	ref = strings.TrimSpace(ref)

	var matches []string
	for _, g := range p.SavingsGoals {
		if g.ID == ref {
			return g.ID, nil
		}

		if strings.EqualFold(g.Name, ref) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", ledger.ErrGoalNotFound
	case 1:
		return matches[0], nil
	default:
		return "", ErrGoalAmbiguous
	}
}
