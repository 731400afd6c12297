package cli

import (
	"fmt"

	"github.com/meu-painel/backend/internal/advisor"
	"github.com/spf13/cobra"
)

func adviseCmd(o *options) *cobra.Command {
	var file, date string

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Print the advisory report for a snapshot",
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

			report, err := advisor.New().Generate(cmd.Context(), doc, today)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Text)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "snapshot", "", "snapshot file to analyze")
	cmd.Flags().StringVar(&date, "date", "", "reference day as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}
