package cli

import (
	"fmt"
	"os"

	"github.com/meu-painel/backend/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd(o *options) *cobra.Command {
	var file, out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the PDF report for a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := readDocument(file)
			if err != nil {
				return err
			}

			if out == "" {
				out = report.Filename(doc.Name)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}

			if err := report.PDF(f, doc, o.now()); err != nil {
				f.Close()
				return err
			}

			if err := f.Close(); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Relatório salvo em "+out))
			return err
		},
	}

	cmd.Flags().StringVar(&file, "snapshot", "", "snapshot file to render")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default \"relatorio_<name>.pdf\")")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}
