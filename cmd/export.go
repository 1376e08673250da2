package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptic/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <learner-id>",
	Short: "Export a learner's progress workbook (xlsx)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args[0])
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file path (default <learner-id>.xlsx)")
}

func runExport(cmd *cobra.Command, learnerID string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = learnerID + ".xlsx"
	}

	if err := report.NewExporter(st).WriteWorkbook(cmd.Context(), snap, learnerID, out); err != nil {
		return err
	}
	fmt.Println("wrote", out)
	return nil
}
