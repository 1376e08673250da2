package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner-id>",
	Short: "Delete all engine state for a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd, args[0])
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, learnerID string) error {
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Printf("This deletes all progress, evidence and decisions for %s. Continue? [y/N] ", learnerID)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ResetLearner(cmd.Context(), learnerID); err != nil {
		return err
	}
	fmt.Println("reset", learnerID)
	return nil
}
