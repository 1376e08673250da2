package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptic/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <learner-id>",
	Short: "Show a learner's completion and mastery summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd, args[0])
	},
}

func runStats(cmd *cobra.Command, learnerID string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	records, err := st.LearnerRecords(ctx, learnerID)
	if err != nil {
		return err
	}
	byUnit := make(map[string]*store.ProgressRecord, len(records))
	for _, rec := range records {
		byUnit[rec.UnitID] = rec
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "COURSE\tSTATUS\tCOMPLETION\tTIME SPENT\n")
	for _, course := range snap.Courses() {
		rec := byUnit[course.ID]
		status, fraction, secs := string(store.StatusNotStarted), 0.0, int64(0)
		if rec != nil {
			status, fraction, secs = string(rec.Status), rec.Fraction, rec.TimeSpentSecs
		}
		name := course.Name
		if name == "" {
			name = course.ID
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%s\n", name, status, fraction*100, formatDuration(secs))
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "OBJECTIVE\tDECISION\tLEVEL\tCONFIDENCE\tEVIDENCE\n")
	for _, u := range snap.Units() {
		if u.Objective == "" {
			continue
		}
		d, err := st.LatestDecision(ctx, learnerID, u.Objective)
		if err != nil {
			return err
		}
		if d == nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t0\n", u.Objective)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%d\n",
			d.ObjectiveID, d.Decision, d.MasteryLevel, d.Confidence, d.EvidenceCount)
	}
	return w.Flush()
}

func formatDuration(secs int64) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm%ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%dh%dm", secs/3600, (secs%3600)/60)
}
