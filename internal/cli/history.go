package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"wordlens/internal/domain"
	"wordlens/internal/usecase"
)

var (
	historySort  string
	historyLimit int
	historyText  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored reports",
	Long: `List the reports stored by 'batch' and 'analyze --save', oldest first.

Examples:
  wordlens history
  wordlens history show 01J9Z3K6X4N8Q2W5E7R1T0Y3U6
  wordlens history delete 01J9Z3K6X4N8Q2W5E7R1T0Y3U6`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd, historyDeleteCmd)
	historyShowCmd.Flags().StringVarP(&historySort, "sort", "s", string(domain.SortByCount), "stem order: count or distance")
	historyShowCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of stems to list (0 for all)")
	historyShowCmd.Flags().BoolVar(&historyText, "text", false, "also print the stored source text")
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := openExistingStore()
	if err != nil {
		return err
	}
	defer st.Close()

	reports, err := st.ListReports()
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(reports) == 0 {
		fmt.Fprintln(out, "No stored reports.")
		return nil
	}
	writeReportTable(out, GetRootDir(), reports)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	key, ok := usecase.ParseSortKey(historySort)
	if !ok {
		return fmt.Errorf("invalid sort key %q: want count or distance", historySort)
	}

	st, err := openExistingStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stored, err := st.GetReport(args[0])
	if errors.Is(err, domain.ErrReportNotFound) {
		return fmt.Errorf("no report with id %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report %s (%s, %s)\n\n", stored.ID, stored.Language, stored.CreatedAt.Format("2006-01-02 15:04:05"))
	data := buildReportData(engine, stored.Path, stored.Report, key, historyLimit)
	if err := renderReport(out, data); err != nil {
		return err
	}
	if historyText {
		fmt.Fprintf(out, "\n%s\n", stored.Text)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	st, err := openExistingStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteReport(args[0]); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return fmt.Errorf("no report with id %s", args[0])
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}

// writeReportTable prints one summary line per report, with paths relative
// to root where possible.
func writeReportTable(w io.Writer, root string, reports []domain.StoredReport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPATH\tWORDS\tEASE\tFOG\tWATER\tSPAM\tCREATED")
	for _, r := range reports {
		path := r.Path
		if rel, err := filepath.Rel(root, r.Path); err == nil && filepath.IsAbs(r.Path) {
			path = rel
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%.1f\t%.1f%%\t%.1f%%\t%s\n",
			r.ID,
			path,
			r.Report.Result.WordCount,
			r.Report.Readability.Ease,
			r.Report.Readability.Fog,
			r.Report.Density.Water,
			r.Report.Density.Spam,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	tw.Flush()
}
