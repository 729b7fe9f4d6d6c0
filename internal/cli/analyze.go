package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"wordlens/internal/adapter/ids"
	"wordlens/internal/domain"
	"wordlens/internal/usecase"
)

var (
	analyzeSort  string
	analyzeLimit int
	analyzeJSON  bool
	analyzeSave  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a document",
	Long: `Analyze a document and print readability, density and repeated stems.
Reads standard input when no file is given. Supported files: .txt, .md,
.html, .pdf, .docx.

Examples:
  wordlens analyze essay.txt
  wordlens analyze --sort distance --limit 50 essay.md
  cat essay.txt | wordlens analyze --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeSort, "sort", "s", string(domain.SortByCount), "stem order: count or distance")
	analyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "n", 20, "number of stems to list (0 for all)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "store the report in history")
}

// analyzeOutput is the JSON form of a report.
type analyzeOutput struct {
	ID          string                   `json:"id,omitempty"`
	Source      string                   `json:"source"`
	Sort        domain.SortKey           `json:"sort"`
	WordCount   int                      `json:"word_count"`
	Chars       int                      `json:"char_count"`
	CharsNoWS   int                      `json:"char_count_no_spaces"`
	Normalized  int                      `json:"normalized_length"`
	Readability domain.ReadabilityReport `json:"readability"`
	Density     domain.DensityReport     `json:"density"`
	Stems       []WordRow                `json:"stems"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	key, ok := usecase.ParseSortKey(analyzeSort)
	if !ok {
		return fmt.Errorf("invalid sort key %q: want count or distance", analyzeSort)
	}

	text, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	report := engine.Analyze(text)

	var id string
	if analyzeSave {
		id, err = saveReport(source, text, report)
		if err != nil {
			return err
		}
	}

	data := buildReportData(engine, source, report, key, analyzeLimit)
	out := cmd.OutOrStdout()

	if analyzeJSON {
		payload := analyzeOutput{
			ID:          id,
			Source:      source,
			Sort:        key,
			WordCount:   report.Result.WordCount,
			Chars:       report.Result.CharCount,
			CharsNoWS:   report.Result.CharCountNoSpaces,
			Normalized:  report.Result.NormalizedLength,
			Readability: report.Readability,
			Density:     report.Density,
			Stems:       data.Rows,
		}
		output, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	if err := renderReport(out, data); err != nil {
		return err
	}
	if id != "" {
		fmt.Fprintf(out, "\nSaved as %s\n", id)
	}
	return nil
}

// saveReport stores a single report in the history database under the root
// directory.
func saveReport(source, text string, report domain.Report) (string, error) {
	st, err := openStore()
	if err != nil {
		return "", err
	}
	defer st.Close()

	path := source
	if source != "-" {
		if abs, err := filepath.Abs(source); err == nil {
			path = abs
		}
	}

	now := time.Now()
	stored := domain.StoredReport{
		ID:        ids.NewIDGenerator().New(now),
		Path:      path,
		Hash:      usecase.ContentHash(text),
		CreatedAt: now,
		Language:  GetConfig().Analysis.Language,
		Report:    report,
		Text:      text,
	}
	if err := st.PutReport(stored); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return stored.ID, nil
}
