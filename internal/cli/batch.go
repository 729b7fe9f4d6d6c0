package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"wordlens/internal/adapter/cache"
	"wordlens/internal/adapter/fs"
	"wordlens/internal/adapter/ingest"
	"wordlens/internal/adapter/ids"
	"wordlens/internal/usecase"
)

var (
	batchForce bool
	batchNoBar bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Analyze every document in a directory",
	Long: `Analyze every document under a directory and store the reports in
.wordlens/reports.db in the root directory. Documents whose text already has a
stored report are skipped unless --force is given.

Examples:
  wordlens batch .             # Analyze current directory
  wordlens batch ./drafts -f   # Re-analyze everything`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVarP(&batchForce, "force", "f", false, "re-analyze documents with stored reports")
	batchCmd.Flags().BoolVar(&batchNoBar, "no-progress", false, "disable the progress bar")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	engine, err := newEngine()
	if err != nil {
		return err
	}
	analyzer := cache.NewCachedAnalyzer(engine, cache.NewReportCache(cfg.Cache.MaxSize, cfg.Cache.TTL))

	walker := fs.NewWalker(cfg.Files.Includes, cfg.Files.Excludes)
	batchUC := usecase.NewBatchUseCase(st, walker, ingest.NewReader(), analyzer, ids.NewIDGenerator(), cfg.Analysis.Language)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		if batchNoBar || total == 0 {
			return
		}
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 && processed < total {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-processed)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Analyzing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := batchUC.Run(path, batchForce, progressCallback)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	fmt.Fprintf(out, "\nBatch complete:\n")
	fmt.Fprintf(out, "  Files analyzed: %d\n", result.FilesAnalyzed)
	fmt.Fprintf(out, "  Files skipped:  %d (unchanged)\n", result.FilesSkipped)

	if len(result.Reports) > 0 {
		fmt.Fprintln(out)
		writeReportTable(out, path, result.Reports)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
	}

	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
