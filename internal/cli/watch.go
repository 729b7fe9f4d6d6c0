package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"wordlens/internal/adapter/cache"
	"wordlens/internal/adapter/fs"
	"wordlens/internal/adapter/ingest"
	"wordlens/internal/domain"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <file|dir>",
	Short: "Re-analyze documents whenever they are saved",
	Long: `Watch a document, or the documents directly inside a directory, and print a
one-line summary each time one is written. Unchanged text is served from the
report cache.

Examples:
  wordlens watch essay.md
  wordlens watch ./drafts --debounce 500ms`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before re-analysis")
}

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	cfg := GetConfig()
	engine, err := newEngine()
	if err != nil {
		return err
	}
	analyzer := cache.NewCachedAnalyzer(engine, cache.NewReportCache(cfg.Cache.MaxSize, cfg.Cache.TTL))
	reader := ingest.NewReader()
	walker := fs.NewWalker(cfg.Files.Includes, cfg.Files.Excludes)

	root := target
	if !info.IsDir() {
		root = filepath.Dir(target)
	}
	accept := func(path string) bool {
		if !info.IsDir() {
			return path == target
		}
		rel, err := filepath.Rel(root, path)
		return err == nil && walker.Match(rel) && ingest.Supported(path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory so editors that replace the file on save are seen
	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	out := cmd.OutOrStdout()
	report := func(path string) {
		text, err := reader.ReadText(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to read document")
			return
		}
		r, hit := analyzer.Analyze(text)
		rel, _ := filepath.Rel(root, path)
		fmt.Fprintf(out, "%s  %-30s words=%d ease=%.1f fog=%.1f water=%.1f%% spam=%.1f%% repeats=%d\n",
			time.Now().Format("15:04:05"), rel,
			r.Result.WordCount, r.Readability.Ease, r.Readability.Fog,
			r.Density.Water, r.Density.Spam, countRepeated(r.Result.Stats))
		log.Debug().Str("path", rel).Bool("cache_hit", hit).Msg("document analyzed")
	}

	if !info.IsDir() {
		report(target)
	}
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", args[0])

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	pending := make(map[string]struct{})
	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !accept(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(watchDebounce)

		case <-timer.C:
			for path := range pending {
				report(path)
			}
			clear(pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")

		case <-signals:
			return nil
		}
	}
}

func countRepeated(stats map[string]domain.WordStat) int {
	n := 0
	for _, ws := range stats {
		if ws.Repeated() {
			n++
		}
	}
	return n
}
