package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"wordlens/config"
	"wordlens/internal/adapter/cache"
	"wordlens/internal/adapter/fs"
	"wordlens/internal/adapter/ingest"
	"wordlens/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Directory of documents to analyze")
	rounds := flag.Int("n", 5, "Analysis rounds per document")
	flag.Parse()
	if *rounds < 1 {
		*rounds = 1
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	engine, err := usecase.NewEngineFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	files, err := fs.NewWalker(cfg.Files.Includes, cfg.Files.Excludes).Walk(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking %s: %v\n", *dir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("Usage: go run cmd/benchmark/main.go -dir ./texts -n 5")
		fmt.Println("\nNo documents found.")
		os.Exit(1)
	}

	fmt.Println("ANALYSIS BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Language:  %s\n", engine.Language().Name)
	fmt.Printf("Documents: %d\n", len(files))
	fmt.Printf("Rounds:    %d\n", *rounds)
	fmt.Println(strings.Repeat("-", 70))

	reader := ingest.NewReader()
	cached := cache.NewCachedAnalyzer(engine, cache.NewReportCache(len(files), time.Hour))

	var totalWords int
	var totalCold, totalWarm time.Duration
	for _, f := range files {
		text, err := reader.ReadText(f.Path)
		if err != nil {
			fmt.Printf("  skip %s: %v\n", f.RelPath, err)
			continue
		}

		start := time.Now()
		var words int
		for i := 0; i < *rounds; i++ {
			words = engine.Analyze(text).Result.WordCount
		}
		cold := time.Since(start) / time.Duration(*rounds)

		cached.Analyze(text)
		start = time.Now()
		for i := 0; i < *rounds; i++ {
			cached.Analyze(text)
		}
		warm := time.Since(start) / time.Duration(*rounds)

		totalWords += words
		totalCold += cold
		totalWarm += warm

		rate := 0.0
		if cold > 0 {
			rate = float64(words) / cold.Seconds()
		}
		fmt.Printf("%-40s %7d words %10s %10.0f words/s  cached %s\n", f.RelPath, words, cold, rate, warm)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("TOTALS:\n")
	fmt.Printf("  Words:          %d\n", totalWords)
	fmt.Printf("  Analysis time:  %s\n", totalCold)
	fmt.Printf("  Cached time:    %s\n", totalWarm)
	if totalCold > 0 {
		fmt.Printf("  Throughput:     %.0f words/s\n", float64(totalWords)/totalCold.Seconds())
	}
}
