//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"wordlens/internal/adapter/cache"
	"wordlens/internal/adapter/ids"
	"wordlens/internal/adapter/memstore"
	"wordlens/internal/domain"
	"wordlens/internal/usecase"
)

var (
	engine    *usecase.Engine
	analyzer  *cache.CachedAnalyzer
	history   *memstore.MemoryStore
	reportIDs *ids.IDGenerator
)

func init() {
	setLanguage("russian")
	history = memstore.NewMemoryStore()
	reportIDs = ids.NewIDGenerator()
}

func setLanguage(language string) error {
	e, err := usecase.NewDefaultEngine(language, usecase.EngineOptions{})
	if err != nil {
		return err
	}
	engine = e
	analyzer = cache.NewCachedAnalyzer(engine, cache.NewReportCache(16, 10*time.Minute))
	return nil
}

func main() {
	c := make(chan struct{})

	js.Global().Set("wordlensLanguage", js.FuncOf(languageFunc))
	js.Global().Set("wordlensAnalyze", js.FuncOf(analyzeFunc))
	js.Global().Set("wordlensSort", js.FuncOf(sortFunc))
	js.Global().Set("wordlensHighlight", js.FuncOf(highlightFunc))
	js.Global().Set("wordlensStem", js.FuncOf(stemFunc))
	js.Global().Set("wordlensHistory", js.FuncOf(historyFunc))

	<-c
}

func languageFunc(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: wordlensLanguage(name)")
	}
	if err := setLanguage(args[0].String()); err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{
		"language": engine.Language().Name,
	})
}

// analyzeFunc analyzes text and keeps the report in session history.
func analyzeFunc(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: wordlensAnalyze(text, [name])")
	}
	text := args[0].String()
	name := "untitled"
	if len(args) > 1 {
		name = args[1].String()
	}

	report, hit := analyzer.Analyze(text)
	hash := usecase.ContentHash(text)

	id := ""
	if existing, found, _ := history.FindByHash(hash); found {
		id = existing.ID
	} else {
		now := time.Now()
		id = reportIDs.New(now)
		history.PutReport(domain.StoredReport{
			ID:        id,
			Path:      name,
			Hash:      hash,
			CreatedAt: now,
			Language:  engine.Language().Name,
			Report:    report,
			Text:      text,
		})
	}

	return makeResult(map[string]interface{}{
		"id":          id,
		"cached":      hit,
		"wordCount":   report.Result.WordCount,
		"charCount":   report.Result.CharCount,
		"charNoSpace": report.Result.CharCountNoSpaces,
		"readability": report.Readability,
		"density":     report.Density,
		"stems":       report.Result.Stats,
	})
}

func sortFunc(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: wordlensSort(text, key)")
	}
	key, ok := usecase.ParseSortKey(args[1].String())
	if !ok {
		return makeError("sort key must be count or distance")
	}

	report, _ := analyzer.Analyze(args[0].String())
	view := engine.Sort(&report.Result, key)

	rows := make([]map[string]interface{}, 0, len(view))
	for _, entry := range view {
		rows = append(rows, map[string]interface{}{
			"stem":        entry.Stem,
			"count":       entry.Stat.Count,
			"minDistance": entry.Stat.MinDistance,
			"stopWord":    entry.Stat.IsStopWord,
			"intensity":   engine.Intensity(&report.Result, entry.Stem),
		})
	}
	return makeResult(map[string]interface{}{
		"key":  key,
		"rows": rows,
	})
}

// highlightFunc returns colored spans in rune offsets of the text.
func highlightFunc(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: wordlensHighlight(text, [selectedWord], [stopWords], [repeats])")
	}
	text := args[0].String()

	selected := ""
	if len(args) > 1 && args[1].Type() == js.TypeString && args[1].String() != "" {
		selected = engine.StemOf(args[1].String())
	}
	flags := domain.ModeFlags{StopWords: false, Repeats: true}
	if len(args) > 2 {
		flags.StopWords = args[2].Truthy()
	}
	if len(args) > 3 {
		flags.Repeats = args[3].Truthy()
	}

	report := engine.Analyze(text)
	return makeResult(map[string]interface{}{
		"selected": selected,
		"spans":    engine.Highlight(&report.Result, selected, flags),
	})
}

func stemFunc(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: wordlensStem(word) or wordlensStem(text, offset)")
	}
	if len(args) > 1 {
		return makeResult(map[string]interface{}{
			"stem": engine.StemAt(args[0].String(), args[1].Int()),
		})
	}
	return makeResult(map[string]interface{}{
		"stem": engine.StemOf(args[0].String()),
	})
}

func historyFunc(this js.Value, args []js.Value) interface{} {
	reports, _ := history.ListReports()
	items := make([]map[string]interface{}, 0, len(reports))
	for _, r := range reports {
		items = append(items, map[string]interface{}{
			"id":        r.ID,
			"name":      r.Path,
			"createdAt": r.CreatedAt.Format(time.RFC3339),
			"wordCount": r.Report.Result.WordCount,
			"ease":      r.Report.Readability.Ease,
			"water":     r.Report.Density.Water,
			"spam":      r.Report.Density.Spam,
		})
	}
	return makeResult(map[string]interface{}{
		"reports": items,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
