package cli

import (
	"embed"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"wordlens/internal/domain"
	"wordlens/internal/usecase"
)

//go:embed templates/*.txt
var reportTemplates embed.FS

var reportTemplate = template.Must(
	template.New("report.txt").Funcs(templateFuncs()).ParseFS(reportTemplates, "templates/report.txt"),
)

// ReportData is what the report template renders.
type ReportData struct {
	Source string
	Key    domain.SortKey
	Report domain.Report
	Rows   []WordRow
	Total  int
}

// WordRow is one stem line of a rendered report.
type WordRow struct {
	Stem      string `json:"stem"`
	Count     int    `json:"count"`
	Distance  string `json:"-"`
	MinDist   int    `json:"min_distance"`
	StopWord  bool   `json:"stop_word"`
	Intensity int    `json:"intensity"`
	Color     string `json:"color"`
}

// buildReportData sorts the result and keeps at most limit rows; limit <= 0
// keeps all of them.
func buildReportData(engine *usecase.Engine, source string, report domain.Report, key domain.SortKey, limit int) ReportData {
	result := &report.Result
	view := engine.Sort(result, key)
	if limit > 0 && len(view) > limit {
		view = view[:limit]
	}

	rows := make([]WordRow, 0, len(view))
	for _, entry := range view {
		treatment, intensity := engine.Resolve(result, entry.Stem, "", domain.ModeFlags{StopWords: true, Repeats: true})
		distance := strconv.Itoa(entry.Stat.MinDistance)
		if entry.Stat.MinDistance == result.NormalizedLength {
			distance = "-"
		}
		rows = append(rows, WordRow{
			Stem:      entry.Stem,
			Count:     entry.Stat.Count,
			Distance:  distance,
			MinDist:   entry.Stat.MinDistance,
			StopWord:  entry.Stat.IsStopWord,
			Intensity: intensity,
			Color:     treatment.Color(intensity).Hex(),
		})
	}

	return ReportData{
		Source: source,
		Key:    key,
		Report: report,
		Rows:   rows,
		Total:  result.Len(),
	}
}

func renderReport(w io.Writer, data ReportData) error {
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"percent": func(v float64) string {
			return fmt.Sprintf("%5.1f%%", v)
		},
	}
}
