package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"wordlens/internal/adapter/highlight"
)

var (
	highlightSelect    string
	highlightStopWords bool
	highlightRepeats   bool
	highlightLegend    bool
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Print a document with repeated words colored",
	Long: `Print a document with 24-bit terminal background colors. Repeated stems
are red, stronger the closer together they repeat; stop words are blue when
--stopwords is on; the stem of the --select word is orange.

Examples:
  wordlens highlight essay.txt
  wordlens highlight --stopwords --repeats=false essay.txt
  wordlens highlight --select дом essay.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

func init() {
	rootCmd.AddCommand(highlightCmd)
	highlightCmd.Flags().StringVar(&highlightSelect, "select", "", "mark every occurrence of this word's stem")
	highlightCmd.Flags().BoolVar(&highlightStopWords, "stopwords", false, "highlight stop words (default from config)")
	highlightCmd.Flags().BoolVar(&highlightRepeats, "repeats", true, "highlight repeated stems (default from config)")
	highlightCmd.Flags().BoolVar(&highlightLegend, "legend", false, "print a color legend after the text")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	flags := GetConfig().ModeFlags()
	if cmd.Flags().Changed("stopwords") {
		flags.StopWords = highlightStopWords
	}
	if cmd.Flags().Changed("repeats") {
		flags.Repeats = highlightRepeats
	}

	var selected string
	if highlightSelect != "" {
		selected = engine.StemOf(highlightSelect)
	}

	report := engine.Analyze(text)
	spans := engine.Highlight(&report.Result, selected, flags)

	out := cmd.OutOrStdout()
	if err := highlight.RenderANSI(out, text, spans); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if highlightLegend {
		writeLegend(cmd, selected)
	}
	return nil
}

func writeLegend(cmd *cobra.Command, selected string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	swatch := func(t highlight.Treatment, label string) {
		fmt.Fprint(out, "  ")
		for _, intensity := range []int{highlight.MinIntensity, 64, 128, 192, highlight.MaxIntensity} {
			fmt.Fprintf(out, "%s   \x1b[0m ", t.Color(intensity).ANSIBackground())
		}
		fmt.Fprintf(out, " %s\n", label)
	}
	swatch(highlight.Repeat, "repeated stem, far apart to close together")
	swatch(highlight.StopWord, "stop word")
	if selected != "" {
		swatch(highlight.Mark, fmt.Sprintf("selected stem %q", selected))
	}
}
