package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	stemAt   int
	stemFile string
)

var stemCmd = &cobra.Command{
	Use:   "stem [word...]",
	Short: "Show the stems the analyzer groups words by",
	Long: `Print the stem of each word, or with --at the stem of the word covering a
character offset of a document (the offset a click in an editor would give).

Examples:
  wordlens stem бегать бегу бежал
  wordlens stem --file essay.txt --at 120`,
	RunE: runStem,
}

func init() {
	rootCmd.AddCommand(stemCmd)
	stemCmd.Flags().IntVar(&stemAt, "at", -1, "character offset into --file")
	stemCmd.Flags().StringVar(&stemFile, "file", "", "document for --at (default stdin)")
}

func runStem(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if stemAt >= 0 {
		var input []string
		if stemFile != "" {
			input = []string{stemFile}
		}
		text, _, err := readInput(cmd, input)
		if err != nil {
			return err
		}
		stem := engine.StemAt(text, stemAt)
		if stem == "" {
			return fmt.Errorf("no word at offset %d", stemAt)
		}
		fmt.Fprintln(out, stem)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("give at least one word, or --at with a document")
	}
	for _, word := range args {
		fmt.Fprintf(out, "%s\t%s\n", word, engine.StemOf(word))
	}
	return nil
}
