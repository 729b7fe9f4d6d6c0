package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"wordlens/config"
	"wordlens/internal/adapter/ingest"
	"wordlens/internal/logging"
	"wordlens/internal/usecase"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
	language string
)

var rootCmd = &cobra.Command{
	Use:   "wordlens",
	Short: "Word repetition, readability and density analysis for prose",
	Long: `wordlens analyzes natural-language text: it finds repeated word stems and how
close together they occur, scores readability (Flesch ease and Gunning fog),
measures "water" (stop-word share) and "spam" (dominant-stem share), and
highlights repeats in the terminal.

Example usage:
  wordlens analyze essay.txt               # Full report
  wordlens analyze --sort distance < a.md  # Read from stdin
  wordlens highlight essay.txt             # Color repeated words
  wordlens batch ./drafts                  # Analyze a directory and keep history`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if language != "" {
			cfg.Analysis.Language = language
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return logging.Setup(cfg.Logging.Level, cmd.ErrOrStderr())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./wordlens.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "text language: russian or english")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

func newEngine() (*usecase.Engine, error) {
	engine, err := usecase.NewEngineFromConfig(GetConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return engine, nil
}

// readInput returns the text of the document named by args, or standard
// input when no document or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "-", nil
	}

	text, err := ingest.NewReader().ReadText(args[0])
	if err != nil {
		return "", "", err
	}
	return text, args[0], nil
}
