// Package main is the manabi CLI entry point.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/brightpath/manabi/internal/cli"
	"github.com/brightpath/manabi/internal/config"
	"github.com/brightpath/manabi/internal/generate"
	"github.com/brightpath/manabi/internal/models"
	"github.com/brightpath/manabi/internal/summary"
	"github.com/brightpath/manabi/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/manabi/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists it
// is used. A missing default config is not an error; built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.DefaultConfig(), nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "mcq":
		runMCQ()
	case "flashcards":
		runFlashcards()
	case "summary":
		runSummary()
	case "version", "--version", "-v":
		fmt.Printf("manabi version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// commonFlags registers the flags shared by every generation subcommand.
type commonFlags struct {
	configPath *string
	inPath     *string
	debug      *bool
	format     *string
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", defaultConfigPath, "config file path"),
		inPath:     fs.String("in", "", "input text file (default: read stdin)"),
		debug:      fs.Bool("debug", false, "enable debug logging"),
		format:     fs.String("format", "text", "output format: text or json"),
	}
}

// setup loads config, builds the logger, and reads the input text.
func (c commonFlags) setup() (*config.Config, *zap.Logger, string) {
	cfg, err := loadConfig(*c.configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *c.debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	text, err := readInput(*c.inPath)
	if err != nil {
		fmt.Printf("Failed to read input: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger, text
}

func (c commonFlags) outputFormat() cli.OutputFormat {
	if strings.EqualFold(*c.format, "json") {
		return cli.OutputJSON
	}
	return cli.OutputText
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runMCQ() {
	fs := flag.NewFlagSet("mcq", flag.ExitOnError)
	common := registerCommon(fs)
	count := fs.Int("count", 0, "number of questions (default from config)")
	difficulty := fs.String("difficulty", "", "easy, medium, hard, or mixed")
	minConfidence := fs.Float64("min-confidence", -1, "minimum confidence cutoff (default from config)")
	_ = fs.Parse(os.Args[2:])

	cfg, logger, text := common.setup()
	defer logger.Sync()

	if *count <= 0 {
		*count = cfg.Generation.DefaultMCQCount
	}
	if *minConfidence < 0 {
		*minConfidence = cfg.Generation.MinConfidence
	}

	gen := generate.New(
		generate.WithLogger(logger),
		generate.WithVocabulary(cfg.BuildVocabulary()),
		generate.WithMinConfidence(*minConfidence),
	)
	questions, err := gen.MCQs(text, models.MCQOptions{
		Count:      clampCount(*count, cfg.Generation.MaxCount),
		Difficulty: models.DifficultyMode(*difficulty),
	})
	if err != nil {
		exitWithError(err)
	}
	if err := cli.WriteQuestions(os.Stdout, questions, common.outputFormat()); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}

func runFlashcards() {
	fs := flag.NewFlagSet("flashcards", flag.ExitOnError)
	common := registerCommon(fs)
	count := fs.Int("count", 0, "number of flashcards (default from config)")
	_ = fs.Parse(os.Args[2:])

	cfg, logger, text := common.setup()
	defer logger.Sync()

	if *count <= 0 {
		*count = cfg.Generation.DefaultFlashcardCount
	}

	gen := generate.New(
		generate.WithLogger(logger),
		generate.WithVocabulary(cfg.BuildVocabulary()),
	)
	cards, err := gen.Flashcards(text, models.FlashcardOptions{
		Count: clampCount(*count, cfg.Generation.MaxCount),
	})
	if err != nil {
		exitWithError(err)
	}
	if err := cli.WriteFlashcards(os.Stdout, cards, common.outputFormat()); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}

func runSummary() {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	common := registerCommon(fs)
	summaryType := fs.String("type", "both", "summary type: short, detailed, or both")
	maxLength := fs.Int("max-length", 0, "short summary word cap (default from config)")
	detailedMaxLength := fs.Int("detailed-max-length", 0, "detailed summary word cap (default from config)")
	_ = fs.Parse(os.Args[2:])

	cfg, logger, text := common.setup()
	defer logger.Sync()

	if *maxLength <= 0 {
		*maxLength = cfg.Summary.MaxLength
	}
	if *detailedMaxLength <= 0 {
		*detailedMaxLength = cfg.Summary.DetailedMaxLength
	}

	s := summary.New(
		summary.WithLogger(logger),
		summary.WithVocabulary(cfg.BuildVocabulary()),
	)
	result, err := s.Summarize(text, models.SummaryOptions{
		Type:              models.SummaryType(*summaryType),
		MaxLength:         *maxLength,
		DetailedMaxLength: *detailedMaxLength,
	})
	if err != nil {
		exitWithError(err)
	}
	if err := cli.WriteSummary(os.Stdout, result, common.outputFormat()); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}

func clampCount(count, max int) int {
	if max > 0 && count > max {
		return max
	}
	return count
}

// exitWithError prints a friendly message for content errors and exits.
func exitWithError(err error) {
	if models.IsInsufficientContent(err) {
		fmt.Printf("Not enough content: %v\nAdd more text and try again.\n", err)
	} else {
		fmt.Printf("Error: %v\n", err)
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`manabi - study material generator

Usage: manabi <command> [flags]

Commands:
  mcq         Generate multiple-choice questions from text
  flashcards  Generate flashcards from text
  summary     Generate an extractive summary from text
  version     Print version
  help        Show this help

Common flags:
  -in <file>        read input text from a file (default: stdin)
  -config <path>    config file path
  -format <fmt>     output format: text or json
  -debug            enable debug logging

Examples:
  manabi mcq -in notes.txt -count 5 -difficulty mixed
  cat chapter.txt | manabi flashcards -count 10 -format json
  manabi summary -in article.txt -type short -max-length 100
`)
}
