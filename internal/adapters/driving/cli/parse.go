package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/parser"
	"github.com/custodia-labs/larder/internal/units"
)

var (
	parseFile   string
	parseFormat string
	parsePrep   bool
)

var errNoInput = errors.New("no input: pass lines as arguments, --file, or pipe them on stdin")

var parseCmd = &cobra.Command{
	Use:   "parse [line...]",
	Short: "Parse ingredient lines",
	Long: `Parse one or more ingredient lines into quantity, unit, name and notes.

Each argument is one line. With --file, lines are read from a file ("-" for
stdin); blank lines are skipped. Without either, lines are read from stdin
when it is not a terminal.

Examples:
  larder parse "1 1/2 cups (180 g) flour, sifted"
  larder parse -o json "2-3 cloves garlic" "salt and pepper to taste"
  larder parse -f recipe.txt -o table --prep`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", `read lines from a file ("-" for stdin)`)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "o", "", "output format: text, json, yaml, table (default from config)")
	parseCmd.Flags().BoolVar(&parsePrep, "prep", false, "split a leading preparation phrase from the notes")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := requireParse(); err != nil {
		return err
	}

	lines, err := inputLines(cmd, args, parseFile)
	if err != nil {
		return err
	}

	results, err := parseService.ParseBatch(cmd.Context(), lines)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	r, err := newRenderer(cmd.OutOrStdout(), outputFormat(parseFormat), unitLookup)
	if err != nil {
		return err
	}

	var splitter *parser.PrepSplitter
	if parsePrep {
		words, err := units.Prep()
		if err != nil {
			return err
		}
		splitter = parser.NewPrepSplitter(words.States, words.Adverbs)
	}
	return r.Render(withPrep(results, splitter))
}

// outputFormat returns the flag value, or the configured default.
func outputFormat(flag string) domain.OutputFormat {
	if flag != "" {
		return domain.OutputFormat(strings.ToLower(flag))
	}
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			return s.Output.Format
		}
	}
	return domain.OutputFormatText
}

// inputLines collects lines from args, a file, or piped stdin.
func inputLines(cmd *cobra.Command, args []string, file string) ([]string, error) {
	if len(args) > 0 && file != "" {
		return nil, errors.New("pass lines as arguments or --file, not both")
	}
	if len(args) > 0 {
		return args, nil
	}

	var in io.Reader
	switch {
	case file == "-":
		in = cmd.InOrStdin()
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	default:
		in = cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errNoInput
		}
	}

	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errNoInput
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
