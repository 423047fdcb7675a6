package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"macroplot/internal/chart"
	"macroplot/internal/config"
	"macroplot/internal/econ"
	"macroplot/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		run(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func run(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	indicator := fs.String("indicator", "", "indicator key (gdp, gdp_per_capita, inflation, unemployment, bond_yields); empty prompts")
	countries := fs.String("countries", "", "comma-separated country names; empty prompts")
	out := fs.String("out", "", "chart output path (default: <out dir>/<indicator>.png)")
	verbose := fs.Bool("verbose", false, "debug logging")
	fs.Parse(args)

	if err := runPlotter(*indicator, *countries, *out, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "plotter run failed:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: plotter run [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options:")
	fmt.Fprintln(os.Stderr, "  -indicator   indicator key; prompts when empty")
	fmt.Fprintln(os.Stderr, "  -countries   comma-separated country names; prompts when empty")
	fmt.Fprintln(os.Stderr, "  -out         chart output path")
	fmt.Fprintln(os.Stderr, "  -verbose     debug logging")
}

func runPlotter(indicatorFlag, countriesFlag, outFlag string, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}

	catalog := econ.NewCatalog(cfg.Sources, logger)
	input := bufio.NewReader(os.Stdin)

	entry, err := selectIndicator(catalog, indicatorFlag, input)
	if err != nil {
		return err
	}

	names, err := selectCountries(countriesFlag, input)
	if err != nil {
		return err
	}

	ctx := context.Background()
	collected := make([]model.Series, 0, len(names))
	skipped := 0
	for _, name := range names {
		country := econ.NewCountry(name, catalog)
		series, err := country.Ensure(ctx, entry.Indicator)
		if err != nil {
			skipped++
			logger.Warn().Str("country", name).Err(err).Msg("skipping country")
			continue
		}
		logger.Debug().Str("country", country.Name).Int("rows", series.Len()).Msg("series loaded")
		collected = append(collected, series)
	}
	if len(collected) == 0 {
		return errors.New("no series loaded for any requested country")
	}

	outPath := strings.TrimSpace(outFlag)
	if outPath == "" {
		outPath = filepath.Join(cfg.Chart.OutDir, string(entry.Indicator)+".png")
	}
	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	style := chart.Style{
		Title:        entry.Title,
		XLabel:       entry.XLabel,
		YLabel:       entry.YLabel,
		Scale:        entry.Scale,
		WidthInches:  cfg.Chart.WidthInches,
		HeightInches: cfg.Chart.HeightInches,
	}
	if err := chart.Render(style, collected, outPath); err != nil {
		return err
	}

	fmt.Printf("plotter run complete (indicator=%s series=%d skipped=%d out=%s)\n",
		entry.Indicator, len(collected), skipped, outPath,
	)
	return nil
}

func buildLogger(level string, verbose bool) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		parsed = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}

// selectIndicator resolves the indicator from the flag, or presents the
// numbered menu. An unknown choice terminates without plotting.
func selectIndicator(catalog *econ.Catalog, flagValue string, input *bufio.Reader) (econ.Entry, error) {
	entries := catalog.Entries()

	choice := strings.TrimSpace(flagValue)
	if choice == "" {
		fmt.Println("Select an economic indicator to plot:")
		for i, entry := range entries {
			fmt.Printf("%d: %s\n", i+1, entry.Display)
		}
		fmt.Print("Enter the number of your choice: ")
		line, err := input.ReadString('\n')
		if err != nil {
			return econ.Entry{}, err
		}
		choice = strings.TrimSpace(line)
	}

	if number, err := strconv.Atoi(choice); err == nil {
		if number < 1 || number > len(entries) {
			return econ.Entry{}, fmt.Errorf("invalid choice: %s", choice)
		}
		return entries[number-1], nil
	}
	for _, entry := range entries {
		if strings.EqualFold(choice, string(entry.Indicator)) {
			return entry, nil
		}
	}
	return econ.Entry{}, fmt.Errorf("invalid choice: %s", choice)
}

// selectCountries resolves the country list from the flag or a prompt and
// title-cases every name.
func selectCountries(flagValue string, input *bufio.Reader) ([]string, error) {
	raw := strings.TrimSpace(flagValue)
	if raw == "" {
		fmt.Print("Enter the countries (comma-separated): ")
		line, err := input.ReadString('\n')
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(line)
	}

	caser := cases.Title(language.English)
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		names = append(names, caser.String(trimmed))
	}
	if len(names) == 0 {
		return nil, errors.New("no countries provided")
	}
	return names, nil
}
