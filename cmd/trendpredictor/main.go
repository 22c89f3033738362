package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	forecaster "github.com/aouyang1/go-trendpredictor"
	"github.com/aouyang1/go-trendpredictor/config"
	"github.com/aouyang1/go-trendpredictor/prompt"
	"github.com/aouyang1/go-trendpredictor/timedataset"
)

const howItWorks = `
This predictor uses a simple idea:
1. Look at the last few days of prices
2. Calculate their average
3. Use that average as tomorrow's prediction

Why this matters:
- Simple but widely used in real trading
- Shows how machines can spot trends
- Foundation for more advanced forecasting models
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("trend predictor failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("trendpredictor", flag.ContinueOnError)
	cfgPath := fs.String("config", defaultConfigPath(), "Path to the yaml config file")
	interactive := fs.Bool("interactive", false, "Prompt for your own prices after the simulated run")
	seed := fs.Uint64("seed", 0, "Seed for the simulated prices, random when unset")
	inspect := fs.String("inspect", "", "Print a previously exported model and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *inspect != "" {
		return inspectModel(*inspect, stdout)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config, %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interactive":
			cfg.Interactive = *interactive
		case "seed":
			cfg.Series.Seed = seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation, %w", err)
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	banner(stdout, "STOCK TREND PREDICTOR")

	fmt.Fprintln(stdout, "\nFirst, let's create some sample stock data...")
	td, err := simulate(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created %d days of stock prices\n", td.Len())
	fmt.Fprintf(stdout, "Prices start at $%.2f and end at $%.2f\n", td.Y[0], td.Y[td.Len()-1])

	fmt.Fprintln(stdout, "\nMaking predictions...")
	fmt.Fprintln(stdout, strings.Repeat("-", 30))
	f, err := forecaster.New(forecaster.NewWindowsOptions(cfg.Forecast.Windows...))
	if err != nil {
		return fmt.Errorf("initialize forecaster, %w", err)
	}
	if err := f.Fit(td.T, td.Y); err != nil {
		return fmt.Errorf("fit forecasts, %w", err)
	}
	for _, res := range f.FitResults() {
		fmt.Fprintf(stdout, "%s forecasts ready: %d predictions\n", res.Name, len(res.Forecast))
	}

	fmt.Fprintln(stdout, "\nLet's see how accurate we were...")
	fmt.Fprintln(stdout, "\nResults:")
	if err := f.ScoresPrint(stdout); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "\nCreating chart...")
	if err := writeFile(cfg.Output.ChartPath, func(w io.Writer) error {
		return f.PlotFit(w, &forecaster.PlotOpts{IncludeNext: true})
	}); err != nil {
		return fmt.Errorf("write chart, %w", err)
	}
	fmt.Fprintf(stdout, "Chart saved as '%s'\n", cfg.Output.ChartPath)

	if cfg.Output.ModelPath != "" {
		if err := writeFile(cfg.Output.ModelPath, f.WriteModel); err != nil {
			return fmt.Errorf("write model, %w", err)
		}
		slog.Info("model exported", "path", cfg.Output.ModelPath)
	}

	banner(stdout, "FORECAST SUMMARY")
	if err := f.SummaryTable(stdout); err != nil {
		return err
	}

	if cfg.Interactive {
		banner(stdout, "TRY IT WITH YOUR OWN NUMBERS")
		if err := prompt.NewSession(stdin, stdout).Run(); err != nil {
			slog.Debug("interactive input rejected", "error", err)
		}
	}

	banner(stdout, "HOW THIS WORKS")
	fmt.Fprint(stdout, howItWorks)
	fmt.Fprintln(stdout, "\nDone! Open the chart in your browser.")
	return nil
}

func defaultConfigPath() string {
	if v := os.Getenv("TRENDPREDICTOR_CONFIG"); v != "" {
		return v
	}
	return config.DefaultPath
}

func banner(w io.Writer, title string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", line, title, line)
}

// simulate builds the random walk series on trading days ending at the configured end date
func simulate(cfg *config.Config) (*timedataset.TimeDataset, error) {
	end, err := cfg.EndDate()
	if err != nil {
		return nil, err
	}
	nowFunc := time.Now
	if !end.IsZero() {
		nowFunc = func() time.Time { return end }
	}

	var seed uint64
	if cfg.Series.Seed != nil {
		seed = *cfg.Series.Seed
	} else {
		seed = rand.Uint64()
	}
	slog.Debug("simulating prices", "days", cfg.Series.Days, "seed", seed)

	t := timedataset.GenerateTradingDays(cfg.Series.Days, nowFunc, nil)
	y := timedataset.GenerateRandomWalk(cfg.Series.Days, cfg.Series.StartPrice,
		cfg.Series.MaxDailyChange, timedataset.NewRand(seed))
	return timedataset.NewUnivariateDataset(t, y)
}

// inspectModel prints a model written by a previous run along with each window's next day prediction
func inspectModel(path string, w io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open model, %w", err)
	}
	defer file.Close()

	m, err := forecaster.ReadModel(file)
	if err != nil {
		return err
	}
	f, err := forecaster.NewFromModel(m)
	if err != nil {
		return fmt.Errorf("load model, %w", err)
	}
	if err := m.TablePrint(w); err != nil {
		return err
	}
	for _, fc := range f.Forecasts() {
		next, err := fc.Next()
		if err != nil {
			fmt.Fprintf(w, "%s next day: not enough data\n", fc.Options().Name())
			continue
		}
		fmt.Fprintf(w, "%s next day: $%.2f\n", fc.Options().Name(), next)
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
