package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/meridian-quant/regimegate/internal/datasource"
	"github.com/meridian-quant/regimegate/internal/logger"
	"github.com/meridian-quant/regimegate/internal/regime"
	"github.com/meridian-quant/regimegate/internal/types"
	"github.com/meridian-quant/regimegate/internal/version"
)

// checkAction is the core logic executed by the CLI command. It loads the
// reference series, classifies the current regime and prints the trade-gate
// decision for the requested date.
func checkAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	symbol := cmd.String("symbol")
	configPath := cmd.String("config")
	date := cmd.Timestamp("date")
	allowedFlag := cmd.String("allowed")
	minConfidence := cmd.Float("min-confidence")

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	config := regime.DefaultConfig()
	if configPath != "" {
		config, err = regime.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	allowed, err := parseAllowedLabels(allowedFlag)
	if err != nil {
		return err
	}

	policy, err := regime.NewFilterPolicy(allowed, minConfidence)
	if err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}

	detector := regime.NewDetector(config)
	filter := regime.NewFilter(detector, policy, appLogger)
	loader := datasource.NewDuckDBLoader(dataPath, symbol, appLogger)
	cache := regime.NewCache(loader, filter, appLogger)

	cache.Initialize()

	stats := cache.Stats()
	if !stats.Enabled {
		return fmt.Errorf("reference data unavailable at %s", dataPath)
	}

	label := cache.CurrentRegime()
	strength := cache.RegimeStrength()
	tradable := cache.ShouldTradeOn(date)

	fmt.Printf("symbol:      %s\n", symbol)
	fmt.Printf("rows:        %d\n", stats.ReferenceRows)
	fmt.Printf("regime:      %s\n", label)
	fmt.Printf("strength:    %.3f\n", strength)
	fmt.Printf("date:        %s\n", date.Format("2006-01-02"))
	fmt.Printf("trade gate:  %v\n", tradable)

	return nil
}

// parseAllowedLabels converts a comma-separated flag value into regime
// labels.
func parseAllowedLabels(flag string) ([]types.RegimeLabel, error) {
	parts := strings.Split(flag, ",")
	labels := make([]types.RegimeLabel, 0, len(parts))

	for _, part := range parts {
		label := types.RegimeLabel(strings.TrimSpace(strings.ToLower(part)))
		if !label.Valid() {
			return nil, fmt.Errorf("unknown regime label %q", part)
		}

		labels = append(labels, label)
	}

	return labels, nil
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "regimegate",
		Usage:   "Classify the market regime and gate trading decisions",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Print the current regime and the trade-gate decision for a date",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Reference data file (CSV or parquet)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "symbol",
						Aliases: []string{"s"},
						Usage:   "Reference instrument symbol (diagnostics only)",
						Value:   "SPY",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Detector config file (YAML); defaults apply when omitted",
					},
					&cli.TimestampFlag{
						Name:  "date",
						Usage: "Decision date in `YYYY-MM-DD` format. Defaults to today.",
						Value: time.Now(),
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02"},
						},
					},
					&cli.StringFlag{
						Name:  "allowed",
						Usage: "Comma-separated labels permitted to trade",
						Value: "bullish",
					},
					&cli.FloatFlag{
						Name:  "min-confidence",
						Usage: "Minimum detector confidence required to trade",
						Value: 0.4,
					},
				},
				Action: checkAction,
			},
		},
	}
}

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
