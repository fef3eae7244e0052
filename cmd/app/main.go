package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/dagaz/internal"
	pkgconfig "github.com/starford/dagaz/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadIfPresent(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithFiles(cmd.Args().Slice()),
	}
	if n := cmd.Int("history"); n > 0 {
		opts = append(opts, internal.WithHistory(int(n)))
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "dagaz",
		Usage:     "Interactive renamer that standardizes Sanger sequencing result files to YYMMDD.TEMPLATE.PRIMER.ext",
		ArgsUsage: "<file>...",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "dagaz.yaml",
				Value:       "dagaz.yaml",
				Sources:     cli.EnvVars("DAGAZ_CONFIG_FILE"),
			},
			&cli.IntFlag{
				Name:  "history",
				Usage: "Print the last N journal records and exit",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
