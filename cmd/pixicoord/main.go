package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/owlpinetech/pixicoord"
	"github.com/owlpinetech/pixicoord/internal/batch"
	"github.com/owlpinetech/pixicoord/internal/config"
	"github.com/owlpinetech/pixicoord/internal/logging"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a configuration file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if pflag.NArg() > 0 {
		cfg.Input = pflag.Arg(0)
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("batch failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var indexer pixicoord.LocationIndexer
	if cfg.Indexer.IndexesCoordinates() {
		built, err := cfg.Indexer.Build()
		if err != nil {
			return fmt.Errorf("build indexer: %w", err)
		}
		indexer = built
		logger.Info("indexer ready", "kind", indexer.Name(), "pixels", indexer.Size())
	} else {
		logger.Info("indexer does not place coordinates, skipping pixel indices", "kind", cfg.Indexer.Kind)
	}

	input := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	in, err := batch.Decode(input)
	if err != nil {
		return err
	}

	out, err := batch.NewRunner(cfg.Precision, indexer, logger).Run(ctx, in)
	if err != nil {
		return err
	}
	return batch.Encode(stdout, out)
}
