// Command seed loads words from a JSON file into the configured store.
// Every word goes through the same validation as POST /dictionary;
// rejected words are logged and skipped.
//
// Flags:
//
//	--file     path to a JSON array of words (required)
//	--timeout  overall deadline (default 5m)
//
// Exit codes: 0 = success (even with rejected words), 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/app"
	"github.com/heartmarshall/dictionary-api/internal/config"
	"github.com/heartmarshall/dictionary-api/internal/service/dictionary"
)

func main() {
	fileFlag := flag.String("file", "", "path to a JSON array of words")
	timeoutFlag := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("seed: --file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, *fileFlag, *timeoutFlag); err != nil {
		logger.Error("seed failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg *config.Config, logger *zap.Logger, path string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background()) //nolint:errcheck

	res, err := app.Seed(ctx, dictionary.NewService(logger, store.Words), f, logger)
	if err != nil {
		return err
	}

	logger.Info("seed completed",
		zap.Int("saved", res.Saved),
		zap.Int("rejected", res.Rejected),
		zap.String("file", path),
	)
	return nil
}
