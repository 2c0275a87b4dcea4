// Package main is the interactive auction lookup CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/minhyannv/auction-finder-go/pkg/apiclient"
	configpkg "github.com/minhyannv/auction-finder-go/pkg/config"
	"github.com/minhyannv/auction-finder-go/pkg/hypixel"
	loggerpkg "github.com/minhyannv/auction-finder-go/pkg/logger"
	"github.com/minhyannv/auction-finder-go/pkg/playerdb"
	"github.com/minhyannv/auction-finder-go/pkg/session"
)

// main is the program entry point.
func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := parseCLIConfig(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := configpkg.Validate(config); err != nil {
		return err
	}
	if config.NoColor {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	s, err := newSession(config, appLogger, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newSession wires the API clients into an interactive session.
func newSession(cfg configpkg.Config, logger loggerpkg.Logger, in io.Reader, out io.Writer) (*session.Session, error) {
	api := apiclient.New(cfg.Timeout,
		apiclient.WithRateLimit(cfg.RateLimit, configpkg.DefaultRateBurst),
		apiclient.WithLogger(logger, cfg.Verbose),
	)

	fetcher, err := hypixel.New(cfg.HypixelBaseURL, cfg.APIKey, api)
	if err != nil {
		return nil, err
	}

	loggerpkg.Debug(cfg.Verbose, logger, "session init", map[string]any{
		"threshold":   cfg.Threshold,
		"timeout":     cfg.Timeout.String(),
		"rate_limit":  cfg.RateLimit,
		"playerdb":    cfg.PlayerDBBaseURL,
		"hypixel_api": cfg.HypixelBaseURL,
	})

	return session.New(
		playerdb.New(cfg.PlayerDBBaseURL, api),
		fetcher,
		in,
		out,
		session.WithThreshold(cfg.Threshold),
		session.WithLogger(logger, cfg.Verbose),
		session.WithColor(!cfg.NoColor),
	)
}
