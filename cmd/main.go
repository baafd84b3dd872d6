package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/jrh3k5/slp-utils/internal/config"
	ctshttp "github.com/jrh3k5/slp-utils/internal/http"
	ctsslog "github.com/jrh3k5/slp-utils/internal/logging/slog"
	"github.com/jrh3k5/slp-utils/internal/slp/client"
	"github.com/jrh3k5/slp-utils/internal/token"
)

func main() {
	ctx := context.Background()

	slog.SetDefault(slog.New(ctsslog.NewHandler(os.Stderr, nil)))

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUserCanceled) {
			slog.InfoContext(ctx, "Operation canceled")

			return
		}

		slog.ErrorContext(ctx, "Failed to run command", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	// the configuration has been validated, so the level always resolves
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(ctsslog.NewHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	application, err := newApp(cfg, &http.Client{Timeout: cfg.Timeout}, out)
	if err != nil {
		return err
	}

	name := commandName(args)
	if name == "" {
		return runInteractive(ctx, application)
	}

	cmd, hasCommand := findCommand(name)
	if !hasCommand {
		return fmt.Errorf("unknown command '%s'; expected one of: %s", name, strings.Join(commandNames(), ", "))
	}

	return cmd.run(ctx, application, args)
}

// app holds the services shared by every command.
type app struct {
	cfg     *config.Config
	client  *client.Client
	details token.DetailsService
	out     io.Writer
}

func newApp(cfg *config.Config, doer ctshttp.Doer, out io.Writer) (*app, error) {
	slpClient := client.NewClient(ctshttp.NewRetryingDoer(doer, cfg.RetryOptions()...), cfg.ClientOptions()...)

	detailsService, err := token.NewSLPDetailsService(slpClient, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create token details service: %w", err)
	}

	return &app{
		cfg:     cfg,
		client:  slpClient,
		details: detailsService,
		out:     out,
	}, nil
}
