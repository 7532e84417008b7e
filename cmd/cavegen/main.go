// Package main is the entry point for cavegen, which builds a cave and prints
// or previews it.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roguecave/internal/cave"
	"github.com/samdwyer/roguecave/internal/config"
	"github.com/samdwyer/roguecave/internal/logging"
	"github.com/samdwyer/roguecave/internal/metrics"
	"github.com/samdwyer/roguecave/internal/telemetry"
	"github.com/samdwyer/roguecave/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML cave template (default $"+config.EnvConfig+")")
	seed := flag.Int64("seed", 0, "random seed, 0 for a time-based seed")
	width := flag.Int("width", 0, "layer width")
	height := flag.Int("height", 0, "layer height")
	depth := flag.Int("depth", 0, "number of layers")
	generator := flag.String("generator", "", "region generator: cellular or rooms")
	preview := flag.Bool("preview", false, "open the interactive terminal viewer")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address and keep running")
	logLevel := flag.String("log-level", "", "log level: trace, debug, info, warn or error")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if *logLevel == "" {
		*logLevel = os.Getenv("ROGUECAVE_LOG_LEVEL")
	}
	if *logLevel != "" {
		logging.SetLevel(logging.ParseLevel(*logLevel))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logging.Warn("telemetry setup failed, continuing without tracing: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Error("shutting down telemetry: %v", err)
				}
			}()
		}
	}

	tmpl, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags given on the command line override the template.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			tmpl.Seed = *seed
		case "width":
			tmpl.Width = *width
		case "height":
			tmpl.Height = *height
		case "depth":
			tmpl.Depth = *depth
		case "generator":
			tmpl.Generator = *generator
		}
	})

	c := cave.New(ctx, tmpl)
	logging.Info("generated %dx%dx%d cave with %s generator",
		c.Map().Width(), c.Map().Height(), c.Map().Depth(), c.Template().Generator)

	if *preview {
		screen, err := ui.NewScreen()
		if err != nil {
			log.Fatalf("Failed to open screen: %v", err)
		}
		if err := ui.NewViewer(screen, c).Run(ctx); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
	} else if err := ui.WriteLayers(os.Stdout, c); err != nil {
		log.Fatalf("Failed to write cave: %v", err)
	}

	if *metricsAddr != "" {
		serveMetrics(ctx, *metricsAddr)
	}
}

// serveMetrics serves the metrics handler until ctx is cancelled.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			logging.Error("shutting down metrics server: %v", err)
		}
	}()

	logging.Info("serving metrics on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error("metrics server: %v", err)
	}
}
