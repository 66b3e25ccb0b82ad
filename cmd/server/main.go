package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/Ko-stant/outlook-map/internal/config"
	"github.com/Ko-stant/outlook-map/internal/dashboard"
	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/mapgen"
)

var (
	configPath string
	port       string
	seed       uint64
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "outlook-map",
	Short: "Serve the occupation outlook map",
	Long: `Serves a generated map of occupations: a central hub joined to one
marker per occupation by axis-aligned paths. Each browser that connects gets
an avatar it can drag along the paths; moves are validated by the server and
broadcast to every client.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServer,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides config and APP_PORT)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Map seed (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("seed") {
		cfg.Map.Seed = seed
	}

	occupations, err := dashboard.LoadFile(cfg.Data.OccupationsFile)
	if err != nil {
		logger.Warn("occupations unavailable", zap.String("file", cfg.Data.OccupationsFile), zap.Error(err))
	}

	points := dashboard.PointsFromOccupations(occupations)
	if cfg.Map.PointsFile != "" {
		points, err = mapgen.LoadPointsFromFile(cfg.Map.PointsFile)
		if err != nil {
			return err
		}
	}

	var engine MapEngine
	engine, err = NewMapEngine(EngineConfig{
		Viewport:     geometry.Viewport{Width: cfg.Map.Width, Height: cfg.Map.Height},
		Seed:         cfg.Map.Seed,
		AvatarRadius: cfg.Map.AvatarRadius,
		Points:       points,
	}, NewLogger(logger.Named("engine")))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profiling := GetProfilingConfigFromEnv()
	if profiling.Enabled {
		metricsLogger := NewLogger(logger.Named("metrics"))
		metrics := NewPerformanceMetrics()
		engine = NewInstrumentedMapEngine(engine, metrics)
		StartProfiling(profiling, metricsLogger)
		StartMetricsReporting(ctx, metrics, profiling.ReportInterval, metricsLogger)
	}

	server := NewServer(cfg, engine, occupations, logger)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Routes(),
	}

	shutdownTimeout, err := time.ParseDuration(cfg.Server.ShutdownTimeout)
	if err != nil {
		shutdownTimeout = 5 * time.Second
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", httpServer.Addr),
			zap.Int("points", len(points)),
			zap.Uint64("seed", cfg.Map.Seed))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Int("connections", server.conns.Count()))
		server.conns.CloseAll(websocket.StatusGoingAway, "server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
