package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Ko-stant/outlook-map/internal/protocol"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled        bool
	Port           string
	ReportInterval time.Duration
}

// StartProfiling starts the pprof server on its own port
func StartProfiling(config ProfilingConfig, logger Logger) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	if config.Port != "" {
		go func() {
			logger.Printf("Starting pprof server on :%s", config.Port)
			if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
				logger.Printf("pprof server failed: %v", err)
			}
		}()
	}

	logger.Printf("Profiling enabled. CPU: curl http://localhost:%s/debug/pprof/profile?seconds=30 > cpu.prof", config.Port)
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv() ProfilingConfig {
	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	interval, err := time.ParseDuration(os.Getenv("METRICS_INTERVAL"))
	if err != nil {
		interval = time.Minute
	}

	return ProfilingConfig{
		Enabled:        os.Getenv("ENABLE_PROFILING") == "true",
		Port:           port,
		ReportInterval: interval,
	}
}

// PerformanceMetrics holds performance tracking data
type PerformanceMetrics struct {
	mu              sync.Mutex
	DragsProcessed  int64
	DragsAccepted   int64
	DragsRejected   int64
	Joins           int64
	Regenerations   int64
	AvgDragTime     time.Duration
	AvgGenerateTime time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

func NewPerformanceMetrics() *PerformanceMetrics {
	return &PerformanceMetrics{StartTime: time.Now()}
}

func (pm *PerformanceMetrics) TrackDrag(duration time.Duration, accepted bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.DragsProcessed++
	if accepted {
		pm.DragsAccepted++
	} else {
		pm.DragsRejected++
	}
	pm.AvgDragTime = (pm.AvgDragTime*time.Duration(pm.DragsProcessed-1) + duration) / time.Duration(pm.DragsProcessed)
}

func (pm *PerformanceMetrics) TrackJoin() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.Joins++
}

func (pm *PerformanceMetrics) TrackRegenerate(duration time.Duration) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.Regenerations++
	pm.AvgGenerateTime = (pm.AvgGenerateTime*time.Duration(pm.Regenerations-1) + duration) / time.Duration(pm.Regenerations)
}

// UpdateSystemMetrics updates system-level metrics
func (pm *PerformanceMetrics) UpdateSystemMetrics() {
	goroutines := runtime.NumGoroutine()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	pm.mu.Lock()
	defer pm.mu.Unlock()
	if goroutines > pm.PeakGoroutines {
		pm.PeakGoroutines = goroutines
	}
	if m.Alloc > pm.PeakMemoryUsage {
		pm.PeakMemoryUsage = m.Alloc
	}
}

func (pm *PerformanceMetrics) LogMetrics(logger Logger) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	uptime := time.Since(pm.StartTime)
	logger.Printf("=== Performance Metrics ===")
	logger.Printf("Uptime: %v", uptime)
	logger.Printf("Joins: %d", pm.Joins)
	logger.Printf("Drags processed: %d (accepted %d, rejected %d)", pm.DragsProcessed, pm.DragsAccepted, pm.DragsRejected)
	logger.Printf("Average drag time: %v", pm.AvgDragTime)
	logger.Printf("Regenerations: %d, average %v", pm.Regenerations, pm.AvgGenerateTime)
	logger.Printf("Peak goroutines: %d", pm.PeakGoroutines)
	logger.Printf("Peak memory usage: %d bytes", pm.PeakMemoryUsage)

	if pm.DragsProcessed > 0 {
		logger.Printf("Drags per second: %.2f", float64(pm.DragsProcessed)/uptime.Seconds())
	}
}

// InstrumentedMapEngine wraps MapEngine with performance tracking
type InstrumentedMapEngine struct {
	engine  MapEngine
	metrics *PerformanceMetrics
}

func NewInstrumentedMapEngine(engine MapEngine, metrics *PerformanceMetrics) *InstrumentedMapEngine {
	return &InstrumentedMapEngine{
		engine:  engine,
		metrics: metrics,
	}
}

func (ie *InstrumentedMapEngine) Join() (*JoinResult, error) {
	result, err := ie.engine.Join()
	if err == nil {
		ie.metrics.TrackJoin()
	}
	return result, err
}

func (ie *InstrumentedMapEngine) ProcessDrag(avatarID string, req protocol.RequestDragAvatar) (*DragResult, error) {
	start := time.Now()
	result, err := ie.engine.ProcessDrag(avatarID, req)
	duration := time.Since(start)

	if err == nil {
		ie.metrics.TrackDrag(duration, result.Accepted)
	}
	ie.metrics.UpdateSystemMetrics()

	return result, err
}

func (ie *InstrumentedMapEngine) Leave(avatarID string) (*protocol.AvatarLeft, error) {
	return ie.engine.Leave(avatarID)
}

func (ie *InstrumentedMapEngine) Regenerate(req protocol.RequestRegenerate) (*RegenerateResult, error) {
	start := time.Now()
	result, err := ie.engine.Regenerate(req)
	if err == nil {
		ie.metrics.TrackRegenerate(time.Since(start))
	}
	return result, err
}

func (ie *InstrumentedMapEngine) Snapshot() protocol.Snapshot {
	return ie.engine.Snapshot()
}

// StartMetricsReporting logs metrics every interval until ctx is done
func StartMetricsReporting(ctx context.Context, metrics *PerformanceMetrics, interval time.Duration, logger Logger) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				metrics.LogMetrics(logger)
			}
		}
	}()
}
