// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about index builds and the anomalies
// found in roadmap data.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core library free of observability-framework imports and
// avoids import cycles: hooks are registered by main, not by libraries.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnBuildStart(ctx, name, nodes, edges)
//	// ... build the index ...
//	observability.Build().OnBuildComplete(ctx, name, roots, anomalies, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from hierarchy index construction.
type BuildHooks interface {
	// OnBuildStart records the start of an index build for one roadmap.
	OnBuildStart(ctx context.Context, roadmap string, nodeCount, edgeCount int)

	// OnBuildComplete records a finished build. Builds never fail, so the
	// anomaly count is the interesting signal.
	OnBuildComplete(ctx context.Context, roadmap string, rootCount, anomalyCount int, duration time.Duration)

	// OnAnomaly records a single structural anomaly by its code.
	OnAnomaly(ctx context.Context, roadmap string, code string)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string, int, int) {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, int, time.Duration) {
}
func (NoopBuildHooks) OnAnomaly(context.Context, string, string) {}

var (
	mu         sync.RWMutex
	buildHooks BuildHooks = NoopBuildHooks{}
)

// SetBuildHooks registers build hooks. Pass nil to restore the no-op
// implementation. Intended to be called once at startup, before any
// builds run.
func SetBuildHooks(h BuildHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopBuildHooks{}
	}
	buildHooks = h
}

// Build returns the registered build hooks. Never returns nil.
func Build() BuildHooks {
	mu.RLock()
	defer mu.RUnlock()
	return buildHooks
}

// Reset restores the no-op hooks. Primarily useful in tests.
func Reset() {
	SetBuildHooks(nil)
}
