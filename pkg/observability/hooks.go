// Package observability provides hooks for logging and metrics around
// diagram construction and rendering.
//
// Libraries call the registered hooks; the CLI registers an implementation at
// startup. The default implementation does nothing, so library code never
// needs a nil check and never imports a logging backend.
//
// # Usage
//
//	observability.SetDiagramHooks(myHooks)
//
//	observability.Diagram().OnRenderStart(ctx, "png")
//	// ... render ...
//	observability.Diagram().OnRenderComplete(ctx, "png", path, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// DiagramHooks receives events from the diagram authoring scope.
type DiagramHooks interface {
	// OnBuild records the finished graph model, just before layout.
	OnBuild(ctx context.Context, nodeCount, edgeCount int)

	// OnRenderStart records the start of layout and encoding.
	OnRenderStart(ctx context.Context, format string)

	// OnRenderComplete records the outcome of a render. path is empty when
	// err is non-nil.
	OnRenderComplete(ctx context.Context, format, path string, size int, duration time.Duration, err error)
}

// NoopDiagramHooks is a no-op implementation of DiagramHooks.
type NoopDiagramHooks struct{}

func (NoopDiagramHooks) OnBuild(context.Context, int, int)     {}
func (NoopDiagramHooks) OnRenderStart(context.Context, string) {}
func (NoopDiagramHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

var (
	mu           sync.RWMutex
	diagramHooks DiagramHooks = NoopDiagramHooks{}
)

// SetDiagramHooks registers hooks for diagram events. Nil is ignored.
func SetDiagramHooks(h DiagramHooks) {
	if h == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	diagramHooks = h
}

// Reset restores the no-op hooks. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	diagramHooks = NoopDiagramHooks{}
}

// Diagram returns the registered diagram hooks.
func Diagram() DiagramHooks {
	mu.RLock()
	defer mu.RUnlock()
	return diagramHooks
}
