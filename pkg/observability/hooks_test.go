package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingHooks struct {
	builds    int
	starts    []string
	completed []string
	lastErr   error
}

func (h *recordingHooks) OnBuild(context.Context, int, int) { h.builds++ }
func (h *recordingHooks) OnRenderStart(_ context.Context, format string) {
	h.starts = append(h.starts, format)
}
func (h *recordingHooks) OnRenderComplete(_ context.Context, format, _ string, _ int, _ time.Duration, err error) {
	h.completed = append(h.completed, format)
	h.lastErr = err
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopDiagramHooks{}
	h.OnBuild(ctx, 5, 4)
	h.OnRenderStart(ctx, "png")
	h.OnRenderComplete(ctx, "png", "diagram.png", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Diagram().(NoopDiagramHooks); !ok {
		t.Error("Diagram() should return NoopDiagramHooks by default")
	}

	custom := &recordingHooks{}
	SetDiagramHooks(custom)
	if Diagram() != custom {
		t.Error("SetDiagramHooks should set custom hooks")
	}

	Diagram().OnBuild(context.Background(), 5, 4)
	Diagram().OnRenderStart(context.Background(), "svg")
	Diagram().OnRenderComplete(context.Background(), "svg", "", 0, 0, errors.New("boom"))
	if custom.builds != 1 || len(custom.starts) != 1 || len(custom.completed) != 1 {
		t.Errorf("hooks not forwarded: %+v", custom)
	}
	if custom.lastErr == nil {
		t.Error("OnRenderComplete should receive the error")
	}

	Reset()
	if _, ok := Diagram().(NoopDiagramHooks); !ok {
		t.Error("Reset() should restore NoopDiagramHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &recordingHooks{}
	SetDiagramHooks(custom)
	SetDiagramHooks(nil)

	if Diagram() != custom {
		t.Error("SetDiagramHooks(nil) should keep the existing hooks")
	}
}
