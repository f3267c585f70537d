package diagram

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/matzehuels/pipeviz/pkg/errors"
)

// fakeRenderer stands in for Graphviz.
type fakeRenderer struct {
	out     []byte
	err     error
	renders int
	closes  int
	lastDOT string
}

func (f *fakeRenderer) Render(_ context.Context, dot string, _ Format) ([]byte, error) {
	f.renders++
	f.lastDOT = dot
	return f.out, f.err
}

func (f *fakeRenderer) Close() error {
	f.closes++
	return nil
}

func openTest(t *testing.T, r Renderer, out Output) *Scope {
	t.Helper()
	out.Renderer = r
	if out.OutDir == "" && out.Filename == "" {
		out.OutDir = t.TempDir()
	}
	s, err := Open(context.Background(), Options{
		Direction: DirectionLR,
		GraphAttr: map[string]string{"bgcolor": "transparent"},
		Output:    out,
	})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestScope_RenderWritesOneFile(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRenderer{out: []byte("PNGDATA")}
	s := openTest(t, r, Output{OutDir: dir})

	a := s.Node("Repository", "vcs", "onprem/vcs/github", nil)
	b := s.Node("CodeBuild", "build", "aws/devtools/codebuild", nil)
	s.Connect(a, b)

	path, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if want := filepath.Join(dir, "diagram.png"); path != want {
		t.Errorf("Render() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "PNGDATA" {
		t.Errorf("file content = %q, want %q", data, "PNGDATA")
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Errorf("output dir contains %v, want exactly one file", names)
	}
}

func TestScope_RenderOnce(t *testing.T) {
	r := &fakeRenderer{out: []byte("x")}
	s := openTest(t, r, Output{})
	s.Node("only", "build", "", nil)

	if _, err := s.Render(); err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	if _, err := s.Render(); !errors.Is(err, ErrAlreadyRendered) {
		t.Errorf("second Render() = %v, want %v", err, ErrAlreadyRendered)
	}
	if r.renders != 1 {
		t.Errorf("renderer called %d times, want 1", r.renders)
	}
}

func TestScope_CloseIdempotent(t *testing.T) {
	r := &fakeRenderer{out: []byte("x")}
	s := openTest(t, r, Output{})

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
	if r.closes != 1 {
		t.Errorf("renderer closed %d times, want 1", r.closes)
	}
	if _, err := s.Render(); !errors.Is(err, ErrClosed) {
		t.Errorf("Render() after Close = %v, want %v", err, ErrClosed)
	}
}

func TestScope_StickyConstructionError(t *testing.T) {
	dir := t.TempDir()
	r := &fakeRenderer{out: []byte("x")}
	s := openTest(t, r, Output{OutDir: dir})

	a := s.Node("dup", "build", "", nil)
	b := s.Node("dup", "build", "", nil)
	if b != nil {
		t.Fatal("Node() with duplicate label should return nil")
	}
	s.Connect(a, b)
	if c := s.Node("later", "build", "", nil); c != nil {
		t.Error("Node() after failure should return nil")
	}

	_, err := s.Render()
	if !perrors.Is(err, perrors.ErrCodeInvalidGraph) {
		t.Errorf("Render() = %v, want %s", err, perrors.ErrCodeInvalidGraph)
	}
	if r.renders != 0 {
		t.Error("renderer should not run after a construction failure")
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("output dir contains %v, want empty", names)
	}
}

func TestScope_InvalidLabel(t *testing.T) {
	s := openTest(t, &fakeRenderer{out: []byte("x")}, Output{})
	if n := s.Node("", "build", "", nil); n != nil {
		t.Error("Node(\"\") should fail")
	}
	if !perrors.Is(s.Err(), perrors.ErrCodeInvalidInput) {
		t.Errorf("Err() = %v, want %s", s.Err(), perrors.ErrCodeInvalidInput)
	}
}

func TestScope_RenderFailure(t *testing.T) {
	tests := []struct {
		name string
		r    *fakeRenderer
		code perrors.Code
	}{
		{"renderer error", &fakeRenderer{err: errors.New("layout engine missing")}, perrors.ErrCodeRender},
		{"empty output", &fakeRenderer{out: nil}, perrors.ErrCodeRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			s := openTest(t, tt.r, Output{OutDir: dir})
			s.Node("only", "build", "", nil)

			path, err := s.Render()
			if !perrors.Is(err, tt.code) {
				t.Errorf("Render() = %v, want %s", err, tt.code)
			}
			if path != "" {
				t.Errorf("Render() path = %q, want empty", path)
			}
			if names := listDir(t, dir); len(names) != 0 {
				t.Errorf("output dir contains %v, want empty", names)
			}
		})
	}
}

func TestScope_UnwritableOutput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist", "diagram.png")
	s := openTest(t, &fakeRenderer{out: []byte("x")}, Output{Filename: missing})
	s.Node("only", "build", "", nil)

	_, err := s.Render()
	if !perrors.Is(err, perrors.ErrCodeExport) {
		t.Fatalf("Render() = %v, want %s", err, perrors.ErrCodeExport)
	}
	if !perrors.IsRenderFailure(err) {
		t.Error("IsRenderFailure() = false, want true")
	}
	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Errorf("output file should not exist, stat = %v", statErr)
	}
}

func TestScope_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &fakeRenderer{out: []byte("x")}
	s, err := Open(ctx, Options{Output: Output{Renderer: r, OutDir: t.TempDir()}})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()
	s.Node("only", "build", "", nil)

	cancel()
	if _, err := s.Render(); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() = %v, want %v", err, context.Canceled)
	}
	if r.renders != 0 {
		t.Error("renderer should not run after cancellation")
	}
}

func TestOpen_InvalidOptions(t *testing.T) {
	r := &fakeRenderer{}
	_, err := Open(context.Background(), Options{Direction: "diagonal", Output: Output{Renderer: r}})
	if !perrors.Is(err, perrors.ErrCodeInvalidDirection) {
		t.Errorf("Open() = %v, want %s", err, perrors.ErrCodeInvalidDirection)
	}
}

func TestOpen_NormalizesOptions(t *testing.T) {
	s := openTest(t, &fakeRenderer{}, Output{Format: "SVG"})
	if s.Options().Format != FormatSVG {
		t.Errorf("Format = %q, want %q", s.Options().Format, FormatSVG)
	}
	if s.Options().Direction != DirectionLR {
		t.Errorf("Direction = %q, want %q", s.Options().Direction, DirectionLR)
	}
}

func TestOpen_DOTWithoutGraphviz(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(context.Background(), Options{Output: Output{Format: FormatDOT, OutDir: dir}})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()

	if _, ok := s.renderer.(sourceRenderer); !ok {
		t.Errorf("renderer = %T, want sourceRenderer", s.renderer)
	}
	s.Connect(s.Node("a", "vcs", "", nil), s.Node("b", "storage", "", nil))

	path, err := s.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != s.DOT() {
		t.Error("dot output should equal the DOT source")
	}
}
