package diagram

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	perrors "github.com/matzehuels/pipeviz/pkg/errors"
	"github.com/matzehuels/pipeviz/pkg/observability"
)

var (
	// ErrAlreadyRendered is returned by [Scope.Render] on every call after the first.
	ErrAlreadyRendered = errors.New("diagram already rendered")

	// ErrClosed is returned by [Scope.Render] after [Scope.Close].
	ErrClosed = errors.New("diagram scope closed")
)

// Scope is an open diagram-authoring context. It embeds the [Builder] for the
// graph under construction and owns the renderer that will lay it out.
//
// The lifecycle is Open, then Node and Connect calls, then one Render, with
// Close deferred right after Open so the renderer is released on every path:
//
//	s, err := diagram.Open(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	repo := s.Node("Repository", "vcs", "onprem/vcs/github", nil)
//	site := s.Node("Static Website", "storage", "aws/storage/s3", nil)
//	s.Connect(repo, site)
//
//	path, err := s.Render()
//
// Construction errors are sticky (see [Builder]): Render returns the first
// one without touching the filesystem.
//
// A Scope is not safe for concurrent use.
type Scope struct {
	*Builder

	ctx      context.Context
	opts     Options
	renderer Renderer
	rendered bool
	closed   bool
}

// Open validates opts and acquires the renderer. When opts.Renderer is nil a
// [GraphvizRenderer] is started, except for FormatDOT which needs no layout.
func Open(ctx context.Context, opts Options) (*Scope, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	// Validate accepted both, so the parse cannot fail here.
	opts.Direction, _ = ParseDirection(string(opts.Direction))
	opts.Format, _ = ParseFormat(string(opts.Format))

	r := opts.Renderer
	if r == nil {
		if opts.Format == FormatDOT {
			r = sourceRenderer{}
		} else {
			gv, err := NewGraphvizRenderer(ctx)
			if err != nil {
				return nil, perrors.Wrap(perrors.ErrCodeRender, err, "open rendering facility")
			}
			r = gv
		}
	}

	return &Scope{
		Builder:  NewBuilder(opts),
		ctx:      ctx,
		opts:     opts,
		renderer: r,
	}, nil
}

// Options returns the effective options (defaults applied).
func (s *Scope) Options() Options { return s.opts }

// DOT returns the DOT source of the graph built so far.
func (s *Scope) DOT() string { return ToDOT(s.graph, s.opts) }

// Render lays out the graph, encodes it, and writes the artifact to
// Options().Path(). It runs at most once; later calls return
// ErrAlreadyRendered. On failure no output file is left behind.
func (s *Scope) Render() (string, error) {
	switch {
	case s.closed:
		return "", ErrClosed
	case s.rendered:
		return "", ErrAlreadyRendered
	}
	s.rendered = true

	if s.err != nil {
		return "", s.err
	}
	if err := s.ctx.Err(); err != nil {
		return "", err
	}
	if err := s.graph.Validate(); err != nil {
		return "", perrors.Wrap(perrors.ErrCodeInvalidGraph, err, "validate diagram")
	}

	hooks := observability.Diagram()
	hooks.OnBuild(s.ctx, s.graph.NodeCount(), s.graph.EdgeCount())
	hooks.OnRenderStart(s.ctx, string(s.opts.Format))

	start := time.Now()
	path, size, err := s.export()
	hooks.OnRenderComplete(s.ctx, string(s.opts.Format), path, size, time.Since(start), err)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (s *Scope) export() (string, int, error) {
	data, err := s.renderer.Render(s.ctx, s.DOT(), s.opts.Format)
	if err != nil {
		return "", 0, perrors.Wrap(perrors.ErrCodeRender, err, "render %s", s.opts.Format)
	}
	if len(data) == 0 {
		return "", 0, perrors.New(perrors.ErrCodeRender, "renderer produced empty %s output", s.opts.Format)
	}

	path := s.opts.Path()
	if err := writeFileAtomic(path, data); err != nil {
		return "", 0, perrors.Wrap(perrors.ErrCodeExport, err, "write %s", path)
	}
	return path, len(data), nil
}

// Close releases the renderer. It is idempotent and may be called whether or
// not Render ran or succeeded.
func (s *Scope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.renderer.Close(); err != nil {
		return perrors.Wrap(perrors.ErrCodeRender, err, "close rendering facility")
	}
	return nil
}

// writeFileAtomic writes data to a temp file beside path and renames it into
// place. The target directory must already exist.
func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
