// Package harness runs the analyzer over a directory of templates and
// tabulates how often each synthesized skeleton shape recurs — useful for
// spotting templates that silently diverged from the context contract the
// rest of a corpus agrees on.
package harness

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"

	"github.com/viant/tshape/analyzer"
)

// Option configures a Harness, in the functional-options idiom.
type Option func(*Harness)

// WithExtensions overrides the file extensions treated as templates.
// Matching is case-insensitive; each extension should include its dot.
func WithExtensions(ext ...string) Option {
	return func(h *Harness) { h.extensions = ext }
}

// WithAnalyzerOptions passes options through to every analyzer.New call.
func WithAnalyzerOptions(opts ...analyzer.Option) Option {
	return func(h *Harness) { h.analyzerOpts = opts }
}

// Harness scans a directory tree and builds a Report.
type Harness struct {
	fs           afs.Service
	extensions   []string
	analyzerOpts []analyzer.Option
}

var defaultExtensions = []string{".j2", ".jinja", ".jinja2", ".html", ".txt"}

// New constructs a Harness backed by the local/abstracted filesystem.
func New(opts ...Option) *Harness {
	h := &Harness{fs: afs.New(), extensions: defaultExtensions}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ScanDir walks root, analyzing every matched template and grouping results
// by synthesized skeleton shape.
func (h *Harness) ScanDir(ctx context.Context, root string) (*Report, error) {
	type hit struct {
		path    string
		content []byte
	}
	var hits []hit
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !h.matches(info.Name()) {
			return true, nil
		}
		path := url.Join(baseURL, parent, info.Name())
		content, err := h.fs.DownloadWithURL(ctx, path)
		if err != nil {
			return true, nil
		}
		hits = append(hits, hit{path: path, content: content})
		return true, nil
	}
	if err := h.fs.Walk(ctx, root, visitor); err != nil {
		return nil, err
	}

	report := &Report{groups: map[uint64]*ShapeGroup{}}
	a := analyzer.New(h.analyzerOpts...)
	for _, hh := range hits {
		report.TemplatesScanned++
		result, err := a.Analyze(string(hh.content))
		if err != nil {
			report.Errors = append(report.Errors, ScanError{Path: hh.path, Message: err.Error()})
			continue
		}
		hash, err := ShapeHash(result.Skeleton)
		if err != nil {
			report.Errors = append(report.Errors, ScanError{Path: hh.path, Message: err.Error()})
			continue
		}
		g := report.groups[hash]
		if g == nil {
			g = &ShapeGroup{Hash: hash, Skeleton: result.Skeleton}
			report.groups[hash] = g
		}
		g.Count++
		g.Examples = append(g.Examples, hh.path)
	}
	report.finalize()
	return report, nil
}

func (h *Harness) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range h.extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
