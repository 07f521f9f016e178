package harness

import (
	"context"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

var moduleRegex = regexp.MustCompile(`module\s+([^\s]+)`)

// ModuleName returns the Go module path declared by root/go.mod, used to
// label a scan's verbose progress line with the project it was scanned
// from. It falls back to
// a regexp scan if modfile can't parse the file (e.g. a malformed or very
// old go.mod), and finally to the directory's base name.
func ModuleName(ctx context.Context, root string) string {
	fs := afs.New()
	goModPath := filepath.Join(root, "go.mod")
	content, err := fs.DownloadWithURL(ctx, goModPath)
	if err != nil || len(content) == 0 {
		return filepath.Base(root)
	}
	if mod, err := modfile.Parse(goModPath, content, nil); err == nil && mod.Module != nil {
		return mod.Module.Mod.Path
	}
	if matches := moduleRegex.FindSubmatch(content); len(matches) == 2 {
		return string(matches[1])
	}
	return filepath.Base(root)
}
