package harness_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tshape/harness"
)

func TestHarness_ScanDirGroupsByShape(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("a.j2", `{{ name }}`)
	write("b.j2", `{{ name }}`) // same shape as a.j2
	write("c.j2", `{{ user.city }}`)
	write("ignored.md", `not a template`)
	write("broken.j2", `{% if x %}unclosed`)

	h := harness.New()
	report, err := h.ScanDir(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TemplatesScanned) // .md skipped; 4 .j2 files counted, one fails to parse
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Path, "broken.j2")

	require.Len(t, report.Shapes, 2)
	assert.Equal(t, 2, report.Shapes[0].Count) // most frequent shape first
	assert.Equal(t, 1, report.Shapes[1].Count)
}
