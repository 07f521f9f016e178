package analyzer_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/viant/tshape/analyzer"
)

// TestAnalyze_Golden runs every testdata/*.txtar archive: the "template"
// file is analyzed and its skeleton compared, as indented JSON, against the
// "out/skeleton.json" file in the same archive.
func TestAnalyze_Golden(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, path := range matches {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			archive := txtar.Parse(data)

			var template, golden []byte
			for _, f := range archive.Files {
				switch f.Name {
				case "template":
					template = f.Data
				case "out/skeleton.json":
					golden = f.Data
				}
			}
			require.NotNil(t, template, "archive missing 'template' file")
			require.NotNil(t, golden, "archive missing 'out/skeleton.json' file")

			result, err := analyzer.New().Analyze(string(template))
			require.NoError(t, err)

			got, err := json.MarshalIndent(result.Skeleton, "", "  ")
			require.NoError(t, err)

			var gotVal, wantVal interface{}
			require.NoError(t, json.Unmarshal(got, &gotVal))
			require.NoError(t, json.Unmarshal(golden, &wantVal))
			require.Equal(t, wantVal, gotVal)
		})
	}
}
