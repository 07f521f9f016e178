package harness

import (
	"encoding/json"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// ShapeGroup tabulates every template that synthesized to the same skeleton.
type ShapeGroup struct {
	Hash     uint64                 `json:"hash" yaml:"hash"`
	Skeleton map[string]interface{} `json:"skeleton" yaml:"skeleton"`
	Count    int                    `json:"count" yaml:"count"`
	Examples []string               `json:"examples" yaml:"examples"`
}

// ScanError records a template that failed to parse or analyze; a scan
// error never aborts the rest of the walk.
type ScanError struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// Report is the result of a Harness.ScanDir call.
type Report struct {
	TemplatesScanned int          `json:"templates_scanned" yaml:"templates_scanned"`
	Shapes           []ShapeGroup `json:"shapes" yaml:"shapes"`
	Errors           []ScanError  `json:"errors,omitempty" yaml:"errors,omitempty"`

	groups map[uint64]*ShapeGroup
}

// finalize sorts groups most-frequent first, breaking ties by hash for
// determinism.
func (r *Report) finalize() {
	r.Shapes = make([]ShapeGroup, 0, len(r.groups))
	for _, g := range r.groups {
		sort.Strings(g.Examples)
		r.Shapes = append(r.Shapes, *g)
	}
	sort.Slice(r.Shapes, func(i, j int) bool {
		if r.Shapes[i].Count != r.Shapes[j].Count {
			return r.Shapes[i].Count > r.Shapes[j].Count
		}
		return r.Shapes[i].Hash < r.Shapes[j].Hash
	})
	sort.Slice(r.Errors, func(i, j int) bool { return r.Errors[i].Path < r.Errors[j].Path })
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML renders the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}
