// Package display holds the render-neutral shapes commands hand to renderers.
package display

// Field is one labelled line of a report
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	// Path marks values that are filesystem paths
	Path bool `json:"-"`
}

// Report is the result of a command
type Report struct {
	Command string   `json:"command"`
	Title   string   `json:"title"`
	Fields  []Field  `json:"fields,omitempty"`
	Notes   []string `json:"notes,omitempty"`
	DryRun  bool     `json:"dryRun,omitempty"`
}

// Add appends a field and returns the report
func (r *Report) Add(label, value string) *Report {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
	return r
}

// AddPath appends a path field and returns the report
func (r *Report) AddPath(label, value string) *Report {
	r.Fields = append(r.Fields, Field{Label: label, Value: value, Path: true})
	return r
}

// Note appends a free-form note
func (r *Report) Note(note string) *Report {
	r.Notes = append(r.Notes, note)
	return r
}

// Value returns the value of the first field with label
func (r *Report) Value(label string) (string, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// LabelWidth is the width of the longest label
func (r *Report) LabelWidth() int {
	w := 0
	for _, f := range r.Fields {
		if len(f.Label) > w {
			w = len(f.Label)
		}
	}
	return w
}
