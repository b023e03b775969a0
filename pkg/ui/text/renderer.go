// Package text provides plain text output without styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/mwbotctl/pkg/ui/display"
)

// Renderer writes unstyled output, suitable for pipes and NO_COLOR
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a report as aligned label: value lines
func (r *Renderer) RenderResult(result interface{}) error {
	report, ok := result.(*display.Report)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}

	if report.DryRun {
		if _, err := fmt.Fprintln(r.output, "DRY RUN - nothing was written"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.output, report.Title); err != nil {
		return err
	}
	width := report.LabelWidth()
	for _, f := range report.Fields {
		if _, err := fmt.Fprintf(r.output, "  %-*s  %s\n", width+1, f.Label+":", f.Value); err != nil {
			return err
		}
	}
	for _, n := range report.Notes {
		if _, err := fmt.Fprintf(r.output, "  %s\n", n); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderMarkdown writes the markdown source unchanged
func (r *Renderer) RenderMarkdown(doc string) error {
	_, err := io.WriteString(r.output, doc)
	return err
}
