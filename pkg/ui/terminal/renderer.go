// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/mwbotctl/pkg/ui/display"
	"github.com/arthur-debert/mwbotctl/pkg/ui/styles"
	"github.com/charmbracelet/glamour"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
	// WordWrap is the markdown wrap width; 0 keeps glamour's default.
	WordWrap int
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a report with semantic styles
func (r *Renderer) RenderResult(result interface{}) error {
	report, ok := result.(*display.Report)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}

	if report.DryRun {
		if _, err := fmt.Fprintln(r.output, styles.GetStyle("DryRunBanner").Render("DRY RUN - nothing was written")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.output, styles.GetStyle("Header").Render(report.Title)); err != nil {
		return err
	}

	label := styles.GetStyle("Label")
	width := report.LabelWidth()
	for _, f := range report.Fields {
		value := f.Value
		if f.Path {
			value = styles.GetStyle("FilePath").Render(value)
		}
		line := label.Render(fmt.Sprintf("%-*s", width+1, f.Label+":")) + "  " + value
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	for _, n := range report.Notes {
		if _, err := fmt.Fprintln(r.output, "  "+styles.GetStyle("MutedItalic").Render(n)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message in the Info style
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}

// RenderMarkdown renders markdown through glamour, writing the source
// unchanged if glamour cannot render it
func (r *Renderer) RenderMarkdown(doc string) error {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.WordWrap > 0 {
		options = append(options, glamour.WithWordWrap(r.WordWrap))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		_, werr := io.WriteString(r.output, doc)
		return werr
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		rendered = doc
	}
	_, err = io.WriteString(r.output, rendered)
	return err
}
