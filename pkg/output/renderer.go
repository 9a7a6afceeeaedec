// Package output renders CLI results as plain text, styled terminal text or
// JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/logging"
	"github.com/arthur-debert/userenv/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes results in one format.
type Renderer struct {
	w      io.Writer
	format Format
	style  *lipgloss.Renderer
}

// NewRenderer creates a Renderer for w. FormatAuto is resolved against w
// when it is a terminal file, and falls back to FormatText otherwise.
func NewRenderer(format Format, w io.Writer) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	logger := logging.GetLogger("output")
	logger.Trace().
		Str("format", format.String()).
		Msg("renderer created")

	return &Renderer{w: w, format: format, style: lipgloss.NewRenderer(w)}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format {
	return r.format
}

// RenderResult writes res.
func (r *Renderer) RenderResult(res Result) error {
	switch r.format {
	case FormatJSON:
		return r.encode(res)
	case FormatTerminal:
		_, err := fmt.Fprintln(r.w, r.styled(res))
		return err
	default:
		_, err := fmt.Fprintln(r.w, res.Line())
		return err
	}
}

// RenderError writes err. In JSON mode the error code is included.
func (r *Renderer) RenderError(err error) error {
	switch r.format {
	case FormatJSON:
		return r.encode(map[string]string{
			"error": err.Error(),
			"code":  string(errors.GetErrorCode(err)),
		})
	case FormatTerminal:
		_, werr := fmt.Fprintf(r.w, "%s %v\n", r.render("Error", "Error:"), err)
		return werr
	default:
		_, werr := fmt.Fprintf(r.w, "Error: %v\n", err)
		return werr
	}
}

func (r *Renderer) encode(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) render(style, s string) string {
	return styles.GetStyle(style).Renderer(r.style).Render(s)
}

func (r *Renderer) styled(res Result) string {
	name := r.render("Name", res.Name)
	value := r.render("Value", res.Value)
	entry := r.render("Entry", res.Value)

	switch res.Op {
	case "set":
		return fmt.Sprintf("%s=%s", name, value)
	case "get":
		return res.Value
	case "remove":
		return fmt.Sprintf("%s %s", name, r.render("Muted", "removed"))
	case "exists":
		if res.Exists != nil && *res.Exists {
			return r.render("Success", "true")
		}
		return r.render("Warning", "false")
	case "append":
		return fmt.Sprintf("%s %s to %s", r.render("Success", "appended:"), entry, name)
	case "prepend":
		return fmt.Sprintf("%s %s to %s", r.render("Success", "prepended:"), entry, name)
	case "remove-from-list":
		if res.Changed != nil && !*res.Changed {
			return fmt.Sprintf("%s %s %s", entry, r.render("Muted", "not in"), name)
		}
		return fmt.Sprintf("%s %s from %s", r.render("Success", "removed:"), entry, name)
	default:
		return res.Line()
	}
}
