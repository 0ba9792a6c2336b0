// Package renderer provides a way to render run reports in different formats.
package renderer

import (
	"io"

	"github.com/luethan2025/doc240/annotator"
)

// Report summarizes one successful annotation run.
type Report struct {
	Source string          `json:"source"`
	Output string          `json:"output"`
	ISA    string          `json:"isa"`
	Stats  annotator.Stats `json:"stats"`
}

// Renderer defines the interface for rendering a run report.
type Renderer interface {
	// Render writes the report to the provided writer in the renderer's format.
	Render(report *Report, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
