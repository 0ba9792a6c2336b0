package renderer

import (
	"fmt"
	"io"
	"strings"
)

// TextRenderer formats the run report as human-readable text.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render formats and writes the run report in a single write.
func (r *TextRenderer) Render(report *Report, output io.Writer) error {
	var b strings.Builder

	b.WriteString("doc240 has finished\n\n")
	b.WriteString(fmt.Sprintf("Source:       %s\n", report.Source))
	if report.Output != report.Source {
		b.WriteString(fmt.Sprintf("Output:       %s\n", report.Output))
	}
	b.WriteString(fmt.Sprintf("ISA:          %s\n", report.ISA))
	b.WriteString(fmt.Sprintf("Lines:        %d (%d blank)\n",
		report.Stats.TotalLines, report.Stats.BlankLines))
	b.WriteString(fmt.Sprintf("Instructions: %d (%d labeled)\n",
		report.Stats.Instructions, report.Stats.Labels))
	b.WriteString(fmt.Sprintf("Columns:      label=%d mnemonic=%d line=%d\n",
		report.Stats.LabelWidth, report.Stats.InstructionWidth, report.Stats.LineWidth))

	_, err := output.Write([]byte(b.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
