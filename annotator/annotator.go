// Package annotator implements the doc240 formatting pipeline: raw
// source lines are decomposed into per-line records, column-aligned
// across the whole file, annotated with a comment describing each
// instruction's effect, and serialized back into file text.
//
// The pipeline is a pure in-memory transformation; reading and writing
// the file belong to the caller. A run either produces the complete
// annotated text or fails with one of the errors in errors.go.
package annotator

import "github.com/luethan2025/doc240/isa"

// Stats describes what a successful run processed, for reporting.
type Stats struct {
	TotalLines       int `json:"total_lines"`
	BlankLines       int `json:"blank_lines"`
	Instructions     int `json:"instructions"`
	Labels           int `json:"labels"`
	LabelWidth       int `json:"label_width"`
	InstructionWidth int `json:"instruction_width"`
	LineWidth        int `json:"line_width"`
}

// Annotator runs the pipeline against a fixed instruction catalog.
type Annotator struct {
	catalog *isa.Catalog
}

// New returns an Annotator backed by the given catalog.
func New(catalog *isa.Catalog) *Annotator {
	return &Annotator{catalog: catalog}
}

// Annotate transforms the raw lines of one file into the aligned,
// annotated file text. Records never outlive the call.
func (a *Annotator) Annotate(lines []string) (string, Stats, error) {
	var stats Stats

	records, err := Decompose(lines, a.catalog)
	if err != nil {
		return "", stats, err
	}

	stats.TotalLines = len(records)
	for _, record := range records {
		switch record.Kind {
		case LineKindBlank:
			stats.BlankLines++
		case LineKindLabeled:
			stats.Labels++
			stats.Instructions++
		case LineKindUnlabeled:
			stats.Instructions++
		}
	}

	stats.LabelWidth = alignLabels(records)
	stats.InstructionWidth, err = alignInstructions(records)
	if err != nil {
		return "", stats, err
	}
	stats.LineWidth = alignLines(records)

	if err := synthesizeComments(records, a.catalog); err != nil {
		return "", stats, err
	}
	return Reconstruct(records), stats, nil
}
