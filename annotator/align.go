package annotator

import "strings"

// The three alignment passes below each scan the complete record set
// twice: once to measure the file-wide maximum width of a field
// category, once to pad every instance to that width. They must run in
// order, since the label pass prefixes instruction fields and the
// instruction pass pads the strings the full-line pass measures.

// alignLabels pads every label to the widest label in the file and
// prefixes unlabeled instructions with a matching label-column block.
// Returns the computed label width (0 when the file has no labels, in
// which case nothing is touched).
func alignLabels(records []*LineRecord) int {
	labelWidth := 0
	for _, record := range records {
		if record.Kind == LineKindLabeled && len(record.Label) > labelWidth {
			labelWidth = len(record.Label)
		}
	}
	if labelWidth == 0 {
		return 0
	}

	for _, record := range records {
		switch record.Kind {
		case LineKindLabeled:
			record.Label += strings.Repeat(" ", labelWidth-len(record.Label))
		case LineKindUnlabeled:
			// +1 accounts for the separator space labeled lines get
			// between the label column and the instruction column.
			record.Instruction = strings.Repeat(" ", labelWidth+1) + record.Instruction
		}
	}
	return labelWidth
}

// alignInstructions pads every instruction field so all mnemonics occupy
// the width of the longest one. Width is measured on the trimmed
// mnemonic, so the label-column prefix added by alignLabels is preserved.
func alignInstructions(records []*LineRecord) (int, error) {
	instructionWidth := 0
	found := false
	for _, record := range records {
		if record.Kind == LineKindBlank {
			continue
		}
		found = true
		if n := len(strings.TrimSpace(record.Instruction)); n > instructionWidth {
			instructionWidth = n
		}
	}
	if !found {
		return 0, &EmptyInstructionSetError{}
	}

	for _, record := range records {
		if record.Kind == LineKindBlank {
			continue
		}
		pad := instructionWidth - len(strings.TrimSpace(record.Instruction))
		record.Instruction += strings.Repeat(" ", pad)
	}
	return instructionWidth, nil
}

// alignLines renders each non-blank record and pads every rendered line
// to the longest one, storing the result in Rendered.
func alignLines(records []*LineRecord) int {
	lineWidth := 0
	for _, record := range records {
		if record.Kind == LineKindBlank {
			continue
		}
		record.Rendered = renderLine(record)
		if len(record.Rendered) > lineWidth {
			lineWidth = len(record.Rendered)
		}
	}

	for _, record := range records {
		if record.Kind == LineKindBlank {
			continue
		}
		record.Rendered += strings.Repeat(" ", lineWidth-len(record.Rendered))
	}
	return lineWidth
}

// renderLine joins the label (when present), the padded instruction and
// the comma-joined operands with single spaces.
func renderLine(record *LineRecord) string {
	parts := make([]string, 0, 3)
	if record.Kind == LineKindLabeled {
		parts = append(parts, record.Label)
	}
	parts = append(parts, record.Instruction, strings.Join(record.Args, ", "))
	return strings.Join(parts, " ")
}
