package annotator

import (
	"strings"
	"unicode"

	"github.com/luethan2025/doc240/isa"
)

// commentDelimiter starts an inline comment; it and everything after it
// is discarded before tokenization.
const commentDelimiter = ';'

// SplitLines splits file content at line boundaries. A trailing line
// terminator does not produce a phantom final line.
func SplitLines(data string) []string {
	lines := strings.Split(data, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Decompose converts the ordered raw lines of a file into the ordered
// record set, one record per line.
func Decompose(lines []string, catalog *isa.Catalog) ([]*LineRecord, error) {
	records := make([]*LineRecord, 0, len(lines))
	for i, raw := range lines {
		record, err := decomposeLine(raw, i+1, catalog)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// decomposeLine classifies a single raw line. Lines that are empty, or
// empty once the inline comment is stripped, become blank records.
func decomposeLine(raw string, lineNum int, catalog *isa.Catalog) (*LineRecord, error) {
	content := raw
	if idx := strings.IndexByte(content, commentDelimiter); idx >= 0 {
		content = content[:idx]
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return &LineRecord{Kind: LineKindBlank}, nil
	}

	tokens := tokenize(content)
	// Separator-only content (e.g. a bare comma) trims to something
	// non-empty but tokenizes to nothing.
	if len(tokens) == 0 {
		return nil, &MalformedLineError{Line: lineNum}
	}
	if catalog.Has(tokens[0]) {
		return &LineRecord{
			Kind:        LineKindUnlabeled,
			Instruction: tokens[0],
			Args:        tokens[1:],
		}, nil
	}

	// First token is not a mnemonic, so it must be a label naming this
	// line; an instruction token has to follow it.
	if len(tokens) < 2 {
		return nil, &MalformedLineError{Line: lineNum}
	}
	return &LineRecord{
		Kind:        LineKindLabeled,
		Label:       tokens[0],
		Instruction: tokens[1],
		Args:        tokens[2:],
	}, nil
}

// tokenize splits line content into tokens. Operands are comma or space
// separated and commas never appear inside a token.
func tokenize(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
