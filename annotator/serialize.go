package annotator

import "strings"

// Reconstruct joins the record set back into file text: the rendered
// line of each non-blank record, an empty line for each blank record, in
// original order. Joining adds no trailing separator.
func Reconstruct(records []*LineRecord) string {
	out := make([]string, len(records))
	for i, record := range records {
		if record.Kind != LineKindBlank {
			out[i] = record.Rendered
		}
	}
	return strings.Join(out, "\n")
}
