package annotator

// LineKind represents the classification of a parsed source line.
type LineKind int

const (
	LineKindBlank     LineKind = iota // No content, preserved as an empty line
	LineKindLabeled                   // Label followed by an instruction
	LineKindUnlabeled                 // Instruction with no leading label
)

// LineRecord is the per-line unit of processing. Records map 1:1 onto the
// physical source lines and keep their order, so a record's position in
// the slice is its 0-based line index.
//
// Label, Instruction and Rendered are mutated in place by the alignment
// passes; Args stays untouched after decomposition so diagnostics can
// report the original operands.
type LineRecord struct {
	Kind        LineKind
	Label       string   // Only set for LineKindLabeled
	Instruction string   // Mnemonic, possibly padded/prefixed by alignment
	Args        []string // Operand tokens, commas stripped, order-significant
	Rendered    string   // Aligned line text plus the synthesized comment
}
