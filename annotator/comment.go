package annotator

import "github.com/luethan2025/doc240/isa"

// synthesizeComments appends " ; <effect>" to every non-blank record's
// rendered line, deriving the effect from the mnemonic's catalog
// template and the record's operands. Only Rendered is mutated.
func synthesizeComments(records []*LineRecord, catalog *isa.Catalog) error {
	for i, record := range records {
		if record.Kind == LineKindBlank {
			continue
		}
		mnemonic := isa.Normalize(record.Instruction)
		template, ok := catalog.Lookup(mnemonic)
		if !ok {
			return &UnknownInstructionError{Mnemonic: mnemonic, Line: i + 1}
		}
		if template.Arity() != len(record.Args) {
			return &OperandArityError{
				Mnemonic: mnemonic,
				Expected: template.Arity(),
				Actual:   len(record.Args),
				Line:     i + 1,
			}
		}
		record.Rendered += " ; " + template.Fill(record.Args)
	}
	return nil
}
