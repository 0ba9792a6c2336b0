package annotator

import "fmt"

// MalformedLineError reports a non-blank line that lacks the minimum
// tokens for its classification, e.g. a labeled line with no instruction.
type MalformedLineError struct {
	Line int // 1-based source line number
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: label without an instruction", e.Line)
}

// EmptyInstructionSetError reports a file with no instruction lines,
// which leaves the instruction column width undefined.
type EmptyInstructionSetError struct{}

func (e *EmptyInstructionSetError) Error() string {
	return "no instruction lines found"
}

// UnknownInstructionError reports a token in the instruction position
// that is not a recognized mnemonic.
type UnknownInstructionError struct {
	Mnemonic string
	Line     int
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("line %d: unknown instruction %q", e.Line, e.Mnemonic)
}

// OperandArityError reports an operand count that does not match what the
// mnemonic's comment template requires.
type OperandArityError struct {
	Mnemonic string
	Expected int
	Actual   int
	Line     int
}

func (e *OperandArityError) Error() string {
	return fmt.Sprintf("line %d: %s expects %d operand(s), got %d",
		e.Line, e.Mnemonic, e.Expected, e.Actual)
}
