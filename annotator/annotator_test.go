package annotator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/luethan2025/doc240/isa"
	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/txtar"
)

func TestAnnotate(t *testing.T) {
	lines := []string{
		"LOOP: ADD R1, R2, R3",
		"BRA LOOP",
	}

	text, stats, err := New(isa.Default()).Annotate(lines)
	assert.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"LOOP: ADD R1, R2, R3 ; R1 <- R2 + R3",
		"      BRA LOOP       ; goto LOOP",
	}, "\n"), text)

	assert.Equal(t, 2, stats.TotalLines)
	assert.Equal(t, 0, stats.BlankLines)
	assert.Equal(t, 2, stats.Instructions)
	assert.Equal(t, 1, stats.Labels)
	assert.Equal(t, 5, stats.LabelWidth)
	assert.Equal(t, 3, stats.InstructionWidth)
	assert.Equal(t, 20, stats.LineWidth)
}

func TestAnnotatePreservesOrderAndBlanks(t *testing.T) {
	lines := []string{
		"",
		"LI R1, 5",
		"",
		"; nothing but a comment",
		"STOP",
	}

	text, stats, err := New(isa.Default()).Annotate(lines)
	assert.NoError(t, err)

	out := strings.Split(text, "\n")
	assert.Equal(t, len(lines), len(out))
	assert.Equal(t, "", out[0])
	assert.Equal(t, "", out[2])
	assert.Equal(t, "", out[3])
	assert.True(t, strings.HasPrefix(out[1], "LI"))
	assert.True(t, strings.HasPrefix(out[4], "STOP"))
	assert.Equal(t, 3, stats.BlankLines)
	assert.Equal(t, 2, stats.Instructions)
}

func TestAnnotateWidthInvariant(t *testing.T) {
	lines := []string{
		"START: LI R1, 100",
		"LOOP: SUB R1, R1, R2",
		"BRNZ LOOP",
		"STOP",
	}

	text, stats, err := New(isa.Default()).Annotate(lines)
	assert.NoError(t, err)

	for _, line := range strings.Split(text, "\n") {
		rendered := line[:strings.Index(line, ";")-1]
		assert.Equal(t, stats.LineWidth, len(rendered))
	}
}

// The decomposer strips inline comments, so feeding the pipeline its own
// output must reproduce that output byte for byte.
func TestAnnotateIdempotent(t *testing.T) {
	lines := []string{
		"",
		"START: LI R1, 5",
		"LI R2, 10",
		"LOOP: ADD R3, R1, R2",
		"BRZ DONE",
		"BRA LOOP",
		"DONE: STOP",
	}

	first, _, err := New(isa.Default()).Annotate(lines)
	assert.NoError(t, err)

	second, _, err := New(isa.Default()).Annotate(SplitLines(first))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnnotateUnknownInstruction(t *testing.T) {
	// FOO is not a mnemonic, so it classifies as a label; R1 is not a
	// mnemonic either, making the instruction position unknown.
	_, _, err := New(isa.Default()).Annotate([]string{"FOO R1, R2"})
	assert.Error(t, err)

	unknown, ok := err.(*UnknownInstructionError)
	assert.True(t, ok)
	assert.Equal(t, "R1", unknown.Mnemonic)
	assert.Equal(t, 1, unknown.Line)
}

func TestAnnotateOperandArity(t *testing.T) {
	_, _, err := New(isa.Default()).Annotate([]string{"SLT R1, R2"})
	assert.NoError(t, err)

	_, _, err = New(isa.Default()).Annotate([]string{"MV R1, R2", "SLT R1"})
	assert.Error(t, err)

	arity, ok := err.(*OperandArityError)
	assert.True(t, ok)
	assert.Equal(t, "SLT", arity.Mnemonic)
	assert.Equal(t, 2, arity.Expected)
	assert.Equal(t, 1, arity.Actual)
	assert.Equal(t, 2, arity.Line)
}

func TestAnnotateEmptyFile(t *testing.T) {
	_, _, err := New(isa.Default()).Annotate(nil)
	assert.Error(t, err)
	assert.IsType(t, &EmptyInstructionSetError{}, err)
}

func TestAnnotateGolden(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "annotate.txtar"))
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	files := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		files[f.Name] = string(f.Data)
	}

	input, ok := files["input.asm"]
	assert.True(t, ok)
	expected, ok := files["expected.asm"]
	assert.True(t, ok)

	text, _, err := New(isa.Default()).Annotate(SplitLines(input))
	assert.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(expected, "\n"), text)
}
