package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadProfile(t *testing.T) {
	content := `name: RISC240-EXT
extension: .s240
templates:
  NOP: do nothing
  BRA: "jump to {}"
`
	path := filepath.Join(t.TempDir(), "isa.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	prof, err := LoadProfile(path)
	assert.NoError(t, err)
	assert.Equal(t, "RISC240-EXT", prof.Name)
	assert.Equal(t, ".s240", prof.Extension)
	assert.Equal(t, "do nothing", prof.Templates["NOP"])
	assert.Equal(t, "jump to {}", prof.Templates["BRA"])
}

func TestLoadProfileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isa.yaml")
	if err := os.WriteFile(path, []byte("templates:\n  NOP: do nothing\n"), 0600); err != nil {
		t.Fatal(err)
	}

	prof, err := LoadProfile(path)
	assert.NoError(t, err)
	assert.Equal(t, "RISC240", prof.Name)
	assert.Equal(t, ".asm", prof.Extension)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isa.yaml")
	if err := os.WriteFile(path, []byte("templates: [not, a, map"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	prof := Default()
	assert.Equal(t, "RISC240", prof.Name)
	assert.Equal(t, ".asm", prof.Extension)
	assert.Empty(t, prof.Templates)
}
