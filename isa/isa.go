// Package isa defines the RISC240 instruction catalog: a static mapping
// from instruction mnemonic to the comment template describing its effect.
package isa

import "strings"

// placeholder is substituted positionally, left to right, by operands.
const placeholder = "{}"

// Template is a comment template with positional placeholders.
type Template struct {
	text  string
	arity int
}

// Arity returns the number of placeholders the template consumes.
func (t Template) Arity() int {
	return t.arity
}

// Fill substitutes args into the template's placeholders in order.
// The caller is expected to have checked len(args) against Arity.
func (t Template) Fill(args []string) string {
	out := t.text
	for _, arg := range args {
		out = strings.Replace(out, placeholder, arg, 1)
	}
	return out
}

// Normalize converts a raw mnemonic token to its catalog-key form.
func Normalize(mnemonic string) string {
	return strings.ToUpper(strings.TrimSpace(mnemonic))
}

// Catalog is an immutable mnemonic-to-template lookup table. Keys are
// stored upper-case; lookups are normalized, so matching is
// case-insensitive.
type Catalog struct {
	templates map[string]Template
}

// New builds a catalog from a mnemonic-to-template-text mapping.
func New(templates map[string]string) *Catalog {
	c := &Catalog{templates: make(map[string]Template, len(templates))}
	for mnemonic, text := range templates {
		c.templates[Normalize(mnemonic)] = Template{
			text:  text,
			arity: strings.Count(text, placeholder),
		}
	}
	return c
}

// Lookup returns the template for a mnemonic, normalizing it first.
func (c *Catalog) Lookup(mnemonic string) (Template, bool) {
	tmpl, ok := c.templates[Normalize(mnemonic)]
	return tmpl, ok
}

// Has reports whether the normalized mnemonic is a catalog key.
func (c *Catalog) Has(mnemonic string) bool {
	_, ok := c.templates[Normalize(mnemonic)]
	return ok
}

// Merge returns a new catalog with overrides applied on top of c.
// Neither input is modified.
func (c *Catalog) Merge(overrides map[string]string) *Catalog {
	merged := &Catalog{templates: make(map[string]Template, len(c.templates)+len(overrides))}
	for key, tmpl := range c.templates {
		merged.templates[key] = tmpl
	}
	for mnemonic, text := range overrides {
		merged.templates[Normalize(mnemonic)] = Template{
			text:  text,
			arity: strings.Count(text, placeholder),
		}
	}
	return merged
}

// Size returns the number of mnemonics in the catalog.
func (c *Catalog) Size() int {
	return len(c.templates)
}

// risc240 maps each RISC240 mnemonic to its register-transfer comment.
// All templates are strictly positional.
var risc240 = map[string]string{
	"ADD":  "{} <- {} + {}",
	"ADDI": "{} <- {} + {}",
	"AND":  "{} <- {} AND {}",
	"BRA":  "goto {}",
	"BRC":  "if carry, goto {}",
	"BRN":  "if negative, goto {}",
	"BRNZ": "if negative or zero, goto {}",
	"BRV":  "if overflow, goto {}",
	"BRZ":  "if zero, goto {}",
	"LI":   "{} <- {}",
	"LW":   "{} <- M[{} + {}]",
	"MV":   "{} <- {}",
	"NOT":  "{} <- {} NOT {}",
	"OR":   "{} <- {} OR {}",
	"SLL":  "{} <- {} << {}",
	"SLLI": "{} <- {} << {}",
	"SLT":  "{} - {}",
	"SLTI": "{} - {}",
	"SRA":  "{} <- {} >>> {}",
	"SRAI": "{} <- {} >>> {}",
	"SRL":  "{} <- {} >> {}",
	"SRLI": "{} <- {} >> {}",
	"STOP": "all done",
	"SUB":  "{} <- {} - {}",
	"SW":   "M[{} + {}] <- {}",
	"XOR":  "{} <- {} XOR {}",
}

var defaultCatalog = New(risc240)

// Default returns the built-in RISC240 catalog.
func Default() *Catalog {
	return defaultCatalog
}
