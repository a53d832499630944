// Package irbuilder is the recursive AST-to-IR tree walker: the 60% core
// described by the specification this module implements. It lowers a typed
// ast.Package into a textual LLVM-style Module (spec §4.2).
package irbuilder

import (
	"fmt"
	"strings"

	"cogen/internal/irtypes"
)

// Global is a module-scope variable.
type Global struct {
	Name    string
	Type    *irtypes.Type
	Init    irtypes.Value
	Private bool
}

// Module is the built IR module: struct type definitions, globals, and
// functions, rendered as LLVM IR text (spec §6 "Text IR (.ll): LLVM IR
// text"). The core never shells out to cgo LLVM bindings; it only ever
// produces this text, which an external emitter collaborator consumes.
type Module struct {
	SourceFilename string

	structOrder []*irtypes.Type
	structSeen  map[string]bool

	Globals []*Global
	Funcs   []*Func
}

// NewModule creates an empty module for the given source filename.
func NewModule(sourceFilename string) *Module {
	return &Module{
		SourceFilename: sourceFilename,
		structSeen:     make(map[string]bool),
	}
}

// declareStruct registers a named struct type for a `%Name = type {...}`
// definition line, in first-use order. Anonymous structs (tuples, the
// anonymous-struct-literal helper's output) are never registered here; they
// are spelled out inline wherever they appear.
func (m *Module) declareStruct(t *irtypes.Type) {
	if t == nil || t.Kind != irtypes.KStruct || t.StructName == "" {
		return
	}
	if m.structSeen[t.StructName] {
		return
	}
	m.structSeen[t.StructName] = true
	m.structOrder = append(m.structOrder, t)
}

// String renders the full module as LLVM IR text.
func (m *Module) String() string {
	var b strings.Builder
	if m.SourceFilename != "" {
		fmt.Fprintf(&b, "source_filename = %q\n\n", m.SourceFilename)
	}
	for _, t := range m.structOrder {
		fmt.Fprintf(&b, "%%%s = type %s\n", t.StructName, t.LiteralBody())
	}
	if len(m.structOrder) > 0 {
		b.WriteByte('\n')
	}
	for _, g := range m.Globals {
		linkage := "private "
		if !g.Private {
			linkage = ""
		}
		fmt.Fprintf(&b, "@%s = %sglobal %s %s\n", g.Name, linkage, g.Type.String(), g.Init.Text)
	}
	if len(m.Globals) > 0 {
		b.WriteByte('\n')
	}
	for _, f := range m.Funcs {
		f.writeTo(&b)
		b.WriteByte('\n')
	}
	return b.String()
}
