package irbuilder

import (
	"fmt"
	"strings"

	"cogen/internal/irtypes"
)

// Block is a single basic block under construction: an ordered instruction
// list plus an (initially empty) terminator line (spec GLOSSARY "Basic
// block").
type Block struct {
	Label  string
	Instrs []string
	Term   string
}

// Terminated reports whether the block already has a terminator (spec
// invariant 1, "Terminator completeness").
func (b *Block) Terminated() bool { return b.Term != "" }

// Func is a function under construction.
type Func struct {
	Name    string
	Sig     *irtypes.Type // KFn
	Private bool
	Decl    bool // true for a bodyless external declaration

	Blocks  []*Block
	nextReg int
	nextBB  int
}

func newFunc(name string, sig *irtypes.Type, private bool) *Func {
	return &Func{Name: name, Sig: sig, Private: private}
}

// newReg allocates a fresh SSA register name.
func (f *Func) newReg() string {
	r := fmt.Sprintf("%%r%d", f.nextReg)
	f.nextReg++
	return r
}

// newBlock allocates and appends a fresh, empty block with a readable label
// built from hint. Every block after the function's first is suffixed with
// the function's running block count (e.g. "if.then" becomes "if.then3").
func (f *Func) newBlock(hint string) *Block {
	label := hint
	if f.nextBB > 0 {
		label = fmt.Sprintf("%s%d", hint, f.nextBB)
	}
	f.nextBB++
	b := &Block{Label: label}
	f.Blocks = append(f.Blocks, b)
	return b
}

func (b *Block) emit(line string) {
	b.Instrs = append(b.Instrs, line)
}

func (b *Block) setTerm(line string) {
	if b.Terminated() {
		panic(fmt.Sprintf("irbuilder: block %q already terminated", b.Label))
	}
	b.Term = line
}

func (f *Func) writeTo(w *strings.Builder) {
	params := make([]string, len(f.Sig.Params))
	for i, p := range f.Sig.Params {
		params[i] = fmt.Sprintf("%s %%p%d", p.String(), i)
	}
	linkage := "private "
	if !f.Private {
		linkage = ""
	}
	if f.Decl {
		fmt.Fprintf(w, "declare %s @%s(%s)\n", f.Sig.Result.String(), f.Name, strings.Join(params, ", "))
		return
	}
	fmt.Fprintf(w, "define %s%s @%s(%s) {\n", linkage, f.Sig.Result.String(), f.Name, strings.Join(params, ", "))
	for _, bb := range f.Blocks {
		fmt.Fprintf(w, "%s:\n", bb.Label)
		for _, line := range bb.Instrs {
			fmt.Fprintf(w, "  %s\n", line)
		}
		if bb.Term == "" {
			panic(fmt.Sprintf("irbuilder: function %s block %q left unterminated", f.Name, bb.Label))
		}
		fmt.Fprintf(w, "  %s\n", bb.Term)
	}
	fmt.Fprint(w, "}\n")
}
