package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildFun lowers a Fun node (spec §4.2.4). irval is set to the function's
// callable handle before the body is built, breaking cycles through
// recursive calls and self-referential function types.
func (b *Builder) buildFun(n *ast.Node) irtypes.Value {
	sig := b.internType(n.Type)

	private := n.Fun.Name != "main"
	f := newFunc(n.Fun.Name, sig, private)

	callable := irtypes.Value{Text: "@" + n.Fun.Name, Type: sig}
	n.IRVal = callable

	if n.Fun.Body == nil {
		f.Decl = true
		f.Private = false
		b.mod.Funcs = append(b.mod.Funcs, f)
		return callable
	}

	prevFn, prevBlock := b.fn, b.cur
	b.fn = f
	entry := f.newBlock("entry")
	b.cur = entry

	for i, p := range n.Fun.Params {
		b.bindParam(p, i)
	}

	v := b.BuildRValue(n.Fun.Body)

	if !b.cur.Terminated() {
		if sig.Result.IsVoid() || v.Text == "" {
			b.cur.setTerm("ret void")
		} else {
			b.cur.setTerm(fmt.Sprintf("ret %s", v.String()))
		}
	}

	b.mod.Funcs = append(b.mod.Funcs, f)
	b.fn, b.cur = prevFn, prevBlock
	return callable
}

// bindParam binds incoming parameter i to its Var node: a const param is
// bound directly to the incoming register; a mutable param gets an alloca
// that the incoming value is stored into (spec §4.2.4 step 4).
func (b *Builder) bindParam(p *ast.Node, index int) {
	t := b.internType(p.Type)
	incoming := fmt.Sprintf("%%p%d", index)

	if p.IsConst() {
		p.IRVal = irtypes.Value{Text: incoming, Type: t}
		return
	}

	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = alloca %s", reg, t.String()))
	b.cur.emit(fmt.Sprintf("store %s %s, ptr %s", t.String(), incoming, reg))
	p.IRVal = irtypes.Value{Text: reg, Type: t}
}
