package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/irtypes"
)

// buildIf lowers a conditional to the standard SSA if-then-else (spec
// §4.2.15). The incoming block recorded in the phi is whichever block is
// active after building each branch, since building a branch may itself
// create new blocks (spec's explicit invariant).
func (b *Builder) buildIf(n *ast.Node) irtypes.Value {
	cond := b.BuildRValue(n.If.Cond)

	asRValue := n.IsRValue()
	needsElse := n.If.Else != nil || asRValue

	thenBB := b.fn.newBlock("if.then")
	var elseBB *Block
	if needsElse {
		elseBB = b.fn.newBlock("if.else")
	}
	endBB := b.fn.newBlock("if.end")

	if needsElse {
		b.cur.setTerm(fmt.Sprintf("br i1 %s, label %%%s, label %%%s", cond.Text, thenBB.Label, elseBB.Label))
	} else {
		b.cur.setTerm(fmt.Sprintf("br i1 %s, label %%%s, label %%%s", cond.Text, thenBB.Label, endBB.Label))
	}

	b.cur = thenBB
	thenVal := b.BuildRValue(n.If.Then)
	thenEndLabel := b.cur.Label
	if !b.cur.Terminated() {
		b.cur.setTerm(fmt.Sprintf("br label %%%s", endBB.Label))
	}

	var elseVal irtypes.Value
	var elseEndLabel string
	if needsElse {
		b.cur = elseBB
		if n.If.Else != nil {
			elseVal = b.BuildRValue(n.If.Else)
		} else {
			elseVal = irtypes.Zero(thenVal.Type)
		}
		elseEndLabel = b.cur.Label
		if !b.cur.Terminated() {
			b.cur.setTerm(fmt.Sprintf("br label %%%s", endBB.Label))
		}
	}

	b.cur = endBB

	if !asRValue {
		return irtypes.Value{Type: irtypes.Void}
	}

	if thenVal.Type.String() != elseVal.Type.String() {
		b.userError(n, diag.CodegenIfBranchMismatch,
			"if-expression branches have mismatched types %s and %s", thenVal.Type.String(), elseVal.Type.String())
	}

	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = phi %s [ %s, %%%s ], [ %s, %%%s ]",
		reg, thenVal.Type.String(), thenVal.Text, thenEndLabel, elseVal.Text, elseEndLabel))
	return irtypes.Value{Text: reg, Type: thenVal.Type}
}
