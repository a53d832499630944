package irbuilder

import (
	"fmt"
	"strings"

	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/irtypes"
)

// buildCall lowers a function call (spec §4.2.6). The callee is built
// first (memoized if already lowered), then each argument, always loaded.
// An argument count that differs from the callee's parameter count is
// reported as a CodegenArityMismatch diagnostic; the call is still emitted
// with the arguments given.
func (b *Builder) buildCall(n *ast.Node) irtypes.Value {
	callee := b.BuildRValue(n.Call.Callee)

	if callee.Type.Kind == irtypes.KFn && len(callee.Type.Params) != len(n.Call.Args) {
		b.userError(n, diag.CodegenArityMismatch,
			"call to %s expects %d argument(s), got %d", callee.Text, len(callee.Type.Params), len(n.Call.Args))
	}

	args := make([]string, len(n.Call.Args))
	for i, a := range n.Call.Args {
		av := b.BuildRValue(a)
		args[i] = av.String()
	}

	resultType := callee.Type.Result
	if resultType == nil || resultType.IsVoid() {
		b.cur.emit(fmt.Sprintf("call void %s(%s)", callee.Text, strings.Join(args, ", ")))
		return irtypes.Value{Type: irtypes.Void}
	}

	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = call %s %s(%s)", reg, resultType.String(), callee.Text, strings.Join(args, ", ")))
	return irtypes.Value{Text: reg, Type: resultType}
}
