package ast

import (
	"fmt"
	"io"
	"strings"
)

// DumpFile writes a human-readable, indented representation of a file's
// top-level declarations. Intended for debugging and golden tests, not for
// round-tripping.
func DumpFile(w io.Writer, f *File) {
	if w == nil || f == nil {
		return
	}
	fmt.Fprintf(w, "file %s\n", f.Name)
	for _, decl := range f.Decls {
		dumpNode(w, decl, 1)
	}
}

func dumpNode(w io.Writer, n *Node, depth int) {
	if n == nil {
		fmt.Fprintf(w, "%s<nil>\n", indent(depth))
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", indent(depth), n.Kind.String(), typeSuffix(n))
	switch n.Kind {
	case KindFun:
		for _, p := range n.Fun.Params {
			dumpNode(w, p, depth+1)
		}
		if n.Fun.Body != nil {
			dumpNode(w, n.Fun.Body, depth+1)
		}
	case KindBlock:
		for _, e := range n.Block.Exprs {
			dumpNode(w, e, depth+1)
		}
	case KindIf:
		dumpNode(w, n.If.Cond, depth+1)
		dumpNode(w, n.If.Then, depth+1)
		if n.If.Else != nil {
			dumpNode(w, n.If.Else, depth+1)
		}
	case KindBinOp:
		fmt.Fprintf(w, "%s  op=%s\n", indent(depth), n.BinOp.Op.String())
		dumpNode(w, n.BinOp.Left, depth+1)
		dumpNode(w, n.BinOp.Right, depth+1)
	case KindCall:
		dumpNode(w, n.Call.Callee, depth+1)
		for _, a := range n.Call.Args {
			dumpNode(w, a, depth+1)
		}
	case KindVar:
		if n.Var.Init != nil {
			dumpNode(w, n.Var.Init, depth+1)
		}
	case KindReturn:
		if n.Return.Value != nil {
			dumpNode(w, n.Return.Value, depth+1)
		}
	}
}

func typeSuffix(n *Node) string {
	if n.Type == nil || n.Type.BasicType == nil {
		return ""
	}
	return " : " + n.Type.BasicType.Code.String()
}

func indent(depth int) string { return strings.Repeat("  ", depth) }
