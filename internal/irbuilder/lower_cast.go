package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/irtypes"
)

// buildCast lowers a TypeCast node (spec §4.2.7). Integer casts sign- or
// zero-extend/truncate per the source type's signedness; float and
// int<->float conversions follow the analogous standard opcodes.
func (b *Builder) buildCast(n *ast.Node) irtypes.Value {
	dst := b.internType(n.Type)
	src := b.BuildRValue(n.Cast.Arg)

	if src.Type == dst || src.Type.String() == dst.String() {
		return src
	}

	op := castOp(src.Type, dst)
	if op == "" {
		b.internalError(n, "buildCast: no conversion from %s to %s", src.Type.String(), dst.String())
	}

	reg := b.fn.newReg()
	b.cur.emit(fmt.Sprintf("%s = %s %s %s to %s", reg, op, src.Type.String(), src.Text, dst.String()))
	return irtypes.Value{Text: reg, Type: dst}
}

func castOp(src, dst *irtypes.Type) string {
	switch {
	case src.Kind == irtypes.KInt && dst.Kind == irtypes.KInt:
		switch {
		case dst.Width > src.Width && src.Signed:
			return "sext"
		case dst.Width > src.Width:
			return "zext"
		case dst.Width < src.Width:
			return "trunc"
		default:
			return "bitcast"
		}
	case src.Kind == irtypes.KInt && dst.Kind == irtypes.KFloat:
		if src.Signed {
			return "sitofp"
		}
		return "uitofp"
	case src.Kind == irtypes.KFloat && dst.Kind == irtypes.KInt:
		if dst.Signed {
			return "fptosi"
		}
		return "fptoui"
	case src.Kind == irtypes.KFloat && dst.Kind == irtypes.KFloat:
		if dst.Width > src.Width {
			return "fpext"
		}
		return "fptrunc"
	default:
		return ""
	}
}
