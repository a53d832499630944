package irbuilder

import (
	"fmt"

	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/irtypes"
)

// buildBinOp lowers a BinOp node against the three operator tables of spec
// §4.2.14: signed int, unsigned int, and float. bool supports only == and
// !=. An unmapped (type, op) pair posts a user diagnostic and yields no
// value rather than panicking: this is the one user-facing error site in
// an otherwise internal-error-only builder.
func (b *Builder) buildBinOp(n *ast.Node) irtypes.Value {
	left := b.BuildRValue(n.BinOp.Left)
	right := b.BuildRValue(n.BinOp.Right)

	opText, isCmp, ok := binOpcode(left.Type, n.BinOp.Op)
	if !ok {
		b.userError(n, diag.CodegenBadBinaryOp, "operator %s is not defined for type %s",
			n.BinOp.Op.String(), left.Type.String())
		return irtypes.Value{}
	}

	reg := b.fn.newReg()
	if isCmp {
		resultType := b.internType(n.Type)
		b.cur.emit(fmt.Sprintf("%s = %s %s %s, %s", reg, opText, left.Type.String(), left.Text, right.Text))
		return irtypes.Value{Text: reg, Type: resultType}
	}
	b.cur.emit(fmt.Sprintf("%s = %s %s %s, %s", reg, opText, left.Type.String(), left.Text, right.Text))
	return irtypes.Value{Text: reg, Type: left.Type}
}

// binOpcode returns the LLVM opcode/predicate text for (operandType, op),
// whether it is a comparison (icmp/fcmp) rather than a plain binary
// instruction, and whether the pair is defined at all.
func binOpcode(t *irtypes.Type, op ast.BinOpKind) (text string, isCmp bool, ok bool) {
	if t.Kind == irtypes.KBool {
		switch op {
		case ast.OpEq:
			return "icmp eq", true, true
		case ast.OpNe:
			return "icmp ne", true, true
		default:
			return "", false, false
		}
	}
	if t.Kind == irtypes.KFloat {
		switch op {
		case ast.OpAdd:
			return "fadd", false, true
		case ast.OpSub:
			return "fsub", false, true
		case ast.OpMul:
			return "fmul", false, true
		case ast.OpDiv:
			return "fdiv", false, true
		case ast.OpMod:
			return "frem", false, true
		case ast.OpEq:
			return "fcmp oeq", true, true
		case ast.OpNe:
			return "fcmp une", true, true
		case ast.OpLt:
			return "fcmp olt", true, true
		case ast.OpLe:
			return "fcmp ole", true, true
		case ast.OpGt:
			return "fcmp ogt", true, true
		case ast.OpGe:
			return "fcmp oge", true, true
		default:
			return "", false, false
		}
	}
	if t.Kind == irtypes.KInt {
		signed := t.Signed
		switch op {
		case ast.OpAdd:
			return "add", false, true
		case ast.OpSub:
			return "sub", false, true
		case ast.OpMul:
			return "mul", false, true
		case ast.OpDiv:
			if signed {
				return "sdiv", false, true
			}
			return "udiv", false, true
		case ast.OpMod:
			if signed {
				return "srem", false, true
			}
			return "urem", false, true
		case ast.OpShl:
			return "shl", false, true
		case ast.OpShr:
			if signed {
				return "ashr", false, true
			}
			return "lshr", false, true
		case ast.OpAnd:
			return "and", false, true
		case ast.OpOr:
			return "or", false, true
		case ast.OpXor:
			return "xor", false, true
		case ast.OpEq:
			return "icmp eq", true, true
		case ast.OpNe:
			return "icmp ne", true, true
		case ast.OpLt:
			if signed {
				return "icmp slt", true, true
			}
			return "icmp ult", true, true
		case ast.OpLe:
			if signed {
				return "icmp sle", true, true
			}
			return "icmp ule", true, true
		case ast.OpGt:
			if signed {
				return "icmp sgt", true, true
			}
			return "icmp ugt", true, true
		case ast.OpGe:
			if signed {
				return "icmp sge", true, true
			}
			return "icmp uge", true, true
		default:
			return "", false, false
		}
	}
	return "", false, false
}
