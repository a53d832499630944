package irbuilder

import (
	"strings"
	"testing"

	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/types"
)

// newTestBuilder wires a fresh Builder, ast.Builder, and diag.Bag together
// the way driver.BuildPackage does, so tests can assert both on emitted IR
// text and on diagnostics raised along the way.
func newTestBuilder() (*Builder, *ast.Builder, *diag.Bag) {
	bag := diag.NewBag(16)
	b := New(types.NewInterner(), diag.BagReporter{Bag: bag}, "test.co")
	return b, ast.NewBuilder(32), bag
}

func TestBuildPackageEmitsGlobalsBeforeFunctions(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	g := ab.Var("counter", i32, ast.VarOpts{Const: true, Init: ab.IntLit(i32, 7)})
	mainFn := ab.Fun("main", ab.FunType(nil), nil, ab.Block(ab.Return(nil)))

	pkg := &ast.Package{Name: "prog", Files: []*ast.File{
		{Name: "a.co", Decls: []*ast.Node{g, mainFn}},
	}}

	mod := b.BuildPackage(pkg)
	text := mod.String()

	if !strings.Contains(text, "@counter") {
		t.Errorf("expected global @counter in output:\n%s", text)
	}
	if !strings.Contains(text, "define void @main()") {
		t.Errorf("expected define void @main() in output:\n%s", text)
	}
	globalIdx := strings.Index(text, "@counter")
	mainIdx := strings.Index(text, "define void @main")
	if globalIdx == -1 || mainIdx == -1 || globalIdx > mainIdx {
		t.Errorf("global should be emitted before function:\n%s", text)
	}
}

func TestBuildFunWithoutBodyEmitsDeclare(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	extern := ab.Fun("puts", ab.FunType(i32, i32), []*ast.Node{ab.Var("s", i32, ast.VarOpts{Const: true, Param: true})}, nil)

	pkg := &ast.Package{Name: "prog", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{extern}}}}
	text := b.BuildPackage(pkg).String()

	if !strings.Contains(text, "declare i32 @puts(i32 %p0)") {
		t.Errorf("expected external declaration in output:\n%s", text)
	}
}

func TestBuildReturnValueTerminatesBlock(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	fn := ab.Fun("answer", ab.FunType(i32), nil, ab.Block(ab.Return(ab.IntLit(i32, 42))))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	text := b.BuildPackage(pkg).String()

	if !strings.Contains(text, "ret i32 42") {
		t.Errorf("expected `ret i32 42` in output:\n%s", text)
	}
}

func TestBuildCallArityMismatchReportsDiagnostic(t *testing.T) {
	b, ab, bag := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	param := ab.Var("x", i32, ast.VarOpts{Const: true, Param: true})
	callee := ab.Fun("f", ab.FunType(i32, i32), []*ast.Node{param}, ab.Block(ab.Return(ab.Id(param))))
	badCall := ab.Call(ab.Id(callee), i32)

	main := ab.Fun("main", ab.FunType(i32), nil, ab.Block(ab.Return(badCall)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{callee, main}}}}
	b.BuildPackage(pkg)

	if !bag.HasErrors() {
		t.Fatal("expected an arity-mismatch diagnostic, got none")
	}
	if bag.Items()[0].Code != diag.CodegenArityMismatch {
		t.Errorf("diagnostic code = %v, want CodegenArityMismatch", bag.Items()[0].Code)
	}
}

func TestBuildIfAsRValueEmitsPhi(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	boolT := ab.BasicType(ast.TBool)
	cond := ab.BoolLit(boolT, true)
	ifExpr := ab.If(i32, cond, ab.IntLit(i32, 1), ab.IntLit(i32, 2), true)
	fn := ab.Fun("pick", ab.FunType(i32), nil, ab.Block(ab.Return(ifExpr)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	text := b.BuildPackage(pkg).String()

	if !strings.Contains(text, "= phi i32 [ 1,") {
		t.Errorf("expected a phi node in output:\n%s", text)
	}
}

func TestBuildIfStatementMergesWithoutPhi(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	boolT := ab.BasicType(ast.TBool)
	cond := ab.BoolLit(boolT, false)
	v := ab.Var("x", i32, ast.VarOpts{Init: ab.IntLit(i32, 0)})
	assign := ab.Assign([]*ast.Node{ab.Id(v)}, []*ast.Node{ab.IntLit(i32, 9)}, false)
	ifStmt := ab.If(nil, cond, assign, nil, false)
	fn := ab.Fun("run", ab.FunType(nil), nil, ab.Block(v, ifStmt, ab.Return(nil)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	text := b.BuildPackage(pkg).String()

	if strings.Contains(text, "phi") {
		t.Errorf("statement-form if should not emit a phi:\n%s", text)
	}
	if !strings.Contains(text, "if.end") {
		t.Errorf("expected a merge block in output:\n%s", text)
	}
}

func TestBuildBinOpSignedVsUnsignedDivision(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	u32 := ab.BasicType(ast.TU32)

	signedDiv := ab.BinOp(i32, ast.OpDiv, ab.IntLit(i32, 10), ab.IntLit(i32, 3))
	fnSigned := ab.Fun("sdiv", ab.FunType(i32), nil, ab.Block(ab.Return(signedDiv)))

	unsignedDiv := ab.BinOp(u32, ast.OpDiv, ab.IntLit(u32, 10), ab.IntLit(u32, 3))
	fnUnsigned := ab.Fun("udiv", ab.FunType(u32), nil, ab.Block(ab.Return(unsignedDiv)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fnSigned, fnUnsigned}}}}
	text := b.BuildPackage(pkg).String()

	if !strings.Contains(text, "= sdiv i32") {
		t.Errorf("expected sdiv for signed division:\n%s", text)
	}
	if !strings.Contains(text, "= udiv i32") {
		t.Errorf("expected udiv for unsigned division:\n%s", text)
	}
}

func TestBuildBinOpUnmappedOperatorReportsDiagnostic(t *testing.T) {
	b, ab, bag := newTestBuilder()
	boolT := ab.BasicType(ast.TBool)
	bad := ab.BinOp(boolT, ast.OpAdd, ab.BoolLit(boolT, true), ab.BoolLit(boolT, false))
	fn := ab.Fun("f", ab.FunType(boolT), nil, ab.Block(ab.Return(bad)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	b.BuildPackage(pkg)

	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for bool + bool, got none")
	}
	if bag.Items()[0].Code != diag.CodegenBadBinaryOp {
		t.Errorf("diagnostic code = %v, want CodegenBadBinaryOp", bag.Items()[0].Code)
	}
}

func TestBuildCastWidensSignedInt(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i8 := ab.BasicType(ast.TI8)
	i32 := ab.BasicType(ast.TI32)
	cast := ab.Cast(i32, ab.IntLit(i8, 5))
	fn := ab.Fun("widen", ab.FunType(i32), nil, ab.Block(ab.Return(cast)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	text := b.BuildPackage(pkg).String()

	if !strings.Contains(text, "= sext i8 5 to i32") {
		t.Errorf("expected sext instruction in output:\n%s", text)
	}
}

func TestBuildStructConsMatchesFieldsByName(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	pointType := ab.StructType("Point",
		ast.StructFieldType{Name: "x", Type: i32},
		ast.StructFieldType{Name: "y", Type: i32},
	)
	// Initializers given out of declaration order.
	cons := ab.StructCons(pointType,
		ast.StructConsField{Name: "y", Value: ab.IntLit(i32, 2)},
		ast.StructConsField{Name: "x", Value: ab.IntLit(i32, 1)},
	)
	sel := ab.Selector(i32, cons, "x")
	fn := ab.Fun("getX", ab.FunType(i32), nil, ab.Block(ab.Return(sel)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	text := b.BuildPackage(pkg).String()

	// Constant-only fields are stored as one aggregate literal; the order
	// inside the braces must match declaration order (x, y) even though the
	// literal listed y first.
	if !strings.Contains(text, "%Point { i32 1, i32 2 }") {
		t.Errorf("expected field values reordered to declaration order in output:\n%s", text)
	}
}

func TestBuildSelectorUnknownFieldReportsDiagnostic(t *testing.T) {
	b, ab, bag := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	pointType := ab.StructType("Point", ast.StructFieldType{Name: "x", Type: i32})
	cons := ab.StructCons(pointType, ast.StructConsField{Name: "x", Value: ab.IntLit(i32, 1)})
	sel := ab.Selector(i32, cons, "z")
	fn := ab.Fun("bad", ab.FunType(i32), nil, ab.Block(ab.Return(sel)))

	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	b.BuildPackage(pkg)

	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for an unknown field")
	}
	if bag.Items()[0].Code != diag.CodegenUnknownField {
		t.Errorf("diagnostic code = %v, want CodegenUnknownField", bag.Items()[0].Code)
	}
}

func TestBuildTupleIndexAndDestructureAssign(t *testing.T) {
	b, ab, _ := newTestBuilder()
	i32 := ab.BasicType(ast.TI32)
	boolT := ab.BasicType(ast.TBool)
	tupleType := ab.TupleType(i32, boolT)

	a := ab.Var("a", i32, ast.VarOpts{Init: ab.IntLit(i32, 1)})
	bv := ab.Var("b", boolT, ast.VarOpts{Init: ab.BoolLit(boolT, true)})
	tuple := ab.Tuple(tupleType, ab.Id(a), ab.Id(bv))
	swap := ab.Assign([]*ast.Node{ab.Id(a), ab.Id(bv)}, []*ast.Node{ab.IntLit(i32, 9), ab.BoolLit(boolT, false)}, false)
	idx0 := ab.Index(i32, tuple, ab.IntLit(i32, 0))

	fn := ab.Fun("f", ab.FunType(i32), nil, ab.Block(a, bv, swap, ab.Return(idx0)))
	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{fn}}}}
	text := b.BuildPackage(pkg).String()

	if !strings.Contains(text, "getelementptr inbounds") {
		t.Errorf("expected a GEP for tuple indexing in output:\n%s", text)
	}
}
