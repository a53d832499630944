package driver

import (
	"strings"
	"testing"

	"cogen/internal/ast"
	"cogen/internal/diag"
)

func TestBuildPackageProducesVerifiedModule(t *testing.T) {
	ab := ast.NewBuilder(16)
	i32 := ab.BasicType(ast.TI32)
	mainFn := ab.Fun("main", ab.FunType(nil), nil, ab.Block(ab.Return(nil)))
	_ = i32

	pkg := &ast.Package{Name: "prog", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{mainFn}}}}

	bag := diag.NewBag(16)
	ctx := NewBuildContext(32, diag.BagReporter{Bag: bag})

	mod, err := BuildPackage(ctx, pkg)
	if err != nil {
		t.Fatalf("BuildPackage: %v", err)
	}
	if !strings.Contains(mod.String(), "define void @main()") {
		t.Errorf("expected a main definition in output:\n%s", mod.String())
	}
	if bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestBuildPackageReportsMissingEntrypoint(t *testing.T) {
	ab := ast.NewBuilder(16)
	i32 := ab.BasicType(ast.TI32)
	helper := ab.Fun("helper", ab.FunType(i32), nil, ab.Block(ab.Return(ab.IntLit(i32, 1))))

	pkg := &ast.Package{Name: "lib", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{helper}}}}

	bag := diag.NewBag(16)
	ctx := NewBuildContext(32, diag.BagReporter{Bag: bag})

	if _, err := BuildPackage(ctx, pkg); err != nil {
		t.Fatalf("BuildPackage: %v", err)
	}

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.DriverInfo {
			found = true
		}
	}
	if !found {
		t.Error("expected a DriverInfo diagnostic noting the missing main function")
	}
}

func TestVerifyModuleAcceptsTerminatedModule(t *testing.T) {
	ab := ast.NewBuilder(16)
	mainFn := ab.Fun("main", ab.FunType(nil), nil, ab.Block(ab.Return(nil)))
	pkg := &ast.Package{Name: "p", Files: []*ast.File{{Name: "a.co", Decls: []*ast.Node{mainFn}}}}

	ctx := NewBuildContext(32, nil)
	mod, err := BuildPackage(ctx, pkg)
	if err != nil {
		t.Fatalf("BuildPackage: %v", err)
	}
	if err := VerifyModule(mod, nil); err != nil {
		t.Errorf("VerifyModule on a well-formed module: %v", err)
	}
}
