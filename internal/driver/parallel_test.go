package driver

import (
	"context"
	"testing"

	"cogen/internal/ast"
)

func newPackage(name string) *ast.Package {
	ab := ast.NewBuilder(8)
	mainFn := ab.Fun(name+"Main", ab.FunType(nil), nil, ab.Block(ab.Return(nil)))
	return &ast.Package{Name: name, Files: []*ast.File{{Name: name + ".co", Decls: []*ast.Node{mainFn}}}}
}

func TestBuildPackagesRunsEveryPackage(t *testing.T) {
	pkgs := []*ast.Package{newPackage("a"), newPackage("b"), newPackage("c")}
	results, err := BuildPackages(context.Background(), pkgs, 2, 16, nil, nil)
	if err != nil {
		t.Fatalf("BuildPackages: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q (order must match input)", i, results[i].Name, want)
		}
		if results[i].IRText == "" {
			t.Errorf("results[%d].IRText is empty", i)
		}
	}
}

func TestBuildPackagesEmptyInput(t *testing.T) {
	results, err := BuildPackages(context.Background(), nil, 4, 16, nil, nil)
	if err != nil {
		t.Fatalf("BuildPackages: %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil for empty input", results)
	}
}

func TestBuildPackagesUsesModuleCacheOnRepeatBuild(t *testing.T) {
	mcache := NewModuleCache(4)
	pkg := newPackage("cached")

	first, err := BuildPackages(context.Background(), []*ast.Package{pkg}, 1, 16, mcache, nil)
	if err != nil {
		t.Fatalf("first BuildPackages: %v", err)
	}

	second, err := BuildPackages(context.Background(), []*ast.Package{pkg}, 1, 16, mcache, nil)
	if err != nil {
		t.Fatalf("second BuildPackages: %v", err)
	}

	if first[0].IRText != second[0].IRText {
		t.Error("a cache hit should return the same IR text as the original build")
	}
}
