package symbols

import "cogen/internal/ast"

// BuildPackageScope collects every top-level Var and Fun declaration across
// all files of a package into one module-level Scope, the read-only
// global lookup codegen consults when a reference crosses file boundaries
// within the same package (spec §3.4).
func BuildPackageScope(pkg *ast.Package) *Scope {
	mod := NewScope(KindModule, nil)
	for _, f := range pkg.Files {
		for _, decl := range f.Decls {
			name := declName(decl)
			if name == "" {
				continue
			}
			mod.Define(name, decl)
		}
	}
	return mod
}

func declName(n *ast.Node) string {
	switch n.Kind {
	case ast.KindVar:
		return n.Var.Name
	case ast.KindFun:
		return n.Fun.Name
	default:
		return ""
	}
}
