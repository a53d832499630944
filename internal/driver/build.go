package driver

import (
	"cogen/internal/ast"
	"cogen/internal/diag"
	"cogen/internal/irbuilder"
	"cogen/internal/source"
	"cogen/internal/symbols"
	"cogen/internal/types"
)

// BuildPackage runs codegen over a fully-resolved package: intern its types,
// lower every file to IR, and verify the result (spec §4.3, the driver's
// composition of the core with its collaborators). Each call constructs its
// own Interner and Builder, so BuildPackage may run concurrently across
// packages provided each call is given its own BuildContext (spec §5).
func BuildPackage(ctx *BuildContext, pkg *ast.Package) (*irbuilder.Module, error) {
	scope := symbols.BuildPackageScope(pkg)
	checkEntrypoint(scope, pkg, ctx.Diags)

	interner := types.NewInterner()
	b := irbuilder.New(interner, ctx.Diags, pkg.Name)
	mod := b.BuildPackage(pkg)
	if err := VerifyModule(mod, ctx.Diags); err != nil {
		return mod, err
	}
	return mod, nil
}

// checkEntrypoint consults the package scope for the "main" global the way
// spec §3.4 describes codegen using Scope: "a read-only lookup for global
// symbols when needed." This is the one place the core performs such a
// lookup; every other reference resolves through the node's own Target
// pointer (spec §3.1), set by the resolver before codegen ever runs.
func checkEntrypoint(scope *symbols.Scope, pkg *ast.Package, diags diag.Reporter) {
	if diags == nil {
		return
	}
	if _, ok := scope.LookupLocal("main"); !ok {
		diags.Report(diag.DriverInfo, diag.SevInfo, source.Span{},
			"package "+pkg.Name+" defines no \"main\" function", nil, nil)
	}
}
