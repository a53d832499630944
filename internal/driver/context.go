// Package driver composes parse, resolve, codegen, optimize and emit into a
// single build (spec §1, §6). Parse/resolve/optimize/emit are external
// collaborators; this package owns codegen orchestration, diagnostics
// plumbing, build caching and the (stand-in) verification step.
package driver

import (
	"cogen/internal/ast"
	"cogen/internal/diag"
)

// BuildContext bundles per-build resources (spec
// §6: "an arena-style allocator, the target integer width, a diagnostics
// sink"). BuildPackage passes only Diags on: Arena is not used, and IntWidth
// does not reach the type interner, which lowers int and uint to 64 bits
// whatever IntWidth holds. A BuildContext is single-use: construct one per build and discard
// it afterward, matching the builder's single-use contract (spec §5).
type BuildContext struct {
	Arena    *ast.Arena
	IntWidth int
	Diags    diag.Reporter
}

// DefaultIntWidth is the target platform's native integer width in bits,
// used when a BuildContext is constructed without an explicit override.
const DefaultIntWidth = 64

// NewBuildContext creates a BuildContext with the platform default integer
// width and a fresh arena sized for capHint nodes.
func NewBuildContext(capHint int, diags diag.Reporter) *BuildContext {
	return &BuildContext{
		Arena:    ast.NewArena(capHint),
		IntWidth: DefaultIntWidth,
		Diags:    diags,
	}
}
