package driver

import "cogen/internal/ast"

// Frontend turns a filesystem path into a fully-resolved typed package:
// lexing, parsing, name resolution and type checking, all external
// collaborators per spec §1 ("an already fully-resolved, typed AST"). This
// module implements none of them; a caller links in whatever frontend
// produces its typed AST and registers it here so cmd/cogen's build command
// has something to drive.
type Frontend func(path string) (*ast.Package, error)

// ActiveFrontend is the Frontend the CLI calls into. It is nil by default;
// a binary embedding a real parser/resolver sets it during init.
var ActiveFrontend Frontend
