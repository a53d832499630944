package diag

import "fmt"

// Code is a compact numeric diagnostic identifier. Bands group codes by the
// pipeline stage that raises them; codegen is the only stage implemented by
// this module, but the banding is kept so a future parser/sema stage can
// plug in its own codes without colliding.
type Code uint16

const (
	// UnknownCode is the zero value; never raised deliberately.
	UnknownCode Code = 0

	// Codegen-time user diagnostics (IR builder, type interner).
	CodegenInfo             Code = 4000
	CodegenBadBinaryOp      Code = 4001 // no (type, op) mapping exists
	CodegenIfBranchMismatch Code = 4002 // then/else rvalue types differ
	CodegenUnknownNodeKind  Code = 4003 // internal: unreachable node kind
	CodegenMissingType      Code = 4004 // expression reached codegen with a nil type
	CodegenBadIndex         Code = 4005 // tuple index is not a compile-time literal
	CodegenUnknownField     Code = 4006 // selector names a field absent from the struct
	CodegenArityMismatch    Code = 4007 // call argument count != parameter count
	CodegenTupleLenMismatch Code = 4008 // tuple assignment target/source length differ

	// Driver-time resource diagnostics (verification, allocation, cache).
	DriverInfo          Code = 5000
	DriverVerifyFailed  Code = 5001
	DriverAllocFailed   Code = 5002
	DriverCacheCorrupt  Code = 5003
	DriverConfigInvalid Code = 5004
)

var codeDescription = map[Code]string{
	UnknownCode:             "unknown diagnostic",
	CodegenInfo:             "codegen info",
	CodegenBadBinaryOp:      "unsupported operand type for binary operator",
	CodegenIfBranchMismatch: "if-expression branches have different types",
	CodegenUnknownNodeKind:  "unreachable AST node kind reached codegen",
	CodegenMissingType:      "expression has no resolved type",
	CodegenBadIndex:         "tuple index must be a compile-time integer literal",
	CodegenUnknownField:     "selector refers to a field the struct type does not have",
	CodegenArityMismatch:    "call argument count does not match function parameter count",
	CodegenTupleLenMismatch: "tuple assignment target and source have different lengths",
	DriverInfo:              "driver info",
	DriverVerifyFailed:      "module failed verification",
	DriverAllocFailed:       "allocation failed during build",
	DriverCacheCorrupt:      "build cache entry could not be decoded",
	DriverConfigInvalid:     "build configuration is invalid",
}

// ID renders the stable string form of a code, e.g. "CG4001".
func (c Code) ID() string {
	ic := int(c)
	switch {
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("CG%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("DRV%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description registered for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
