package driver

import (
	"fmt"

	"cogen/internal/diag"
	"cogen/internal/irbuilder"
	"cogen/internal/source"
)

// VerifyModule is a stand-in for the real LLVM module verifier, which is an
// external collaborator the core hands its text IR to (spec §4.3). It
// checks the one invariant the builder itself cannot enforce without
// panicking: every block must end in exactly one terminator (spec
// invariant 1, "Terminator completeness"). A verification failure reports
// a diagnostic naming the offending function and block names. The module's
// IR text is not attached (Module.String panics on an unterminated block),
// and cmd/cogen prints only the diagnostic's severity, code and message.
func VerifyModule(mod *irbuilder.Module, diags diag.Reporter) error {
	var bad []string
	for _, f := range mod.Funcs {
		if f.Decl {
			continue
		}
		for _, bb := range f.Blocks {
			if !bb.Terminated() {
				bad = append(bad, fmt.Sprintf("%s/%s", f.Name, bb.Label))
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}
	msg := fmt.Sprintf("module %q failed verification: unterminated blocks %v", mod.SourceFilename, bad)
	if diags != nil {
		diags.Report(diag.DriverVerifyFailed, diag.SevError, source.Span{}, msg, nil, nil)
	}
	return fmt.Errorf("%s", msg)
}
