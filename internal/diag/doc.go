// Package diag defines the diagnostic model used by the IR builder and driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     codegen-time user errors (spec §7 "User errors") without forcing the
//     builder to know how they are rendered.
//   - Offer light-weight utilities (Reporter, Bag) that let the builder emit
//     diagnostics without coupling to concrete storage or formatting.
//   - Model fix suggestions as structured edits for parity with the rest of
//     the corpus, even though the codegen core itself never proposes fixes.
//
// # Scope
//
// Package diag performs no formatting or IO; rendering lives in the CLI
// (cmd/cogen), which colorizes diagnostics with fatih/color.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// The builder constructs a ReportBuilder via NewReportBuilder (or the helper
// functions ReportError/ReportWarning/ReportInfo) and calls Emit. When no
// additional metadata is needed it may call Reporter.Report(...) directly.
// diag.BagReporter aggregates diagnostics into a Bag, which supports sorting,
// deduplication, filtering, and transformation. `cogen build` creates one Bag
// and passes a BagReporter over it to driver.BuildPackage; driver.BuildPackages
// creates one Bag per package and returns it in that package's result.
package diag
