package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cogen/internal/ast"
	"cogen/internal/diag"
)

// PackageBuildResult is one package's outcome from BuildPackages.
type PackageBuildResult struct {
	Name   string
	IRText string
	Bag    *diag.Bag
	Err    error
}

// BuildPackages builds every package concurrently, each with its own
// BuildContext, Interner and Builder (spec §5: "each build uses its own IR
// context and its own arena allocator; the builder holds no process-wide
// mutable state"), bounded to jobs concurrent builds. A zero or negative
// jobs uses GOMAXPROCS. Results preserve the input order regardless of
// completion order.
func BuildPackages(ctx context.Context, pkgs []*ast.Package, jobs int, maxDiagnostics int, mcache *ModuleCache, dcache *DiskCache) ([]PackageBuildResult, error) {
	if len(pkgs) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]PackageBuildResult, len(pkgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(pkgs)))

	for i, pkg := range pkgs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = buildOnePackage(pkg, maxDiagnostics, mcache, dcache)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func buildOnePackage(pkg *ast.Package, maxDiagnostics int, mcache *ModuleCache, dcache *DiskCache) PackageBuildResult {
	digest := digestPackage(pkg)

	if mcache != nil {
		if irText, broken, hit := mcache.Get(pkg.Name, digest); hit {
			return PackageBuildResult{Name: pkg.Name, IRText: irText, Bag: diag.NewBag(maxDiagnostics), Err: brokenErr(broken)}
		}
	}
	if dcache != nil {
		var payload CachePayload
		if hit, err := dcache.Get(digest, &payload); err == nil && hit && payload.Name == pkg.Name {
			if mcache != nil {
				mcache.Put(pkg.Name, digest, payload.IRText, payload.Broken)
			}
			return PackageBuildResult{Name: pkg.Name, IRText: payload.IRText, Bag: diag.NewBag(maxDiagnostics), Err: brokenErr(payload.Broken)}
		}
	}

	bag := diag.NewBag(maxDiagnostics)
	bctx := NewBuildContext(256, &diag.BagReporter{Bag: bag})
	mod, err := BuildPackage(bctx, pkg)

	var irText string
	if mod != nil {
		irText = mod.String()
	}
	broken := err != nil || bag.HasErrors()

	if mcache != nil {
		mcache.Put(pkg.Name, digest, irText, broken)
	}
	if dcache != nil {
		_ = dcache.Put(digest, &CachePayload{
			Schema: diskCacheSchemaVersion,
			Name:   pkg.Name,
			Digest: digest,
			IRText: irText,
			Broken: broken,
		})
	}

	return PackageBuildResult{Name: pkg.Name, IRText: irText, Bag: bag, Err: err}
}

func brokenErr(broken bool) error {
	if !broken {
		return nil
	}
	return errBrokenCacheHit
}

var errBrokenCacheHit = &cacheError{"cached build previously failed verification or reported errors"}

type cacheError struct{ msg string }

func (e *cacheError) Error() string { return e.msg }

// digestPackage computes a content digest over a package's declaration
// count and file names, the cheapest signal available without access to
// raw source bytes (those live in the external parse/resolve stage; spec
// §1 treats parsing as a collaborator, so the core never re-reads source
// text itself).
func digestPackage(pkg *ast.Package) Digest {
	var buf []byte
	buf = append(buf, pkg.Name...)
	for _, f := range pkg.Files {
		buf = append(buf, '\n')
		buf = append(buf, f.Name...)
		buf = append(buf, byte(len(f.Decls)))
	}
	return HashSource(buf)
}
