package driver

import "crypto/sha256"

// Digest is a content fingerprint used as a cache key, both for the
// in-memory ModuleCache and the on-disk build cache.
type Digest [32]byte

// HashSource computes a Digest over a package's concatenated source text,
// the cache key the in-process ModuleCache and DiskCache are both keyed on.
func HashSource(content []byte) Digest {
	return Digest(sha256.Sum256(content))
}

// Combine folds dependency digests into a content digest, producing a
// single Digest that changes whenever the content or any dependency does.
// deps must be supplied in a deterministic order for the result to be
// reproducible.
func Combine(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	h.Write(content[:])
	for _, d := range deps {
		h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
