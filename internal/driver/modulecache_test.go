package driver

import "testing"

func TestModuleCacheMissThenHit(t *testing.T) {
	mc := NewModuleCache(4)
	digest := HashSource([]byte("pkg source"))

	if _, _, ok := mc.Get("pkg", digest); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	mc.Put("pkg", digest, "define void @f() {\n}\n", false)

	irText, broken, ok := mc.Get("pkg", digest)
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if broken {
		t.Error("entry should not be marked broken")
	}
	if irText == "" {
		t.Error("expected non-empty cached IR text")
	}
}

func TestModuleCacheStaleDigestMisses(t *testing.T) {
	mc := NewModuleCache(4)
	mc.Put("pkg", HashSource([]byte("v1")), "ir-v1", false)

	if _, _, ok := mc.Get("pkg", HashSource([]byte("v2"))); ok {
		t.Fatal("a changed digest should not hit the old entry")
	}
}

func TestModuleCacheBrokenFlagSurvivesRoundTrip(t *testing.T) {
	mc := NewModuleCache(4)
	digest := HashSource([]byte("pkg"))
	mc.Put("pkg", digest, "", true)

	_, broken, ok := mc.Get("pkg", digest)
	if !ok || !broken {
		t.Fatalf("got (ok=%v, broken=%v), want (true, true)", ok, broken)
	}
}
