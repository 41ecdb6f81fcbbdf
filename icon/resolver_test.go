package icon

import (
	"os"
	"path/filepath"
	"testing"

	"classlauncher/models"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func newTestResolver(t *testing.T) (*Resolver, string, string, string) {
	t.Helper()
	cacheDir := t.TempDir()
	appAssets := t.TempDir()
	workAssets := t.TempDir()
	return NewResolverWithDirs(cacheDir, appAssets, workAssets), cacheDir, appAssets, workAssets
}

func TestResolveEmpty(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	if got := r.Resolve(""); got != "" {
		t.Errorf("empty ref should resolve to nothing, got %q", got)
	}
	if got := r.Resolve("   "); got != "" {
		t.Errorf("blank ref should resolve to nothing, got %q", got)
	}
}

func TestResolveBundledPassthrough(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	ref := models.BundledScheme + "icon_random.png"
	if got := r.Resolve(ref); got != ref {
		t.Errorf("bundled ref should pass through, got %q", got)
	}
}

func TestResolveURLUsesCacheOnly(t *testing.T) {
	r, cacheDir, _, _ := newTestResolver(t)
	url := "http://example.com/a.png"

	// Nothing cached: no fetch happens during resolve.
	if got := r.Resolve(url); got != "" {
		t.Errorf("uncached URL should resolve to nothing, got %q", got)
	}

	cached := filepath.Join(cacheDir, CacheKey(url))
	touch(t, cached)
	if got := r.Resolve(url); got != cached {
		t.Errorf("cached URL should resolve to %q, got %q", cached, got)
	}
}

func TestResolveAbsolutePath(t *testing.T) {
	r, _, _, _ := newTestResolver(t)

	existing := filepath.Join(t.TempDir(), "mine.png")
	touch(t, existing)
	if got := r.Resolve(existing); got != existing {
		t.Errorf("existing absolute path should resolve to itself, got %q", got)
	}

	if got := r.Resolve("/definitely/not/there.png"); got != "" {
		t.Errorf("missing absolute path should resolve to nothing, got %q", got)
	}
}

func TestResolveNamedPrefersUserAssets(t *testing.T) {
	r, cacheDir, appAssets, workAssets := newTestResolver(t)

	// Present only in the working-directory assets.
	touch(t, filepath.Join(workAssets, "a.png"))
	if got, want := r.Resolve("a.png"), filepath.Join(workAssets, "a.png"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Shipped assets beat working directory.
	touch(t, filepath.Join(appAssets, "a.png"))
	if got, want := r.Resolve("a.png"), filepath.Join(appAssets, "a.png"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Cache beats both: a user-customized icon wins over a shipped default
	// with the same name.
	touch(t, filepath.Join(cacheDir, "a.png"))
	if got, want := r.Resolve("a.png"), filepath.Join(cacheDir, "a.png"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveNamedFallsBackToBundled(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	if got, want := r.Resolve("missing.png"), models.BundledScheme+"missing.png"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCacheKeyIsStable(t *testing.T) {
	url := "https://example.com/icon.png"
	if CacheKey(url) != CacheKey(url) {
		t.Error("cache key should be deterministic")
	}
	if CacheKey(url) == CacheKey(url+"?v=2") {
		t.Error("different URLs should get different keys")
	}
}
