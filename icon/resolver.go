// Package icon maps logical icon references to loadable paths, backed by an
// on-disk cache populated by a best-effort prefetch.
package icon

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"

	"classlauncher/models"
)

// Resolver turns a logical icon reference (bundled name, bare filename,
// absolute path, or URL) into a concrete loadable path.
type Resolver struct {
	cacheDir      string
	appAssetsDir  string
	workAssetsDir string
}

// NewResolver creates a resolver over the given cache directory. Shipped
// assets are looked up next to the executable and under the working
// directory.
func NewResolver(cacheDir string) *Resolver {
	appAssets := "assets"
	if exe, err := os.Executable(); err == nil {
		appAssets = filepath.Join(filepath.Dir(exe), "assets")
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Resolver{
		cacheDir:      cacheDir,
		appAssetsDir:  appAssets,
		workAssetsDir: filepath.Join(wd, "assets"),
	}
}

// NewResolverWithDirs creates a resolver with explicit asset directories.
// Tests use this to point every lookup at temp dirs.
func NewResolverWithDirs(cacheDir, appAssetsDir, workAssetsDir string) *Resolver {
	return &Resolver{
		cacheDir:      cacheDir,
		appAssetsDir:  appAssetsDir,
		workAssetsDir: workAssetsDir,
	}
}

// CacheKey names the cache file for a remote icon reference: a stable hash
// of the URL string.
func CacheKey(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:]) + ".png"
}

// Resolve maps an icon reference to a loadable path, or "" when nothing
// matches and the caller should render its fallback glyph. A user-customized
// icon always wins over a shipped default with the same name: explicit and
// cached references are probed before shipped assets, and the synthesized
// bundled reference comes last.
func (r *Resolver) Resolve(iconRef string) string {
	ref := models.ParseIconRef(iconRef)
	switch ref.Kind {
	case models.IconRefEmpty:
		return ""
	case models.IconRefBundled:
		// the UI resolves bundled resources natively
		return ref.Value
	case models.IconRefURL:
		cached := filepath.Join(r.cacheDir, CacheKey(ref.Value))
		if fileExists(cached) {
			return cached
		}
		// never fetched synchronously here; prefetch is a separate step
		return ""
	case models.IconRefAbsolute:
		if fileExists(ref.Value) {
			return ref.Value
		}
		return ""
	default:
		return r.resolveNamed(ref.Value)
	}
}

func (r *Resolver) resolveNamed(name string) string {
	for _, dir := range []string{r.cacheDir, r.appAssetsDir, r.workAssetsDir} {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, name)
		if fileExists(p) {
			return p
		}
	}
	return models.BundledScheme + name
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
