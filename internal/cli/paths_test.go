package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/casegen/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"xdg", "/tmp/xdg-cache", filepath.Join("/tmp/xdg-cache", appName)},
		{"home fallback", "", filepath.Join(home, ".cache", appName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv("XDG_CACHE_HOME", tt.xdg)

			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewCacheFallsBackWhenDirUnusable(t *testing.T) {
	// A regular file where the cache root should be.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CACHE_HOME", blocker)

	c := New(io.Discard, LogInfo).newCache(false)
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newCache with an unusable dir = %T, want *cache.NullCache", c)
	}
}
