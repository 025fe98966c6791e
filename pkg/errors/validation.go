package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied file path for safety.
// It rejects empty paths, paths containing control characters or null bytes,
// and overly long paths. Relative and absolute paths are both accepted since
// the CLI operates on the caller's own filesystem.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputDir validates a directory that generated files are written
// into. In addition to the ValidatePath rules it refuses the filesystem root.
func ValidateOutputDir(dir string) error {
	if err := ValidatePath(dir); err != nil {
		return err
	}
	if clean := filepath.Clean(dir); clean == string(filepath.Separator) {
		return New(ErrCodeInvalidPath, "refusing to write into the filesystem root")
	}
	return nil
}

// supportedExts maps constraint file extensions to their format name.
var supportedExts = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
}

// FormatFromPath returns the constraint file format implied by the
// extension of path ("json", "yaml" or "toml").
func FormatFromPath(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := supportedExts[ext]
	if !ok {
		return "", New(ErrCodeInvalidFormat, "unsupported constraints file extension %q (want .json, .yaml, .yml or .toml)", ext)
	}
	return format, nil
}
