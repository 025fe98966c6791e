package constraint

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/casegen/pkg/errors"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Parse decodes a constraint set from data in the given format.
// Decoding failures are reported with code INVALID_FORMAT.
func Parse(data []byte, format string) (*Set, error) {
	s := NewSet()
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON constraints")
		}
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return s, nil
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode YAML constraints")
		}
	case FormatTOML:
		if err := parseTOML(data, s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML constraints")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported constraints format %q", format)
	}
	return s, nil
}

// parseTOML decodes top-level tables into s. The TOML metadata lists keys in
// document order, which is how the field order is recovered.
func parseTOML(data []byte, s *Set) error {
	var raw map[string]Constraint
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		if c, ok := raw[key[0]]; ok {
			s.Put(key[0], c)
		}
	}
	return nil
}

// Load reads a constraint file, choosing the decoder from its extension.
func Load(path string) (*Set, error) {
	format, err := errors.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "constraints file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Parse(data, format)
}
