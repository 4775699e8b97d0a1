package expectation

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of an expectation file.
type Format uint8

// Supported formats
const (
	FormatSexpr Format = iota
	FormatTOML
	FormatYAML
)

var formatNames = map[Format]string{
	FormatSexpr: "sexpr",
	FormatTOML:  "toml",
	FormatYAML:  "yaml",
}

func (f Format) String() string {
	return formatNames[f]
}

// DetectFormat determines the format from the file extension. Anything that
// is not TOML or YAML is read as an S-expression.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatSexpr
	}
}

// Load reads the expectation stored at path.
func Load(path string) (*Expectation, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading expectation: %w", err)
	}

	exp, err := Decode(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return exp, nil
}

// Decode reads an expectation written in the given format.
func Decode(content []byte, format Format) (*Expectation, error) {
	exp := &Expectation{}

	switch format {
	case FormatSexpr:
		return Parse(content)

	case FormatTOML:
		md, err := toml.Decode(string(content), exp)
		if err != nil {
			return nil, fmt.Errorf("%w: TOML parse error: %v", ErrMalformed, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformed, undecoded[0].String())
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(exp); err != nil {
			return nil, fmt.Errorf("%w: YAML parse error: %v", ErrMalformed, err)
		}

	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}

	if err := exp.Validate(); err != nil {
		return nil, err
	}
	if exp.Defs == nil {
		exp.Defs = []string{}
	}
	return exp, nil
}
