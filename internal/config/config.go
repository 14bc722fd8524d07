// Package config loads finder parameters from TOML or YAML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
	"gopkg.in/inf.v0"
	"gopkg.in/yaml.v3"

	"github.com/govalues/findzero"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// Format is a configuration file format.
type Format int

const (
	FormatAuto Format = iota // detect the format from the file extension
	FormatTOML
	FormatYAML
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the parameters of a [findzero.Finder].
// Margin is kept as a string so that it is never converted through float64.
type Config struct {
	MaxIterations int    `toml:"max_iterations" yaml:"max_iterations"`
	Margin        string `toml:"margin" yaml:"margin"`
	Scale         int32  `toml:"scale" yaml:"scale"`
}

// Default returns the parameters of [findzero.Default].
func Default() Config {
	f := findzero.Default()
	return Config{
		MaxIterations: f.MaxIterations(),
		Margin:        f.Margin().String(),
		Scale:         int32(f.Scale()),
	}
}

// Load reads the file at path, detecting the format from its extension.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat is like [Load] but uses the given format.
func LoadFormat(path string, format Format) (_ Config, err error) {
	defer Error.WrapP(&err)

	if strings.TrimSpace(path) == "" {
		return Config{}, Error.New("empty path")
	}
	if format == FormatAuto {
		format, err = detect(path)
		if err != nil {
			return Config{}, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(data, format)
}

// Decode parses data in the given format on top of the defaults.
// FormatAuto is not accepted.
func Decode(data []byte, format Format) (_ Config, err error) {
	defer Error.WrapP(&err)

	c := Default()
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &c)
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	default:
		return Config{}, Error.New("unsupported format %v", format)
	}
	if err != nil {
		return Config{}, err
	}
	return c, nil
}

func detect(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, Error.New("unknown file extension %q", ext)
	}
}

// Finder returns a finder with the parameters of c.
func (c Config) Finder() (findzero.Finder, error) {
	margin, err := findzero.Parse(c.Margin)
	if err != nil {
		return findzero.Finder{}, Error.New("margin: %v", err)
	}
	return findzero.New(c.MaxIterations, margin, inf.Scale(c.Scale)), nil
}
