package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"yamori/pkg/logging"
)

var (
	// ErrConfigNotFound is returned when the suite file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrUnsupportedFormat is returned for extensions other than yaml, yml and toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Format names a supported suite encoding.
type Format string

const (
	FormatYAML Format = "YAML"
	FormatTOML Format = "TOML"
)

// ParseError is returned when a suite file cannot be decoded.
type ParseError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s config %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// For mocking in tests
var osReadFile = os.ReadFile

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadConfig reads and decodes the suite at path.
func LoadConfig(path string) (TestConfig, error) {
	data, err := osReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return TestConfig{}, fmt.Errorf("%w: %s. Please make sure the file exists in the specified path", ErrConfigNotFound, path)
		}
		return TestConfig{}, fmt.Errorf("error reading config from %s: %w", path, err)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return TestConfig{}, err
	}

	var cfg TestConfig
	switch format {
	case FormatYAML:
		cfg, err = decodeYAML(data)
	case FormatTOML:
		cfg, err = decodeTOML(data, path)
	}
	if err != nil {
		return TestConfig{}, &ParseError{Format: format, Path: path, Err: err}
	}

	logging.Debug("Config", "Loaded %d tests from %s (%s, release=%v)", len(cfg.Tests), path, format, cfg.Release())
	return cfg, nil
}

func decodeYAML(data []byte) (TestConfig, error) {
	var cfg TestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TestConfig{}, err
	}
	return cfg, nil
}

func decodeTOML(data []byte, path string) (TestConfig, error) {
	var cfg TestConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return TestConfig{}, err
	}
	for _, key := range md.Undecoded() {
		logging.Warn("Config", "Ignoring unknown key %q in %s", key.String(), path)
	}
	return cfg, nil
}
