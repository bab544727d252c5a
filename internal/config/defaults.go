package config

import (
	"os"
	"time"
)

const (
	// DefaultConfigPath is loaded when neither the flag nor the environment
	// names a suite.
	DefaultConfigPath = "tests/configs/tests.toml"

	// EnvConfigPath overrides the suite path given on the command line.
	EnvConfigPath = "YAMORI_CONFIG"

	// DefaultTimeout bounds a test without timeout_secs.
	DefaultTimeout = 30 * time.Second
)

// For mocking in tests
var osLookupEnv = os.LookupEnv

// ResolvePath returns the suite file to load given the value of the config
// flag.
func ResolvePath(flagValue string) string {
	if env, ok := osLookupEnv(EnvConfigPath); ok && env != "" {
		return env
	}
	if flagValue != "" {
		return flagValue
	}
	return DefaultConfigPath
}
