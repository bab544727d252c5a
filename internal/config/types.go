package config

import (
	"math"
	"slices"
	"time"
)

// TestConfig is a whole test suite. Tests run in declaration order.
type TestConfig struct {
	Tests []TestCase   `yaml:"tests" toml:"tests" json:"tests"`
	Build *BuildConfig `yaml:"build,omitempty" toml:"build,omitempty" json:"build,omitempty"`
}

// BuildConfig selects the build mode and the shell commands that prepare
// the binaries under test.
type BuildConfig struct {
	Release          bool     `yaml:"release" toml:"release" json:"release"`
	PreBuildCommands []string `yaml:"pre_build_commands,omitempty" toml:"pre_build_commands,omitempty" json:"pre_build_commands,omitempty"`
}

// TestCase is one command invocation and the output it must produce.
type TestCase struct {
	Name           string       `yaml:"name" toml:"name" json:"name"`
	Command        string       `yaml:"command" toml:"command" json:"command"`
	Args           []string     `yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty"`
	Input          *string      `yaml:"input,omitempty" toml:"input,omitempty" json:"input,omitempty"`
	ExpectedOutput string       `yaml:"expected_output" toml:"expected_output" json:"expected_output"`
	TimeoutSecs    *uint64      `yaml:"timeout_secs,omitempty" toml:"timeout_secs,omitempty" json:"timeout_secs,omitempty"`
	Build          *BuildConfig `yaml:"build,omitempty" toml:"build,omitempty" json:"build,omitempty"`
}

// Release reports the suite-wide build mode.
func (c TestConfig) Release() bool {
	return c.Build != nil && c.Build.Release
}

// WithRelease returns a copy of the suite with the global build mode set.
// The build section is created when missing; c itself is left untouched.
func (c TestConfig) WithRelease(release bool) TestConfig {
	out := c.Clone()
	if out.Build == nil {
		out.Build = &BuildConfig{}
	}
	out.Build.Release = release
	return out
}

// Clone returns a deep copy of the suite.
func (c TestConfig) Clone() TestConfig {
	out := TestConfig{Build: c.Build.clone()}
	if c.Tests != nil {
		out.Tests = make([]TestCase, len(c.Tests))
		for i, tc := range c.Tests {
			out.Tests[i] = tc.clone()
		}
	}
	return out
}

func (b *BuildConfig) clone() *BuildConfig {
	if b == nil {
		return nil
	}
	return &BuildConfig{
		Release:          b.Release,
		PreBuildCommands: slices.Clone(b.PreBuildCommands),
	}
}

func (tc TestCase) clone() TestCase {
	out := tc
	out.Args = slices.Clone(tc.Args)
	out.Build = tc.Build.clone()
	if tc.Input != nil {
		in := *tc.Input
		out.Input = &in
	}
	if tc.TimeoutSecs != nil {
		secs := *tc.TimeoutSecs
		out.TimeoutSecs = &secs
	}
	return out
}

// Timeout returns the per-test timeout, DefaultTimeout when unset. Zero is
// kept as is; values too large for a time.Duration saturate.
func (tc TestCase) Timeout() time.Duration {
	if tc.TimeoutSecs == nil {
		return DefaultTimeout
	}
	if *tc.TimeoutSecs > maxTimeoutSecs {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(*tc.TimeoutSecs) * time.Second
}

const maxTimeoutSecs = uint64(math.MaxInt64 / int64(time.Second))

// EffectiveRelease resolves the build mode for this test: its own override
// first, then the suite-wide setting, then debug.
func (tc TestCase) EffectiveRelease(global *BuildConfig) bool {
	if tc.Build != nil {
		return tc.Build.Release
	}
	return global != nil && global.Release
}
