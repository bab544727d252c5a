// Package config provides the test suite model for yamori and loads it from
// disk.
//
// A suite is a single file in YAML or TOML. The format is chosen by the file
// extension (.yaml, .yml or .toml, case-insensitive); any other extension is
// rejected with ErrUnsupportedFormat.
//
// # Suite Structure
//
// The TOML form:
//
//	[build]
//	release = false
//	pre_build_commands = ["cargo build {{#if release}}--release{{/if}}"]
//
//	[[tests]]
//	name = "greets"
//	command = "./target/{{#if build.release}}release{{else}}debug{{/if}}/app"
//	args = ["--name", "World"]
//	input = "optional stdin payload"
//	expected_output = "Hello, World!"
//	timeout_secs = 5
//
//	[tests.build]
//	release = true
//	pre_build_commands = ["make app"]
//
// The YAML form carries the same keys:
//
//	build:
//	  release: false
//	tests:
//	  - name: greets
//	    command: echo
//	    args: ["Hello, World!"]
//	    expected_output: "Hello, World!"
//
// # Test Fields
//
//   - name: label shown in reports, duplicates are allowed
//   - command: executable to spawn, resolved through PATH
//   - args: literal argument vector, no shell expansion
//   - input: written to stdin when present; absent means no stdin pipe
//   - expected_output: compared after trimming surrounding whitespace
//   - timeout_secs: defaults to 30
//   - build: per-test override of the global build section
//
// Commands, arguments and pre-build commands may contain the release
// markup understood by package template.
//
// # Locating the Suite
//
// ResolvePath picks the file to load: the YAMORI_CONFIG environment variable
// wins over the command line flag, and DefaultConfigPath is used when both
// are empty.
package config
