package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		release bool
		want    string
	}{
		{
			name:    "no markup is returned unchanged",
			tmpl:    "cargo build",
			release: true,
			want:    "cargo build",
		},
		{
			name:    "single branch kept in release",
			tmpl:    "cargo build {{#if release}}--release{{/if}}",
			release: true,
			want:    "cargo build --release",
		},
		{
			name:    "single branch dropped in debug",
			tmpl:    "cargo build {{#if release}}--release{{/if}}",
			release: false,
			want:    "cargo build ",
		},
		{
			name:    "single branch with trailing text",
			tmpl:    "a{{#if release}}B{{/if}}c",
			release: false,
			want:    "ac",
		},
		{
			name:    "every single branch occurrence is resolved",
			tmpl:    "{{#if release}}x{{/if}}-{{#if release}}y{{/if}}",
			release: true,
			want:    "x-y",
		},
		{
			name:    "single branch without end copies the remainder",
			tmpl:    "run {{#if release}}--release",
			release: true,
			want:    "run {{#if release}}--release",
		},
		{
			name:    "if else picks release branch",
			tmpl:    "./target/{{#if build.release}}release{{else}}debug{{/if}}/app",
			release: true,
			want:    "./target/release/app",
		},
		{
			name:    "if else picks debug branch",
			tmpl:    "./target/{{#if build.release}}release{{else}}debug{{/if}}/app",
			release: false,
			want:    "./target/debug/app",
		},
		{
			name:    "if else without else copies the remainder",
			tmpl:    "x {{#if build.release}}release{{/if}}",
			release: true,
			want:    "x {{#if build.release}}release{{/if}}",
		},
		{
			name:    "if else without end copies the remainder",
			tmpl:    "x {{#if build.release}}release{{else}}debug",
			release: false,
			want:    "x {{#if build.release}}release{{else}}debug",
		},
		{
			name:    "empty branches",
			tmpl:    "{{#if build.release}}{{else}}{{/if}}",
			release: true,
			want:    "",
		},
		{
			name:    "leftmost form wins",
			tmpl:    "{{#if build.release}}r{{else}}d{{/if}}",
			release: false,
			want:    "d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.tmpl, tt.release))
		})
	}
}

func TestRender_SingleBranchContentPresence(t *testing.T) {
	tmpl := "prefix {{#if release}}RELEASE_ONLY{{/if}} suffix"

	assert.Contains(t, Render(tmpl, true), "RELEASE_ONLY")
	assert.NotContains(t, Render(tmpl, false), "RELEASE_ONLY")
	assert.NotContains(t, Render(tmpl, false), "{{")
}

func TestRender_IfElseExactlyOneBranch(t *testing.T) {
	tmpl := "{{#if build.release}}OPT{{else}}DBG{{/if}}"

	for _, release := range []bool{true, false} {
		out := Render(tmpl, release)
		hasOpt := strings.Contains(out, "OPT")
		hasDbg := strings.Contains(out, "DBG")
		assert.True(t, hasOpt != hasDbg, "release=%v produced %q", release, out)
		assert.Equal(t, release, hasOpt)
	}
}

func TestRender_Idempotent(t *testing.T) {
	tmpls := []string{
		"plain",
		"a {{#if release}}b{{/if}} c",
		"{{#if build.release}}x{{else}}y{{/if}}",
		"dangling {{#if release}}never closed",
		"dangling {{#if build.release}}no else{{/if}}",
		"",
	}
	for _, tmpl := range tmpls {
		for _, release := range []bool{true, false} {
			once := Render(tmpl, release)
			assert.Equal(t, once, Render(once, release), "template %q release=%v", tmpl, release)
		}
	}
}

func TestHasMarkup(t *testing.T) {
	assert.True(t, HasMarkup("{{#if release}}x{{/if}}"))
	assert.True(t, HasMarkup("{{#if build.release}}x{{else}}y{{/if}}"))
	assert.False(t, HasMarkup("{{release}}"))
}

func TestRenderAll(t *testing.T) {
	assert.Nil(t, RenderAll(nil, true))

	in := []string{"-v", "{{#if release}}-O{{/if}}"}
	out := RenderAll(in, false)
	assert.Equal(t, []string{"-v", ""}, out)
	assert.Equal(t, "{{#if release}}-O{{/if}}", in[1], "input must not be modified")
}
