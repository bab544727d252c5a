// Package template resolves the build-mode markup allowed inside commands,
// arguments and pre-build commands.
//
// Two forms are recognised:
//
//	{{#if release}}--release{{/if}}
//	{{#if build.release}}release{{else}}debug{{/if}}
//
// The first keeps its content only in release mode. The second keeps exactly
// one branch. A string holds occurrences of one form only; the form whose
// start token appears first is the one resolved. Markup is never nested.
package template

import "strings"

const (
	releaseStart      = "{{#if release}}"
	buildReleaseStart = "{{#if build.release}}"
	elseToken         = "{{else}}"
	endToken          = "{{/if}}"
)

// Render resolves the conditional markup in tmpl for the given build mode.
// An opening token without its closing token leaves the rest of the string
// untouched from that token on.
func Render(tmpl string, release bool) string {
	single := strings.Index(tmpl, releaseStart)
	ifElse := strings.Index(tmpl, buildReleaseStart)

	switch {
	case single < 0 && ifElse < 0:
		return tmpl
	case ifElse < 0 || (single >= 0 && single < ifElse):
		return renderSingle(tmpl, release)
	default:
		return renderIfElse(tmpl, release)
	}
}

// HasMarkup reports whether s contains a conditional start token.
func HasMarkup(s string) bool {
	return strings.Contains(s, releaseStart) || strings.Contains(s, buildReleaseStart)
}

// RenderAll applies Render to every element and returns a new slice.
// A nil input yields nil.
func RenderAll(tmpls []string, release bool) []string {
	if tmpls == nil {
		return nil
	}
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = Render(t, release)
	}
	return out
}

func renderSingle(tmpl string, release bool) string {
	var b strings.Builder
	rest := tmpl
	for {
		start := strings.Index(rest, releaseStart)
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:start])

		body := rest[start+len(releaseStart):]
		end := strings.Index(body, endToken)
		if end < 0 {
			b.WriteString(rest[start:])
			return b.String()
		}
		if release {
			b.WriteString(body[:end])
		}
		rest = body[end+len(endToken):]
	}
}

func renderIfElse(tmpl string, release bool) string {
	var b strings.Builder
	rest := tmpl
	for {
		start := strings.Index(rest, buildReleaseStart)
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:start])

		body := rest[start+len(buildReleaseStart):]
		elseAt := strings.Index(body, elseToken)
		if elseAt < 0 {
			b.WriteString(rest[start:])
			return b.String()
		}
		afterElse := body[elseAt+len(elseToken):]
		end := strings.Index(afterElse, endToken)
		if end < 0 {
			b.WriteString(rest[start:])
			return b.String()
		}

		if release {
			b.WriteString(body[:elseAt])
		} else {
			b.WriteString(afterElse[:end])
		}
		rest = afterElse[end+len(endToken):]
	}
}
