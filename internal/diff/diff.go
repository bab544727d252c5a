// Package diff compares expected and actual command output.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Tag classifies a line of an edit script.
type Tag int

const (
	// Equal lines appear in both texts.
	Equal Tag = iota
	// Delete lines appear only in the expected text.
	Delete
	// Insert lines appear only in the actual text.
	Insert
)

func (t Tag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Sign is the one-character marker used when printing a line.
func (t Tag) Sign() string {
	switch t {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

func (t Tag) MarshalText() ([]byte, error) {
	switch t {
	case Equal, Delete, Insert:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("invalid diff tag %d", int(t))
}

func (t *Tag) UnmarshalText(b []byte) error {
	switch string(b) {
	case "equal":
		*t = Equal
	case "delete":
		*t = Delete
	case "insert":
		*t = Insert
	default:
		return fmt.Errorf("invalid diff tag %q", string(b))
	}
	return nil
}

// Line is one entry of an edit script. Content carries no line terminator.
type Line struct {
	Tag     Tag    `json:"tag"`
	Content string `json:"content"`
}

// String renders the line as "<sign> <content>".
func (l Line) String() string {
	return l.Tag.Sign() + " " + l.Content
}

// Compare reports whether the two outputs match once leading and trailing
// whitespace is removed from each.
func Compare(expected, actual string) bool {
	return strings.TrimSpace(expected) == strings.TrimSpace(actual)
}

// Lines computes a line-oriented edit script turning expected into actual.
// Equal lines are kept; inside a replaced block deletions come first.
func Lines(expected, actual string) []Line {
	a := splitLines(expected)
	b := splitLines(actual)

	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)
	var out []Line
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			out = appendLines(out, Equal, a[op.I1:op.I2])
		case 'd':
			out = appendLines(out, Delete, a[op.I1:op.I2])
		case 'i':
			out = appendLines(out, Insert, b[op.J1:op.J2])
		case 'r':
			out = appendLines(out, Delete, a[op.I1:op.I2])
			out = appendLines(out, Insert, b[op.J1:op.J2])
		}
	}
	return out
}

func appendLines(out []Line, tag Tag, lines []string) []Line {
	for _, l := range lines {
		out = append(out, Line{Tag: tag, Content: l})
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Summary counts the lines of an edit script by tag.
type Summary struct {
	Inserts int
	Deletes int
	Equal   int
}

// Changed reports whether the script contains any insert or delete.
func (s Summary) Changed() bool {
	return s.Inserts > 0 || s.Deletes > 0
}

func (s Summary) String() string {
	return fmt.Sprintf("+%d -%d", s.Inserts, s.Deletes)
}

// Stats counts the lines of an edit script.
func Stats(lines []Line) Summary {
	var s Summary
	for _, l := range lines {
		switch l.Tag {
		case Insert:
			s.Inserts++
		case Delete:
			s.Deletes++
		default:
			s.Equal++
		}
	}
	return s
}

// Format renders an edit script one line per entry. Equal lines are only
// included when withEqual is set.
func Format(lines []Line, withEqual bool) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Tag == Equal && !withEqual {
			continue
		}
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
