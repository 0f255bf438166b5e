package syconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLines(t *testing.T) {
	assert.Equal(t, `["a", "b", "c"]`, evalOK(t, `"a${"\n"}b${"\n"}c".lines()`).String())
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, `"hi"`, evalOK(t, `"  hi  ".trim()`).String())
}

func TestStringUnindent(t *testing.T) {
	// Every non-blank line shares a two-space prefix; unindent removes it.
	src := "\"  a${\"\\n\"}  b${\"\\n\"}  c\".unindent()"
	assert.Equal(t, `"a\nb\nc"`, evalOK(t, src).String())
}

func TestStringUnindentCountsPastAMismatch(t *testing.T) {
	// Prefixes "\t  " and " \t " disagree at rune 0 ('\t' vs ' ') and rune 1
	// (' ' vs '\t'), then agree at rune 2 (both ' '). A true common-prefix
	// scan would stop at rune 0 and strip nothing; this algorithm keeps
	// going and counts the later match, stripping one rune from each line.
	src := "\"\t  a${\"\\n\"} \\t b\".unindent()"
	assert.Equal(t, "\"  a\\n\\t b\"", evalOK(t, src).String())
}

func TestStringUnindentMismatchedIndentation(t *testing.T) {
	// Non-blank lines indented 12, 8, and 20 spaces: sorted, the shortest (8)
	// and longest (20) prefixes are compared position-by-position over their
	// shared 8 characters, all spaces, so every position matches and the
	// computed width is 8 — not min(12, 8, 20) that a true common-prefix
	// scan over every line would give, though here they agree.
	src := "\"\n\n            abc\n        def\n                    ghk\n        \".unindent()"
	assert.Equal(t, `"\n\n    abc\ndef\n            ghk\n"`, evalOK(t, src).String())
}

func TestParseJSON(t *testing.T) {
	assert.Equal(t, "{a: 1, b: 2}", evalOK(t, `"{\"a\": 1, \"b\": 2}".parse_json()`).String())
}

func TestParseYAML(t *testing.T) {
	assert.Equal(t, "{a: 1, b: 2}", evalOK(t, `"a: 1${"\n"}b: 2".parse_yaml()`).String())
}

func TestParseTOML(t *testing.T) {
	assert.Equal(t, "{a: 1, b: 2}", evalOK(t, `"a = 1${"\n"}b = 2".parse_toml()`).String())
}
