package cmd

import (
	"bytes"
	"testing"

	"github.com/ankurananda/syconf/syconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderValueJSON(t *testing.T) {
	v, err := syconf.ParseString(`{a: 1, b: [true, "x"]}`)
	require.NoError(t, err)
	out, err := renderValue(v, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1, "b": [true, "x"]}`, out)
}

func TestRenderValueText(t *testing.T) {
	v, err := syconf.ParseString(`{a: 1}`)
	require.NoError(t, err)
	out, err := renderValue(v, "text")
	require.NoError(t, err)
	assert.Equal(t, `{a: 1}`, out)
}

func TestRenderValueUnknownFormat(t *testing.T) {
	v, err := syconf.ParseString(`1`)
	require.NoError(t, err)
	_, err = renderValue(v, "xml")
	require.Error(t, err)
}

func TestRunEvalRequiresFileOrExpr(t *testing.T) {
	exprFlag = ""
	root := New()
	root.SetArgs([]string{"eval"})
	root.SetOut(&bytes.Buffer{})
	err := root.Execute()
	require.Error(t, err)
}

func TestRunEvalExpr(t *testing.T) {
	var out bytes.Buffer
	root := New()
	root.SetArgs([]string{"eval", "-e", "1 + 2"})
	root.SetOut(&out)
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "3")
}
