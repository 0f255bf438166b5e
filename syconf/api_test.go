package syconf_test

import (
	"testing"

	"github.com/ankurananda/syconf/syconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalOK(t *testing.T, src string) syconf.Value {
	t.Helper()
	v, err := syconf.ParseString(src)
	require.NoError(t, err)
	return v
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "true", evalOK(t, "true").String())
	assert.Equal(t, "42", evalOK(t, "42").String())
	assert.Equal(t, `"hi"`, evalOK(t, `"hi"`).String())
}

func TestArithmeticAndComparison(t *testing.T) {
	assert.Equal(t, "7", evalOK(t, "3 + 4").String())
	assert.Equal(t, "12", evalOK(t, "3 * 4").String())
	assert.Equal(t, "true", evalOK(t, "10 > 3").String())
	assert.Equal(t, "false", evalOK(t, "10 <= 3").String())
}

func TestDivisionByZero(t *testing.T) {
	_, err := syconf.ParseString("1 / 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestStringInterpolation(t *testing.T) {
	assert.Equal(t, `"Name: Ada, Age: 42"`, evalOK(t, `"Name: ${"Ada"}, Age: ${42}"`).String())
}

func TestNestedInterpolation(t *testing.T) {
	assert.Equal(t, `"outer[inner]"`, evalOK(t, `"outer${"[inner]"}"`).String())
}

func TestListAndObjectLiterals(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", evalOK(t, "[1, 2, 3]").String())
	assert.Equal(t, `{x: 1, y: 2}`, evalOK(t, `{x: 1, y: 2}`).String())
}

func TestObjectLastKeyWins(t *testing.T) {
	assert.Equal(t, `{x: 2}`, evalOK(t, `{x: 1, x: 2}`).String())
}

func TestBlockBindings(t *testing.T) {
	assert.Equal(t, "30", evalOK(t, "{ let x = 10; let y = 20; x + y }").String())
}

func TestLetBoundNameInInterpolation(t *testing.T) {
	assert.Equal(t, `"Name: mike"`, evalOK(t, `{ let name = "mike"; "Name: ${name}" }`).String())
}

func TestBlockShadowsOuter(t *testing.T) {
	assert.Equal(t, "2", evalOK(t, "{ let x = 1; { let x = 2; x } }").String())
}

func TestConditional(t *testing.T) {
	assert.Equal(t, "1", evalOK(t, "if true then 1 else 2").String())
	assert.Equal(t, "2", evalOK(t, "if false then 1 else 2").String())
}

func TestLogicalShortCircuit(t *testing.T) {
	// The right-hand side, if evaluated, would divide by zero; short-circuit
	// means it never runs.
	assert.Equal(t, "false", evalOK(t, "false and (1 / 0 = 1)").String())
	assert.Equal(t, "true", evalOK(t, "true or (1 / 0 = 1)").String())
}

func TestFunctionCall(t *testing.T) {
	assert.Equal(t, "7", evalOK(t, "{ let add = (a, b) => a + b; add(3, 4) }").String())
}

func TestZeroArgCallOnNonFuncCoercesToTheValue(t *testing.T) {
	assert.Equal(t, "5", evalOK(t, "{ let x = 5; x() }").String())
}

func TestNonZeroArgCallOnNonFuncIsTypeError(t *testing.T) {
	_, err := syconf.ParseString("{ let x = 5; x(1) }")
	require.Error(t, err)
}

func TestRecursiveFactorial(t *testing.T) {
	src := `{
		let fact = (n) => if n <= 1 then 1 else n * fact(n - 1);
		fact(5)
	}`
	assert.Equal(t, "120", evalOK(t, src).String())
}

func TestDotFieldAndIndex(t *testing.T) {
	assert.Equal(t, "1", evalOK(t, `{x: 1, y: 2}.x`).String())
	assert.Equal(t, "2", evalOK(t, `[1, 2, 3][1]`).String())
}

func TestStringMethodChain(t *testing.T) {
	assert.Equal(t, "true", evalOK(t, `"hello world".contains("world")`).String())
	assert.Equal(t, "true", evalOK(t, `"hello".starts_with("he")`).String())
	assert.Equal(t, "true", evalOK(t, `"hello".ends_with("lo")`).String())
}

func TestListMapFilter(t *testing.T) {
	assert.Equal(t, "[2, 4, 6]", evalOK(t, "[1, 2, 3].map((x) => x * 2)").String())
	assert.Equal(t, "[2]", evalOK(t, "[1, 2, 3].filter((x) => x % 2 = 0)").String())
}

func TestFoldAndMerge(t *testing.T) {
	assert.Equal(t, "6", evalOK(t, "fold(0, (acc, ix, x) => acc + x, [1, 2, 3])").String())
	assert.Equal(t, "6", evalOK(t, "fold(0, (acc, k, v) => acc + v, {a: 1, b: 2, c: 3})").String())
	assert.Equal(t, "{a: 1, b: 2}", evalOK(t, `merge({a: 1}, {b: 2})`).String())
	assert.Equal(t, `{age: 40, name: "alexei"}`, evalOK(t, `merge([{name: "john"}, {name: "alexei"}, {age: 40}])`).String())
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "[1, 2, 3, 4]", evalOK(t, "concat([1, 2], [3, 4])").String())
}

func TestUndefinedIdentifierIsCompileError(t *testing.T) {
	_, err := syconf.ParseString("undefined_name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined identifier")
}

func TestMissingMapKeyIsDomainError(t *testing.T) {
	_, err := syconf.ParseString(`{a: 1}.b`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing key")
}

func TestTypeErrorOnWrongOperand(t *testing.T) {
	_, err := syconf.ParseString(`1 + "x"`)
	require.Error(t, err)
}

func TestInterpolatingAListIsTypeError(t *testing.T) {
	_, err := syconf.ParseString(`"${[1, 2]}"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type error")
}
