package syconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ankurananda/syconf/syconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetenv(t *testing.T) {
	t.Setenv("SYCONF_TEST_VAR", "hello")
	assert.Equal(t, `"hello"`, evalOK(t, `getenv("SYCONF_TEST_VAR")`).String())
}

func TestGetenvDefault(t *testing.T) {
	os.Unsetenv("SYCONF_TEST_MISSING")
	assert.Equal(t, `"fallback"`, evalOK(t, `getenv("SYCONF_TEST_MISSING", "fallback")`).String())
}

func TestGetenvMissingIsDomainError(t *testing.T) {
	os.Unsetenv("SYCONF_TEST_MISSING")
	_, err := syconf.ParseString(`getenv("SYCONF_TEST_MISSING")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi there"), 0o644))
	src := `read_file("` + path + `")`
	assert.Equal(t, `"hi there"`, evalOK(t, src).String())
}

func TestImportResolvesRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inner.sy"), []byte("21 * 2"), 0o644))
	outerPath := filepath.Join(dir, "outer.sy")
	require.NoError(t, os.WriteFile(outerPath, []byte(`import "inner.sy"`), 0o644))

	v, err := syconf.ParseFile(outerPath)
	require.NoError(t, err)
	assert.Equal(t, "42", v.String())
}

func TestMergeLastWins(t *testing.T) {
	assert.Equal(t, "{a: 3, b: 2}", evalOK(t, `merge({a: 1, b: 2}, {a: 3})`).String())
}

func TestImportCycleIsDomainError(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.sy")
	bPath := filepath.Join(dir, "b.sy")
	require.NoError(t, os.WriteFile(aPath, []byte(`import "b.sy"`), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte(`import "a.sy"`), 0o644))

	_, err := syconf.ParseFile(aPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import cycle")
}

func TestRelativeImportFromStringSourceIsDomainError(t *testing.T) {
	_, err := syconf.ParseString(`import "whatever.sy"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no file path")
}

func TestArityErrorOnUserFunction(t *testing.T) {
	_, err := syconf.ParseString(`{ let add = (a, b) => a + b; add(1) }`)
	require.Error(t, err)
}

func TestArityErrorOnBuiltin(t *testing.T) {
	_, err := syconf.ParseString(`concat()`)
	require.Error(t, err)
}
