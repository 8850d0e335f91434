package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/syssam/autobuilder/compiler/load"
)

// loadTestdata loads the package under testdata/<name>.
func loadTestdata(t *testing.T, name string) *load.Package {
	t.Helper()
	pkgs, err := load.Load(context.Background(), &load.Config{}, "./testdata/"+name)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	require.Empty(t, pkgs[0].Errors)
	return pkgs[0]
}

// findSchema returns the schema with the given name.
func findSchema(t *testing.T, pkg *load.Package, name string) *load.Schema {
	t.Helper()
	for _, s := range pkg.Schemas {
		if s.Name == name {
			return s
		}
	}
	require.FailNow(t, "schema not found", name)
	return nil
}

// newRecord derives the record of the named schema.
func newRecord(t *testing.T, c *Config, pkg *load.Package, name string) *Record {
	t.Helper()
	r, err := NewRecord(c, findSchema(t, pkg, name))
	require.NoError(t, err)
	return r
}

const testRuntime = `package rt

type Unset struct{}

type Into[T any] interface{ Into() T }
`

// newModule writes a throwaway module holding a runtime package at
// example.com/m/rt, and the given files. It returns the module root.
func newModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	all := map[string]string{
		"go.mod":   "module example.com/m\n\ngo 1.22\n",
		"rt/rt.go": testRuntime,
	}
	for name, content := range files {
		all[name] = content
	}
	for name, content := range all {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(b)
}

// render returns the Go source of a type. The type is formatted as the
// type of a variable declaration, a position where every type parses.
func render(c jen.Code) string {
	return strings.TrimPrefix(jen.Var().Id("_").Add(c).GoString(), "var _ ")
}

// renderExpr returns the Go source of an expression.
func renderExpr(c jen.Code) string {
	return strings.TrimPrefix(jen.Var().Id("_").Op("=").Add(c).GoString(), "var _ = ")
}

// field returns the field of r with the given name, or nil.
func field(r *Record, name string) *Field {
	for _, f := range r.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}
