package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/syssam/autobuilder/compiler/load"
)

const useSource = `package use

import "example.com/m/basic"

func Complete() basic.A {
	return basic.BuildA(basic.NewABuilder().SetZ("z").SetX(1))
}

func Factory() basic.A {
	return basic.BuildA(basic.A{}.Builder().SetX(1).SetZ("z").SetY(nil))
}

func Defaults() basic.Sample {
	return basic.BuildSample(basic.NewSampleBuilder().SetName("n").SetTimeout(1))
}

func Keywords() basic.Keywords {
	return basic.BuildKeywords(basic.NewKeywordsBuilder().SetType("t").SetRange(nil))
}

func Empty() basic.Empty {
	return basic.BuildEmpty(basic.NewEmptyBuilder())
}
`

// generateModule runs the generator on the basic package of a module
// created by newModule.
func generateModule(t *testing.T, dir string, opts ...Option) *Result {
	t.Helper()
	opts = append([]Option{WithRuntime("example.com/m/rt")}, opts...)
	c := MustNewConfig(opts...)
	pkgs, err := load.Load(context.Background(), &load.Config{
		Dir:  dir,
		Mask: []string{c.OutputFile("basic")},
	}, "./basic")
	require.NoError(t, err)
	res, err := NewJenniferGenerator(c).Generate(context.Background(), pkgs)
	require.NoError(t, err)
	return res
}

// typeErrors type-checks the packages of the module at dir.
func typeErrors(t *testing.T, dir string, overlay map[string][]byte, patterns ...string) []string {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedSyntax,
		Dir:     dir,
		Overlay: overlay,
	}, patterns...)
	require.NoError(t, err)
	var errs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
	})
	return errs
}

func TestGenerate(t *testing.T) {
	dir := newModule(t, map[string]string{
		"basic/basic.go": readTestdata(t, "basic/basic.go"),
		"use/use.go":     useSource,
	})
	out := filepath.Join(dir, "basic", "basic_builder.go")

	res := generateModule(t, dir)
	require.NoError(t, res.Err())
	require.Len(t, res.Packages, 1)
	pr := res.Packages[0]
	assert.Equal(t, "example.com/m/basic", pr.Path)
	assert.Equal(t, out, pr.File)
	assert.Equal(t, []string{"A", "Sample", "point", "Empty", "Keywords"}, pr.Records)
	assert.True(t, pr.Changed)
	require.FileExists(t, out)

	t.Run("generated code compiles", func(t *testing.T) {
		assert.Empty(t, typeErrors(t, dir, nil, "./..."))
	})

	t.Run("incomplete builder does not compile", func(t *testing.T) {
		bad := filepath.Join(dir, "use", "bad.go")
		errs := typeErrors(t, dir, map[string][]byte{
			bad: []byte("package use\n\nimport \"example.com/m/basic\"\n\nfunc Bad() basic.A {\n\treturn basic.BuildA(basic.NewABuilder().SetX(1))\n}\n"),
		}, "./use")
		require.NotEmpty(t, errs)
		assert.Contains(t, strings.Join(errs, "\n"), "bad.go")
	})

	t.Run("regenerating is idempotent", func(t *testing.T) {
		before, err := os.ReadFile(out)
		require.NoError(t, err)

		res := generateModule(t, dir)
		require.Len(t, res.Packages, 1)
		assert.False(t, res.Packages[0].Changed)
		assert.Empty(t, res.Stale())

		after, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("check mode reports stale output", func(t *testing.T) {
		src := filepath.Join(dir, "basic", "basic.go")
		orig, err := os.ReadFile(src)
		require.NoError(t, err)
		changed := strings.Replace(string(orig), "\tZ string\n", "\tZ string\n\tW bool\n", 1)
		require.NoError(t, os.WriteFile(src, []byte(changed), 0o644))
		t.Cleanup(func() { _ = os.WriteFile(src, orig, 0o644) })
		before, err := os.ReadFile(out)
		require.NoError(t, err)

		res := generateModule(t, dir, WithCheck(true))
		stale := res.Stale()
		require.Len(t, stale, 1)
		assert.Contains(t, stale[0].Diff, "SetW")

		after, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})
}

func TestGenerateRemovesOutput(t *testing.T) {
	dir := newModule(t, map[string]string{
		"basic/basic.go": "package basic\n\n//autobuilder:generate\ntype A struct {\n\tX int\n}\n",
	})
	out := filepath.Join(dir, "basic", "basic_builder.go")
	res := generateModule(t, dir)
	require.Len(t, res.Packages, 1)
	require.FileExists(t, out)

	t.Run("stale output of a broken package is masked", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "basic", "basic.go"), []byte("package basic\n\n//autobuilder:generate\ntype B struct {\n\tY int\n}\n"), 0o644))

		res := generateModule(t, dir)
		require.NoError(t, res.Err())
		require.Len(t, res.Packages, 1)
		assert.Equal(t, []string{"B"}, res.Packages[0].Records)
		assert.True(t, res.Packages[0].Changed)
	})

	t.Run("package without records", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "basic", "basic.go"), []byte("package basic\n\ntype A struct {\n\tX int\n}\n"), 0o644))

		res := generateModule(t, dir)
		require.Len(t, res.Packages, 1)
		assert.True(t, res.Packages[0].Removed)
		assert.NoFileExists(t, out)

		res = generateModule(t, dir)
		assert.Empty(t, res.Packages)
	})
}

func TestGenerateDiagnostics(t *testing.T) {
	dir := newModule(t, map[string]string{
		"basic/basic.go": `package basic

//autobuilder:generate
type Number int

//autobuilder:generate
type A struct {
	X int ` + "`builder:\"nope\"`" + `
}

//autobuilder:generate
type B struct {
	Y int
}
`,
	})

	res := generateModule(t, dir)
	require.Len(t, res.Packages, 1)
	pr := res.Packages[0]
	assert.Equal(t, []string{"B"}, pr.Records)
	require.Len(t, pr.Errors, 2)
	err := res.Err()
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.True(t, IsAttributeError(err))
	assert.Contains(t, err.Error(), "basic.go:4:6")
	assert.FileExists(t, pr.File)
}

func BenchmarkGenerate(b *testing.B) {
	pkgs, err := load.Load(context.Background(), &load.Config{}, "./testdata/basic")
	if err != nil {
		b.Fatal(err)
	}
	g := NewJenniferGenerator(DefaultConfig())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := g.Source(pkgs[0]); err != nil {
			b.Fatal(err)
		}
	}
}
