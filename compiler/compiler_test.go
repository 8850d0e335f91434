package compiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/syssam/autobuilder/compiler/gen"
)

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["go.mod"] = "module example.com/m\n\ngo 1.22\n"
	files["rt/rt.go"] = "package rt\n\ntype Unset struct{}\n\ntype Into[T any] interface{ Into() T }\n"
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

const shopSource = `package shop

//autobuilder:generate
type Order struct {
	ID    int
	Notes *string
}
`

func newConfig(t *testing.T, dir string, opts ...gen.Option) *gen.Config {
	t.Helper()
	opts = append([]gen.Option{gen.WithDir(dir), gen.WithRuntime("example.com/m/rt")}, opts...)
	return gen.MustNewConfig(opts...)
}

func TestGenerate(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"shop/shop.go":   shopSource,
		"plain/plain.go": "package plain\n\ntype T struct{}\n",
	})
	out := filepath.Join(dir, "shop", "shop_builder.go")
	ctx := context.Background()

	res, err := Generate(ctx, newConfig(t, dir), "./...")
	require.NoError(t, err)
	require.NoError(t, res.Err())
	require.Len(t, res.Packages, 1)
	assert.Equal(t, "example.com/m/shop", res.Packages[0].Path)
	assert.Equal(t, []string{"Order"}, res.Packages[0].Records)
	assert.Equal(t, 1, res.Metrics.FilesWritten)
	assert.FileExists(t, out)

	t.Run("check mode on up to date output", func(t *testing.T) {
		res, err := Generate(ctx, newConfig(t, dir, gen.WithCheck(true)), "./...")
		require.NoError(t, err)
		assert.Empty(t, res.Stale())
	})

	t.Run("check mode on stale output", func(t *testing.T) {
		require.NoError(t, os.WriteFile(out, []byte("// Code generated by autobuilder. DO NOT EDIT.\n\npackage shop\n\nfunc broken() {\n"), 0o644))

		res, err := Generate(ctx, newConfig(t, dir, gen.WithCheck(true)), "./...")
		require.NoError(t, err)
		require.Len(t, res.Stale(), 1)
		assert.NotEmpty(t, res.Stale()[0].Diff)
	})

	t.Run("broken output is regenerated", func(t *testing.T) {
		res, err := Generate(ctx, newConfig(t, dir), "./shop")
		require.NoError(t, err)
		require.Len(t, res.Packages, 1)
		assert.True(t, res.Packages[0].Changed)
	})
}

func TestGenerateTypeErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("package code calling its builders", func(t *testing.T) {
		dir := writeModule(t, map[string]string{"shop/shop.go": shopSource})
		out := filepath.Join(dir, "shop", "shop_builder.go")
		_, err := Generate(ctx, newConfig(t, dir), "./shop")
		require.NoError(t, err)

		use := "package shop\n\nfunc First() Order { return BuildOrder(NewOrderBuilder().SetID(1)) }\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "shop", "use.go"), []byte(use), 0o644))
		src := strings.Replace(shopSource, "\tNotes *string\n", "\tNotes *string\n\tQty   int `builder:\"default\"`\n", 1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "shop", "shop.go"), []byte(src), 0o644))

		res, err := Generate(ctx, newConfig(t, dir), "./shop")
		require.NoError(t, err)
		require.NoError(t, res.Err())
		require.Len(t, res.Packages, 1)
		assert.True(t, res.Packages[0].Changed)
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(b), "SetQty(v int)")

		t.Run("check mode", func(t *testing.T) {
			res, err := Generate(ctx, newConfig(t, dir, gen.WithCheck(true)), "./shop")
			require.NoError(t, err)
			require.NoError(t, res.Err())
			assert.Empty(t, res.Stale())
		})
	})

	t.Run("unrelated type errors keep the records", func(t *testing.T) {
		dir := writeModule(t, map[string]string{
			"shop/shop.go":   shopSource + "\n//autobuilder:generate\ntype Item struct{ Kind Missing }\n",
			"shop/broken.go": "package shop\n\nfunc broken() int { return \"s\" }\n",
		})

		res, err := Generate(ctx, newConfig(t, dir), "./shop")
		require.NoError(t, err)
		require.Len(t, res.Packages, 1)
		pr := res.Packages[0]
		assert.Equal(t, []string{"Order"}, pr.Records)
		require.Len(t, pr.Errors, 1)
		assert.True(t, gen.IsSchemaError(pr.Errors[0]))
		assert.Contains(t, pr.Errors[0].Error(), "Item")
		assert.FileExists(t, pr.File)
	})

	t.Run("syntax errors reject the package", func(t *testing.T) {
		dir := writeModule(t, map[string]string{
			"shop/shop.go":   shopSource,
			"shop/broken.go": "package shop\n\nfunc broken( {\n",
		})

		res, err := Generate(ctx, newConfig(t, dir), "./shop")
		require.NoError(t, err)
		require.Len(t, res.Packages, 1)
		assert.Empty(t, res.Packages[0].Records)
		assert.NotEmpty(t, res.Packages[0].Errors)
		assert.NoFileExists(t, filepath.Join(dir, "shop", "shop_builder.go"))
	})
}

func TestGenerateCache(t *testing.T) {
	dir := writeModule(t, map[string]string{"shop/shop.go": shopSource})
	src := filepath.Join(dir, "shop", "shop.go")
	out := filepath.Join(dir, "shop", "shop_builder.go")
	cachePath := filepath.Join(t.TempDir(), "cache.msgpack")
	ctx := context.Background()
	generate := func(opts ...gen.Option) *Result {
		t.Helper()
		res, err := Generate(ctx, newConfig(t, dir, append([]gen.Option{gen.WithCachePath(cachePath)}, opts...)...), "./...")
		require.NoError(t, err)
		return res
	}

	res := generate()
	require.Len(t, res.Packages, 1)
	assert.Empty(t, res.Skipped)
	assert.FileExists(t, cachePath)

	t.Run("unchanged packages are skipped", func(t *testing.T) {
		res := generate()
		assert.Empty(t, res.Packages)
		assert.ElementsMatch(t, []string{"example.com/m/shop", "example.com/m/rt"}, res.Skipped)
	})

	t.Run("settings invalidate the cache", func(t *testing.T) {
		res := generate(gen.WithoutFeatures(gen.FeatureFactory.Name))
		require.Len(t, res.Packages, 1)
		assert.True(t, res.Packages[0].Changed)
		generate()
	})

	t.Run("source changes invalidate the cache", func(t *testing.T) {
		require.NoError(t, os.WriteFile(src, []byte(shopSource+"\n//autobuilder:generate\ntype Item struct{ SKU string }\n"), 0o644))

		res := generate()
		require.Len(t, res.Packages, 1)
		assert.Equal(t, []string{"Order", "Item"}, res.Packages[0].Records)
	})

	t.Run("deleted output is regenerated", func(t *testing.T) {
		require.NoError(t, os.Remove(out))

		res := generate()
		require.Len(t, res.Packages, 1)
		assert.FileExists(t, out)
	})
}

func TestGenerateLogs(t *testing.T) {
	dir := writeModule(t, map[string]string{"shop/shop.go": shopSource})
	core, logs := observer.New(zap.InfoLevel)

	_, err := Generate(context.Background(), newConfig(t, dir, gen.WithLogger(zap.New(core))), "./shop")
	require.NoError(t, err)

	entries := logs.FilterMessage("generation finished").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].ContextMap()["written"])
}
