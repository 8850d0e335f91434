package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderBasic(t *testing.T, opts ...Option) string {
	t.Helper()
	g := NewJenniferGenerator(MustNewConfig(opts...))
	src, errs, err := g.Source(loadTestdata(t, "basic"))
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, src)
	return string(src)
}

func TestGenBuilder(t *testing.T) {
	src := renderBasic(t)

	t.Run("header and imports", func(t *testing.T) {
		assert.Contains(t, src, "// Code generated by autobuilder. DO NOT EDIT.\n")
		assert.Contains(t, src, "package basic")
		assert.Contains(t, src, `"github.com/syssam/autobuilder"`)
		assert.Contains(t, src, `"database/sql"`)
		assert.Contains(t, src, `"time"`)
	})

	t.Run("builder struct", func(t *testing.T) {
		assert.Contains(t, src, "type ABuilder[TX any, TY any, TZ any] struct {\n\tx TX\n\ty TY\n\tz TZ\n}")
		assert.Contains(t, src, "type EmptyBuilder struct{}")
	})

	t.Run("constructor", func(t *testing.T) {
		assert.Contains(t, src, "func NewABuilder() ABuilder[autobuilder.Unset, *int, autobuilder.Unset] {")
		assert.Contains(t, src, "return ABuilder[autobuilder.Unset, *int, autobuilder.Unset]{}")
		assert.Contains(t, src, "func NewEmptyBuilder() EmptyBuilder {")
		assert.Contains(t, src, "func newPointBuilder() pointBuilder[autobuilder.Unset, autobuilder.Unset] {")
	})

	t.Run("default values", func(t *testing.T) {
		assert.Contains(t, src, "SampleBuilder[autobuilder.Unset, Greeting, int, *string, sql.NullString, autobuilder.Unset]")
		assert.Contains(t, src, "return SampleBuilder[autobuilder.Unset, Greeting, int, *string, sql.NullString, autobuilder.Unset]{greeting: new(Greeting).Default()}")
	})

	t.Run("factory", func(t *testing.T) {
		assert.Contains(t, src, "func (A) Builder() ABuilder[autobuilder.Unset, *int, autobuilder.Unset] {\n\treturn NewABuilder()\n}")
		assert.Contains(t, src, "func (point) Builder() pointBuilder[autobuilder.Unset, autobuilder.Unset] {")
	})

	t.Run("setters", func(t *testing.T) {
		assert.Contains(t, src, "func (b ABuilder[TX, TY, TZ]) SetX(v int) ABuilder[int, TY, TZ] {")
		assert.Contains(t, src, "func (b ABuilder[TX, TY, TZ]) SetY(v *int) ABuilder[TX, *int, TZ] {")
		assert.Contains(t, src, "x: v")
		assert.Contains(t, src, "y: b.y")
		assert.Contains(t, src, "func (b KeywordsBuilder[TType, TRange]) SetType(v string) KeywordsBuilder[string, TRange] {")
		assert.Contains(t, src, "_type: v")
	})

	t.Run("from setters", func(t *testing.T) {
		assert.Contains(t, src, "func (b ABuilder[TX, TY, TZ]) SetXFrom(v autobuilder.Into[int]) ABuilder[int, TY, TZ] {\n\treturn b.SetX(v.Into())\n}")
		assert.Contains(t, src, "SetTimeoutFrom(v autobuilder.Into[time.Duration])")
	})

	t.Run("build", func(t *testing.T) {
		assert.Contains(t, src, "func BuildA(b ABuilder[int, *int, string]) A {")
		assert.Contains(t, src, "return A{X: b.x, Y: b.y, Z: b.z}")
		assert.Contains(t, src, "func BuildEmpty(b EmptyBuilder) Empty {\n\treturn Empty{}\n}")
		assert.Contains(t, src, "func buildPoint(b pointBuilder[int, int]) point {")
		assert.Contains(t, src, "func BuildSample(b SampleBuilder[string, Greeting, int, *string, sql.NullString, time.Duration]) Sample {")
	})
}

func TestGenBuilderOptions(t *testing.T) {
	t.Run("without factory and from setters", func(t *testing.T) {
		src := renderBasic(t, WithoutFeatures(FeatureFactory.Name, FeatureFromSetters.Name))

		assert.NotContains(t, src, ") Builder()")
		assert.NotContains(t, src, "From(")
		assert.Contains(t, src, "func BuildA(")
	})

	t.Run("custom factory, runtime and header", func(t *testing.T) {
		src := renderBasic(t,
			WithFactoryName("NewBuilder"),
			WithRuntime("example.com/rt"),
			WithHeader("Code generated by test. DO NOT EDIT."),
		)

		assert.Contains(t, src, "// Code generated by test. DO NOT EDIT.\n")
		assert.Contains(t, src, "func (A) NewBuilder() ABuilder[rt.Unset, *int, rt.Unset] {")
		assert.Contains(t, src, `"example.com/rt"`)
		assert.NotContains(t, src, "github.com/syssam/autobuilder")
	})
}
