package gen

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"name", "Name"},
		{"userID", "UserID"},
		{"URL", "URL"},
		{"x", "X"},
		{"_x", "_x"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, pascal(tt.input))
		})
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Name", "name"},
		{"ID", "id"},
		{"URLPath", "urlPath"},
		{"X", "x"},
		{"already", "already"},
		{"UserID", "userID"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, lowerFirst(tt.input))
		})
	}
}

func TestExportAs(t *testing.T) {
	assert.Equal(t, "NewUserBuilder", exportAs("User", "NewUserBuilder"))
	assert.Equal(t, "newUserBuilder", exportAs("user", "NewUserBuilder"))
	assert.Equal(t, "BuildPoint", exportAs("Point", "buildPoint"))
}

func TestBuilderField(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Name", "name"},
		{"Type", "_type"},
		{"Func", "_func"},
		{"String", "_string"},
		{"Len", "_len"},
		{"Nil", "_nil"},
		{"count", "count"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, builderField(tt.input))
		})
	}
}

func TestNameSet(t *testing.T) {
	s := make(nameSet)
	s.add("b", "v", "v2")

	assert.True(t, s.has("b"))
	assert.False(t, s.has("x"))
	assert.Equal(t, "b2", s.fresh("b"))
	assert.Equal(t, "b3", s.fresh("b"))
	assert.Equal(t, "v3", s.fresh("v"))
	assert.Equal(t, "x", s.fresh("x"))
	assert.True(t, s.has("x"))
}

func TestTypeCode(t *testing.T) {
	pkg := types.NewPackage("example.com/shop", "shop")
	money := types.NewNamed(types.NewTypeName(token.NoPos, pkg, "Money", nil), types.Typ[types.Int64], nil)
	str := types.Typ[types.String]
	intT := types.Typ[types.Int]

	tests := []struct {
		name     string
		typ      types.Type
		expected string
	}{
		{"basic", intT, "int"},
		{"named", money, "shop.Money"},
		{"error", types.Universe.Lookup("error").Type(), "error"},
		{"pointer", types.NewPointer(money), "*shop.Money"},
		{"slice", types.NewSlice(str), "[]string"},
		{"array", types.NewArray(intT, 4), "[4]int"},
		{"map", types.NewMap(str, types.NewPointer(intT)), "map[string]*int"},
		{"chan", types.NewChan(types.SendRecv, intT), "chan int"},
		{"send chan", types.NewChan(types.SendOnly, intT), "chan<- int"},
		{"recv chan", types.NewChan(types.RecvOnly, intT), "<-chan int"},
		{"empty interface", types.NewInterfaceType(nil, nil), "any"},
		{"unsafe pointer", types.Typ[types.UnsafePointer], "unsafe.Pointer"},
		{
			"func",
			types.NewSignatureType(nil, nil, nil,
				types.NewTuple(types.NewParam(token.NoPos, nil, "", str)),
				types.NewTuple(types.NewParam(token.NoPos, nil, "", intT), types.NewParam(token.NoPos, nil, "", types.Universe.Lookup("error").Type())),
				false),
			"func(string) (int, error)",
		},
		{
			"variadic func",
			types.NewSignatureType(nil, nil, nil,
				types.NewTuple(types.NewParam(token.NoPos, nil, "", types.NewSlice(str))),
				nil, true),
			"func(...string)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := typeCode(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, render(code))
		})
	}

	t.Run("struct with tag", func(t *testing.T) {
		st := types.NewStruct([]*types.Var{
			types.NewField(token.NoPos, nil, "A", intT, false),
			types.NewField(token.NoPos, pkg, "Money", money, true),
		}, []string{`json:"a"`, ""})
		code, err := typeCode(st)
		require.NoError(t, err)
		out := render(code)
		assert.Contains(t, out, "A")
		assert.Contains(t, out, "json:")
		assert.Contains(t, out, "shop.Money")
	})

	t.Run("unsupported types", func(t *testing.T) {
		tp := types.NewTypeParam(types.NewTypeName(token.NoPos, pkg, "T", nil), types.NewInterfaceType(nil, nil))
		for _, typ := range []types.Type{
			types.Typ[types.Invalid],
			types.Typ[types.UntypedInt],
			tp,
			types.NewSlice(tp),
		} {
			_, err := typeCode(typ)
			assert.Error(t, err, typ.String())
		}
	})
}

func TestTypePackages(t *testing.T) {
	shop := types.NewPackage("example.com/shop", "shop")
	v2 := types.NewPackage("example.com/money/v2", "money")
	money := types.NewNamed(types.NewTypeName(token.NoPos, v2, "Amount", nil), types.Typ[types.Int64], nil)
	item := types.NewNamed(types.NewTypeName(token.NoPos, shop, "Item", nil), types.NewStruct(nil, nil), nil)

	pkgs := make(map[string]*types.Package)
	typePackages(types.NewMap(money, types.NewSlice(types.NewPointer(item))), pkgs)

	assert.Len(t, pkgs, 2)
	assert.Equal(t, "money", pkgs["example.com/money/v2"].Name())
	assert.Equal(t, "shop", pkgs["example.com/shop"].Name())
	assert.Equal(t, "v2", lastSegment("example.com/money/v2"))
	assert.Equal(t, "sql", lastSegment("sql"))
}
