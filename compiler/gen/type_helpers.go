package gen

import (
	"fmt"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
)

// =============================================================================
// Naming helpers
// =============================================================================

// pascal returns name with its first letter upper-cased. Initialisms are
// kept as written: "userID" becomes "UserID".
func pascal(name string) string {
	return inflect.Capitalize(name)
}

// lowerFirst lower-cases the leading run of upper-case letters of name,
// keeping the last one of a longer run when it starts a new word:
// "ID" -> "id", "URLPath" -> "urlPath", "Name" -> "name".
func lowerFirst(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return name
	case n == 1 || n == len(runes):
	default:
		if unicode.IsLower(runes[n]) {
			n--
		}
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// exportAs exports or unexports name to match the visibility of ref.
func exportAs(ref, name string) string {
	if token.IsExported(ref) {
		return pascal(name)
	}
	return lowerFirst(name)
}

// builderField returns the struct member of a field in the builder. It is
// unexported and never a Go keyword or predeclared identifier.
func builderField(name string) string {
	f := lowerFirst(name)
	if token.Lookup(f).IsKeyword() || types.Universe.Lookup(f) != nil {
		return "_" + f
	}
	return f
}

// nameSet tracks identifiers that are taken in a scope.
type nameSet map[string]struct{}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s nameSet) add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// fresh returns name, or name followed by the smallest number >= 2 that
// is not taken, and marks the result as taken.
func (s nameSet) fresh(name string) string {
	candidate := name
	for i := 2; s.has(candidate); i++ {
		candidate = name + strconv.Itoa(i)
	}
	s.add(candidate)
	return candidate
}

// =============================================================================
// Type rendering
// =============================================================================

// typeCode converts a type-checked field type into Jennifer code. Named
// types are rendered with Qual, so the generated file imports exactly the
// packages it references.
func typeCode(t types.Type) (*jen.Statement, error) {
	switch t := t.(type) {
	case *types.Basic:
		switch {
		case t.Kind() == types.Invalid:
			return nil, fmt.Errorf("invalid type")
		case t.Kind() == types.UnsafePointer:
			return jen.Qual("unsafe", "Pointer"), nil
		case t.Info()&types.IsUntyped != 0:
			return nil, fmt.Errorf("untyped type %s", t.Name())
		}
		return jen.Id(t.Name()), nil
	case *types.Alias:
		return namedCode(t.Obj(), t.TypeArgs())
	case *types.Named:
		return namedCode(t.Obj(), t.TypeArgs())
	case *types.TypeParam:
		return nil, fmt.Errorf("type parameter %s", t.Obj().Name())
	case *types.Pointer:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil
	case *types.Slice:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(elem), nil
	case *types.Array:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Index(jen.Lit(int(t.Len()))).Add(elem), nil
	case *types.Map:
		key, err := typeCode(t.Key())
		if err != nil {
			return nil, err
		}
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		return jen.Map(key).Add(elem), nil
	case *types.Chan:
		elem, err := typeCode(t.Elem())
		if err != nil {
			return nil, err
		}
		switch t.Dir() {
		case types.SendOnly:
			return jen.Chan().Op("<-").Add(elem), nil
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(elem), nil
		default:
			return jen.Chan().Add(elem), nil
		}
	case *types.Signature:
		return signatureCode(jen.Func(), t)
	case *types.Struct:
		fields := make([]jen.Code, 0, t.NumFields())
		for i := 0; i < t.NumFields(); i++ {
			v := t.Field(i)
			ft, err := typeCode(v.Type())
			if err != nil {
				return nil, err
			}
			var field *jen.Statement
			if v.Embedded() {
				field = ft
			} else {
				field = jen.Id(v.Name()).Add(ft)
			}
			if tag := t.Tag(i); tag != "" {
				field = field.Lit(tag)
			}
			fields = append(fields, field)
		}
		return jen.Struct(fields...), nil
	case *types.Interface:
		if t.Empty() {
			return jen.Any(), nil
		}
		var elems []jen.Code
		for i := 0; i < t.NumEmbeddeds(); i++ {
			et, err := typeCode(t.EmbeddedType(i))
			if err != nil {
				return nil, err
			}
			elems = append(elems, et)
		}
		for i := 0; i < t.NumExplicitMethods(); i++ {
			m := t.ExplicitMethod(i)
			mc, err := signatureCode(jen.Id(m.Name()), m.Type().(*types.Signature))
			if err != nil {
				return nil, err
			}
			elems = append(elems, mc)
		}
		return jen.Interface(elems...), nil
	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

// namedCode renders a (possibly instantiated) named type or alias.
func namedCode(obj *types.TypeName, args *types.TypeList) (*jen.Statement, error) {
	var s *jen.Statement
	if obj.Pkg() == nil {
		// Predeclared: error, comparable, any.
		s = jen.Id(obj.Name())
	} else {
		s = jen.Qual(obj.Pkg().Path(), obj.Name())
	}
	if args.Len() == 0 {
		return s, nil
	}
	codes := make([]jen.Code, 0, args.Len())
	for i := 0; i < args.Len(); i++ {
		c, err := typeCode(args.At(i))
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return s.Types(codes...), nil
}

// signatureCode appends the parameters and results of sig to s.
func signatureCode(s *jen.Statement, sig *types.Signature) (*jen.Statement, error) {
	tuple := func(tup *types.Tuple, variadic bool) ([]jen.Code, error) {
		codes := make([]jen.Code, 0, tup.Len())
		for i := 0; i < tup.Len(); i++ {
			v := tup.At(i)
			var (
				c   *jen.Statement
				err error
			)
			if variadic && i == tup.Len()-1 {
				var elem *jen.Statement
				elem, err = typeCode(v.Type().(*types.Slice).Elem())
				c = jen.Op("...").Add(elem)
			} else {
				c, err = typeCode(v.Type())
			}
			if err != nil {
				return nil, err
			}
			codes = append(codes, c)
		}
		return codes, nil
	}
	params, err := tuple(sig.Params(), sig.Variadic())
	if err != nil {
		return nil, err
	}
	results, err := tuple(sig.Results(), false)
	if err != nil {
		return nil, err
	}
	s = s.Params(params...)
	switch len(results) {
	case 0:
	case 1:
		s = s.Add(results[0])
	default:
		s = s.Params(results...)
	}
	return s, nil
}

// typePackages collects the packages referenced by t, keyed by import
// path, so generated identifiers can avoid shadowing their import names.
func typePackages(t types.Type, pkgs map[string]*types.Package) {
	var walk func(types.Type)
	seen := make(map[types.Type]bool)
	walk = func(t types.Type) {
		if t == nil || seen[t] {
			return
		}
		seen[t] = true
		switch t := t.(type) {
		case *types.Named:
			if pkg := t.Obj().Pkg(); pkg != nil {
				pkgs[pkg.Path()] = pkg
			}
			for i := 0; i < t.TypeArgs().Len(); i++ {
				walk(t.TypeArgs().At(i))
			}
		case *types.Alias:
			if pkg := t.Obj().Pkg(); pkg != nil {
				pkgs[pkg.Path()] = pkg
			}
			for i := 0; i < t.TypeArgs().Len(); i++ {
				walk(t.TypeArgs().At(i))
			}
		case *types.Pointer:
			walk(t.Elem())
		case *types.Slice:
			walk(t.Elem())
		case *types.Array:
			walk(t.Elem())
		case *types.Chan:
			walk(t.Elem())
		case *types.Map:
			walk(t.Key())
			walk(t.Elem())
		case *types.Signature:
			for i := 0; i < t.Params().Len(); i++ {
				walk(t.Params().At(i).Type())
			}
			for i := 0; i < t.Results().Len(); i++ {
				walk(t.Results().At(i).Type())
			}
		case *types.Struct:
			for i := 0; i < t.NumFields(); i++ {
				walk(t.Field(i).Type())
			}
		case *types.Interface:
			for i := 0; i < t.NumEmbeddeds(); i++ {
				walk(t.EmbeddedType(i))
			}
			for i := 0; i < t.NumExplicitMethods(); i++ {
				walk(t.ExplicitMethod(i).Type())
			}
		}
	}
	walk(t)
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
