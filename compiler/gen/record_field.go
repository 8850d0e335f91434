package gen

import (
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/autobuilder/compiler/load"
)

// Field holds the information of one record field used by the emitters.
type Field struct {
	rec *Record
	def *load.Field
	// Name is the field name in the record.
	Name string
	// Type is the declared type of the field.
	Type types.Type
	// Marker is the type parameter tracking the field state.
	Marker string
	// Storage is the builder struct member holding the value.
	Storage string
	// Setter and SetterFrom are the setter method names.
	Setter, SetterFrom string
	// Optional indicates the declared type is an optional-value wrapper.
	Optional bool
	// Default indicates the field was flagged with the default option.
	Default bool
	// DefaultCtor indicates the type declares a Default() constructor.
	DefaultCtor bool
	// State is the initial type state of the field.
	State TypeState
}

// newField creates a field from its loaded definition. Marker and storage
// names are assigned later by the record, which knows every field.
func newField(c *Config, r *Record, def *load.Field) (*Field, error) {
	f := &Field{
		rec:  r,
		def:  def,
		Name: def.Name,
		Type: def.Type,
	}
	if _, err := typeCode(def.Type); err != nil {
		return nil, NewSchemaError(def.Pos, r.Name, f.Name, "unsupported field type", err)
	}
	if err := f.parseTag(c); err != nil {
		return nil, err
	}
	f.Optional = isOptional(c, def.Type)
	f.DefaultCtor = hasDefaultCtor(def.Type)
	if f.Default && !f.Optional && !f.DefaultCtor && c.HasFeature(FeatureStrictDefault.Name) {
		return nil, NewAttributeError(def.Pos, r.Name, f.Name, "default", "type "+types.TypeString(def.Type, nil)+" has no Default() constructor", nil)
	}
	f.State = AssignState(f)
	return f, nil
}

// parseTag reads the field options from the builder struct tag.
//
//	`builder:"default"`
//	`builder:"default=false"`
func (f *Field) parseTag(c *Config) error {
	tag, ok := reflect.StructTag(f.def.Tag).Lookup(c.tagName())
	if !ok {
		return nil
	}
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, value, hasValue := strings.Cut(opt, "=")
		switch key = strings.TrimSpace(key); key {
		case "default":
			if !hasValue {
				f.Default = true
				continue
			}
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return NewAttributeError(f.def.Pos, f.rec.Name, f.Name, key, "expect a boolean value", err)
			}
			f.Default = b
		default:
			return NewAttributeError(f.def.Pos, f.rec.Name, f.Name, key, "unknown option", nil)
		}
	}
	return nil
}

// Satisfied reports whether the field needs no setter call before Build.
func (f *Field) Satisfied() bool {
	return f.State.Initial == Set
}

// typ returns the Jennifer code of the declared type. The type was
// validated by newField.
func (f *Field) typ() *jen.Statement {
	c, err := typeCode(f.Type)
	if err != nil {
		panic("autobuilder: field " + f.Name + ": " + err.Error())
	}
	return c
}

// isOptional reports whether t is an optional-value wrapper: a pointer, a
// database/sql Null type or one of the configured wrapper types.
func isOptional(c *Config, t types.Type) bool {
	if _, ok := t.Underlying().(*types.Pointer); ok {
		if _, named := types.Unalias(t).(*types.Named); !named {
			return true
		}
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	obj := named.Origin().Obj()
	path := obj.Pkg().Path()
	if path == "database/sql" && strings.HasPrefix(obj.Name(), "Null") {
		return true
	}
	full := path + "." + obj.Name()
	for _, o := range c.OptionalTypes {
		if o == full {
			return true
		}
	}
	return false
}

// hasDefaultCtor reports whether T has a method Default() T callable on
// new(T).
func hasDefaultCtor(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	if _, isIface := named.Underlying().(*types.Interface); isIface {
		return false
	}
	sel := types.NewMethodSet(types.NewPointer(named)).Lookup(nil, "Default")
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	return types.Identical(sig.Results().At(0).Type(), t)
}
