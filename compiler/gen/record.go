package gen

import (
	"errors"
	"go/token"
	"go/types"

	"github.com/syssam/autobuilder/compiler/load"
)

// Record is a struct declaration a builder is generated for. It holds
// the names of every generated identifier, resolved against the package
// scope so the output never redeclares or shadows a user identifier.
type Record struct {
	schema *load.Schema
	// Name is the record type name.
	Name string
	// Pos is the "file:line:col" of the declaration.
	Pos string
	// Fields in declaration order. Blank fields are omitted.
	Fields []*Field
	// Builder is the generic builder type, e.g. "UserBuilder".
	Builder string
	// Constructor returns a builder in its initial state, e.g. "NewUserBuilder".
	Constructor string
	// Build finalizes a complete builder, e.g. "BuildUser".
	Build string
	// Factory is the method added to the record. Empty when disabled.
	Factory string
	// Recv and Param are the receiver and parameter names of the
	// generated methods.
	Recv, Param string

	runtime string
	from    bool
}

// NewRecord validates an annotated declaration and derives its record.
// Field errors are collected and returned together.
func NewRecord(c *Config, s *load.Schema) (*Record, error) {
	switch {
	case s.Generic:
		return nil, NewSchemaError(s.Pos, s.Name, "", "generic types are not supported", nil)
	case s.Shape == "alias":
		return nil, NewSchemaError(s.Pos, s.Name, "", "type aliases are not supported", nil)
	case !s.IsStruct():
		return nil, NewSchemaError(s.Pos, s.Name, "", "expect a struct type, got "+s.Shape, nil)
	case s.Object == nil || s.Package() == nil:
		return nil, NewSchemaError(s.Pos, s.Name, "", "missing type information", nil)
	}
	r := &Record{
		schema:      s,
		Name:        s.Name,
		Pos:         s.Pos,
		Builder:     s.Name + "Builder",
		Constructor: exportAs(s.Name, "New"+pascal(s.Name)+"Builder"),
		Build:       exportAs(s.Name, "Build"+pascal(s.Name)),
		runtime:     c.runtimePkg(),
		from:        c.HasFeature(FeatureFromSetters.Name),
	}
	scope := s.Package().Scope()
	for _, name := range r.generated() {
		if obj := scope.Lookup(name); obj != nil {
			return nil, NewSchemaError(s.Pos, s.Name, "", "generated identifier "+name+" is already declared in the package", nil)
		}
	}
	if c.HasFeature(FeatureFactory.Name) {
		r.Factory = c.factoryName()
		if obj, _, _ := types.LookupFieldOrMethod(s.Object.Type(), true, s.Package(), r.Factory); obj != nil {
			return nil, NewSchemaError(s.Pos, s.Name, "", "factory method "+r.Factory+" conflicts with a field or method of the type", nil)
		}
	}
	var errs []error
	for _, def := range s.Fields {
		if def.Name == "_" {
			continue
		}
		f, err := newField(c, r, def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Fields = append(r.Fields, f)
	}
	if err := r.assignNames(scope); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// generated returns the package-level identifiers the record adds.
func (r *Record) generated() []string {
	return []string{r.Builder, r.Constructor, r.Build}
}

// assignNames picks the setter, storage and marker names of every field,
// and the receiver and parameter names of the generated methods.
func (r *Record) assignNames(scope *types.Scope) error {
	setters := make(nameSet)
	storage := make(nameSet)
	for _, f := range r.Fields {
		f.Setter = "Set" + pascal(f.Name)
		if setters.has(f.Setter) {
			return NewSchemaError(f.def.Pos, r.Name, f.Name, "setter "+f.Setter+" conflicts with another field", nil)
		}
		setters.add(f.Setter)
		f.Storage = storage.fresh(builderField(f.Name))
	}
	if r.from {
		for _, f := range r.Fields {
			f.SetterFrom = f.Setter + "From"
			if setters.has(f.SetterFrom) {
				return NewSchemaError(f.def.Pos, r.Name, f.Name, "setter "+f.SetterFrom+" conflicts with another field", nil)
			}
			setters.add(f.SetterFrom)
		}
	}
	taken := make(nameSet)
	taken.add(scope.Names()...)
	taken.add(r.generated()...)
	taken.add(lastSegment(r.runtime))
	for _, pkg := range r.Imports() {
		taken.add(pkg.Name(), lastSegment(pkg.Path()))
	}
	for _, f := range r.Fields {
		f.Marker = taken.fresh("T" + pascal(f.Name))
	}
	r.Recv = taken.fresh("b")
	r.Param = taken.fresh("v")
	return nil
}

// Imports returns the packages referenced by the field types, keyed by
// import path. The record's own package is excluded.
func (r *Record) Imports() map[string]*types.Package {
	pkgs := make(map[string]*types.Package)
	for _, f := range r.Fields {
		typePackages(f.Type, pkgs)
	}
	delete(pkgs, r.schema.Package().Path())
	return pkgs
}

// Exported reports whether the record type is exported.
func (r *Record) Exported() bool {
	return token.IsExported(r.Name)
}

// Generic reports whether the builder type has type parameters.
func (r *Record) Generic() bool {
	return len(r.Fields) > 0
}
