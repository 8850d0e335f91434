package gen

import (
	"github.com/dave/jennifer/jen"
)

// genRecord appends the builder of r to f: the builder type, its
// constructor, the optional factory method, the setters and the Build
// function.
func genRecord(f *jen.File, r *Record) {
	genBuilderStruct(f, r)
	genConstructor(f, r)
	if r.Factory != "" {
		genFactory(f, r)
	}
	for _, fd := range r.Fields {
		genSetter(f, r, fd)
		if fd.SetterFrom != "" {
			genSetterFrom(f, r, fd)
		}
	}
	genBuild(f, r)
}

// builderType returns the builder type instantiated with the given
// markers. A record without fields has a non-generic builder.
func builderType(r *Record, markers func(*Field) jen.Code) *jen.Statement {
	s := jen.Id(r.Builder)
	if !r.Generic() {
		return s
	}
	return s.TypesFunc(func(g *jen.Group) {
		for _, fd := range r.Fields {
			g.Add(markers(fd))
		}
	})
}

// genericMarker is the marker of a field inside the builder methods.
func genericMarker(fd *Field) jen.Code { return jen.Id(fd.Marker) }

func initialMarker(fd *Field) jen.Code { return fd.InitialMarker() }

func satisfiedMarker(fd *Field) jen.Code { return fd.SatisfiedMarker() }

// genBuilderStruct generates the builder type. Every field is stored in a
// member typed by its marker, so the zero value of a fresh builder is the
// Unset placeholder for required fields.
//
//	type UserBuilder[TName, TEmail any] struct {
//		name  TName
//		email TEmail
//	}
func genBuilderStruct(f *jen.File, r *Record) {
	f.Line()
	f.Commentf("%s builds %s values. Its type arguments record which fields", r.Builder, r.Name)
	f.Comment("have been set; only a builder with every field set can be built.")
	s := f.Type().Id(r.Builder)
	if r.Generic() {
		s.TypesFunc(func(g *jen.Group) {
			for _, fd := range r.Fields {
				g.Id(fd.Marker).Any()
			}
		})
	}
	s.StructFunc(func(g *jen.Group) {
		for _, fd := range r.Fields {
			g.Id(fd.Storage).Id(fd.Marker)
		}
	})
}

// genConstructor generates the function returning a builder in its
// initial state. Only fields seeded by a Default() constructor need an
// explicit value.
func genConstructor(f *jen.File, r *Record) {
	f.Line()
	f.Commentf("%s returns a builder with no required field set.", r.Constructor)
	f.Func().Id(r.Constructor).Params().Add(builderType(r, initialMarker)).Block(
		jen.Return(builderType(r, initialMarker).ValuesFunc(func(g *jen.Group) {
			for _, fd := range r.Fields {
				if v := fd.InitialValue(); v != nil {
					g.Id(fd.Storage).Op(":").Add(v)
				}
			}
		})),
	)
}

// genFactory generates the method requesting a builder from the record.
func genFactory(f *jen.File, r *Record) {
	f.Line()
	f.Commentf("%s returns a new %s. It is equivalent to %s().", r.Factory, r.Builder, r.Constructor)
	f.Func().Params(jen.Id(r.Name)).Id(r.Factory).Params().Add(builderType(r, initialMarker)).Block(
		jen.Return(jen.Id(r.Constructor).Call()),
	)
}

// genSetter generates the setter of fd. It accepts a builder in any state
// and returns one with fd's marker replaced by the field type.
func genSetter(f *jen.File, r *Record, fd *Field) {
	result := func(x *Field) jen.Code {
		if x == fd {
			return x.SatisfiedMarker()
		}
		return genericMarker(x)
	}
	f.Line()
	f.Commentf("%s sets the %s field.", fd.Setter, fd.Name)
	f.Func().Params(jen.Id(r.Recv).Add(builderType(r, genericMarker))).
		Id(fd.Setter).Params(jen.Id(r.Param).Add(fd.typ())).
		Add(builderType(r, result)).
		Block(
			jen.Return(builderType(r, result).ValuesFunc(func(g *jen.Group) {
				for _, x := range r.Fields {
					if x == fd {
						g.Id(x.Storage).Op(":").Id(r.Param)
					} else {
						g.Id(x.Storage).Op(":").Id(r.Recv).Dot(x.Storage)
					}
				}
			})),
		)
}

// genSetterFrom generates the setter of fd that converts its argument.
func genSetterFrom(f *jen.File, r *Record, fd *Field) {
	result := func(x *Field) jen.Code {
		if x == fd {
			return x.SatisfiedMarker()
		}
		return genericMarker(x)
	}
	f.Line()
	f.Commentf("%s sets the %s field from a value convertible to its type.", fd.SetterFrom, fd.Name)
	f.Func().Params(jen.Id(r.Recv).Add(builderType(r, genericMarker))).
		Id(fd.SetterFrom).Params(jen.Id(r.Param).Qual(r.runtime, "Into").Types(fd.typ())).
		Add(builderType(r, result)).
		Block(
			jen.Return(jen.Id(r.Recv).Dot(fd.Setter).Call(jen.Id(r.Param).Dot("Into").Call())),
		)
}

// genBuild generates the function finalizing a builder. It only accepts
// the instantiation where every marker is the field type, so building an
// incomplete builder does not compile.
func genBuild(f *jen.File, r *Record) {
	f.Line()
	f.Commentf("%s returns the %s held by a builder with every field set.", r.Build, r.Name)
	f.Func().Id(r.Build).Params(jen.Id(r.Recv).Add(builderType(r, satisfiedMarker))).Id(r.Name).Block(
		jen.Return(jen.Id(r.Name).ValuesFunc(func(g *jen.Group) {
			for _, fd := range r.Fields {
				g.Id(fd.Name).Op(":").Id(r.Recv).Dot(fd.Storage)
			}
		})),
	)
}
