package gen

import "github.com/dave/jennifer/jen"

// A builder encodes the progress of every field in one type parameter, its
// marker. The aggregate state of a builder is the product of the per-field
// states; the only state that can be finalized is the one where every
// marker is Set.

// Marker is the compile-time state of one field.
type Marker uint8

const (
	// Unset fields carry the runtime Unset type as marker.
	Unset Marker = iota
	// Set fields carry their declared type as marker.
	Set
)

// String returns the name of the marker state.
func (m Marker) String() string {
	if m == Set {
		return "set"
	}
	return "unset"
}

// Seed describes the value a fresh builder holds for a field.
type Seed uint8

const (
	// SeedPlaceholder stores the Unset placeholder of a required field.
	SeedPlaceholder Seed = iota
	// SeedEmpty stores the empty value of an optional wrapper type.
	SeedEmpty
	// SeedZero stores the zero value of a default field without constructor.
	SeedZero
	// SeedDefault stores the result of the type's Default() constructor.
	SeedDefault
)

// TypeState is the initial state of a field in a fresh builder.
// A setter call always moves the field to Set, whatever its state was.
type TypeState struct {
	Initial Marker
	Seed    Seed
}

// AssignState decides how a field starts out. Optional fields win over the
// default flag: a field that is both starts empty.
func AssignState(f *Field) TypeState {
	switch {
	case f.Optional:
		return TypeState{Initial: Set, Seed: SeedEmpty}
	case f.Default && f.DefaultCtor:
		return TypeState{Initial: Set, Seed: SeedDefault}
	case f.Default:
		return TypeState{Initial: Set, Seed: SeedZero}
	default:
		return TypeState{Initial: Unset, Seed: SeedPlaceholder}
	}
}

// InitialMarker returns the type argument of the field in a fresh builder.
func (f *Field) InitialMarker() jen.Code {
	if f.Satisfied() {
		return f.SatisfiedMarker()
	}
	return jen.Qual(f.rec.runtime, "Unset")
}

// SatisfiedMarker returns the type argument of the field once it is set.
// It is also the marker Build requires.
func (f *Field) SatisfiedMarker() jen.Code {
	return f.typ()
}

// InitialValue returns the expression stored by the constructor, or nil
// when the zero value of the marker type is the initial value.
func (f *Field) InitialValue() jen.Code {
	if f.State.Seed != SeedDefault {
		return nil
	}
	return jen.New(f.typ()).Dot("Default").Call()
}
