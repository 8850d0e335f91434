// Package gen generates typestate builders for annotated Go struct types.
//
// For every record, the generator emits a generic builder whose type
// parameters track which fields have been set. Setting a field changes
// the builder's type, and Build only accepts the instantiation where every
// field is set, so a missing required field is a compile error rather than
// a runtime one.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Annotated declarations (//autobuilder:generate)
//	        ↓
//	   load.Load (go/packages, type-checked schemas)
//	        ↓
//	   Record / Field (validation, naming, TypeState)
//	        ↓
//	   Emitters (builder type, constructor, factory, setters, Build)
//	        ↓
//	   FileWriter (<package>_builder.go)
//
// # Key Types
//
//   - Record: A struct declaration with the names of its generated identifiers
//   - Field: A record field with its options and initial TypeState
//   - TypeState: The marker and seed value of a field in a fresh builder
//   - Config: Global configuration for code generation
//   - JenniferGenerator: Renders and writes the builders of loaded packages
//
// # Generated Code
//
// Given
//
//	//autobuilder:generate
//	type A struct {
//		X int
//		Y *int
//		Z string
//	}
//
// the generator emits
//
//	type ABuilder[TX any, TY any, TZ any] struct {
//		x TX
//		y TY
//		z TZ
//	}
//
//	func NewABuilder() ABuilder[autobuilder.Unset, *int, autobuilder.Unset]
//	func (A) Builder() ABuilder[autobuilder.Unset, *int, autobuilder.Unset]
//	func (b ABuilder[TX, TY, TZ]) SetX(v int) ABuilder[int, TY, TZ]
//	func (b ABuilder[TX, TY, TZ]) SetXFrom(v autobuilder.Into[int]) ABuilder[int, TY, TZ]
//	...
//	func BuildA(b ABuilder[int, *int, string]) A
//
// Go has no methods on a single instantiation of a generic type, so Build
// is a package-level function.
//
// # Field Options
//
// Options are given in the `builder` struct tag:
//
//   - default: the field starts out set. Its initial value comes from the
//     type's Default() method when declared, otherwise the zero value.
//
// Pointer types, database/sql Null types and configured wrapper types are
// optional and start out set to their empty value. A field that is both
// optional and default starts out empty.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: The declaration cannot have a builder
//   - AttributeError: A field option is unknown or malformed
//   - ConfigError: Configuration errors
//   - GenerationError: Rendering, formatting or writing failed
//
// Errors carry the source position and match their sentinel with
// errors.Is:
//
//	if errors.Is(err, gen.ErrInvalidSchema) {
//		// handle schema error
//	}
//
// A rejected declaration does not stop the generation of the other
// records of the package.
package gen
