// Package autobuilder is the runtime support imported by generated builders.
//
// Generated code encodes the state of every record field in the type
// parameters of its builder. A field that still has to be supplied carries
// the Unset marker; once its setter runs, the marker becomes the field's own
// declared type. The generated Build function only accepts the instantiation
// in which every marker is a declared type, so forgetting a required setter is
// a compile error rather than a runtime failure:
//
//	//autobuilder:generate
//	type Point struct {
//		X, Y int
//		Label *string
//	}
//
//	p := BuildPoint(Point{}.Builder().SetX(1).SetY(2)) // ok, Label is optional
//	q := BuildPoint(Point{}.Builder().SetX(1))         // does not compile
//
// See the compiler/gen package for the generator itself.
package autobuilder

// Unset is the marker of a field that has not been set yet. It is also the
// placeholder value stored for that field; no Build function accepts a
// builder that still holds one.
type Unset struct{}

// Into is implemented by values that can be converted into T.
// Generated Set<Field>From methods accept an Into of the field's type.
type Into[T any] interface {
	Into() T
}

// IntoFunc adapts a function to the Into interface.
type IntoFunc[T any] func() T

// Into calls f.
func (f IntoFunc[T]) Into() T { return f() }

// Value returns an Into that yields v unchanged.
func Value[T any](v T) Into[T] {
	return IntoFunc[T](func() T { return v })
}
