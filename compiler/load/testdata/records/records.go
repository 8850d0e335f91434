package records

import "time"

//autobuilder:generate
type Account struct {
	ID      int
	Email   string
	Owner   *string
	Created time.Time `builder:"default"`
	_       int
}

// Grouped declarations carry the directive on the spec itself.
type (
	//autobuilder:generate
	Session struct {
		Token string
		Meta
	}

	// Meta is not annotated.
	Meta struct {
		Labels map[string]string
	}
)

//autobuilder:generate
type Level int

//autobuilder:generate
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

//autobuilder:generate
type AccountAlias = Account

// Plain is skipped.
type Plain struct {
	Name string
}
