package basic

import (
	"database/sql"
	"time"
)

//autobuilder:generate
type A struct {
	X int
	Y *int
	Z string
}

// Greeting has a Default constructor.
type Greeting string

func (Greeting) Default() Greeting { return "hello" }

//autobuilder:generate
type Sample struct {
	Name     string
	Greeting Greeting `builder:"default"`
	Count    int      `builder:"default"`
	Note     *string  `builder:"default"`
	Nick     sql.NullString
	Timeout  time.Duration `builder:"default=false"`
}

//autobuilder:generate
type point struct {
	x, y int
}

//autobuilder:generate
type Empty struct{}

//autobuilder:generate
type Keywords struct {
	Type  string
	Range []int
	_     int
}
