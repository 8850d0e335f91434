// Package integration holds records whose builders are generated by
// autobuilder and checked in. Its tests exercise the generated code.
package integration

import (
	"database/sql"
	"time"
)

//go:generate go run github.com/syssam/autobuilder/cmd/autobuilder generate --no-cache .

// Point has required fields only.
//
//autobuilder:generate
type Point struct {
	X int
	Y int
}

// Triple has required fields of more than one type.
//
//autobuilder:generate
type Triple struct {
	X int
	Y int
	Z string
}

// Greeting is the salutation of an account.
type Greeting string

// Default returns the greeting of accounts that do not choose one.
func (Greeting) Default() Greeting { return "hello" }

// Account mixes required, optional and default fields.
//
//autobuilder:generate
type Account struct {
	ID       int
	Email    string
	Nickname *string
	Greeting Greeting `builder:"default"`
	Retries  int      `builder:"default"`
}

// Kelvin is an absolute temperature.
type Kelvin float64

// Celsius converts to Kelvin when passed to a From setter.
type Celsius float64

// Into returns c in Kelvin.
func (c Celsius) Into() Kelvin { return Kelvin(c + 273.15) }

//autobuilder:generate
type Reading struct {
	Sensor      string
	Temperature Kelvin
}

// Options only has fields that start out set.
//
//autobuilder:generate
type Options struct {
	Label   sql.NullString
	Timeout *time.Duration
	Limit   int     `builder:"default=true"`
	Note    *string `builder:"default"`
}

//autobuilder:generate
type pair struct {
	key, value string
}
