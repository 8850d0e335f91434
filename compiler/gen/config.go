package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const (
	// defaultHeader is the first line of every generated file.
	defaultHeader = "Code generated by autobuilder. DO NOT EDIT."

	// DefaultTagName is the struct tag key holding field directives.
	DefaultTagName = "builder"

	// DefaultRuntime is the import path of the package generated code depends on.
	DefaultRuntime = "github.com/syssam/autobuilder"

	// DefaultFactoryName is the name of the factory method added to records.
	DefaultFactoryName = "Builder"

	// outputSuffix is appended to the package name to form the output file name.
	outputSuffix = "_builder.go"
)

// Config holds the global codegen configuration shared by all records.
type Config struct {
	// Header is the comment placed at the top of every generated file.
	Header string

	// Dir is the directory package patterns are resolved from.
	Dir string

	// BuildFlags are passed to the package loader.
	BuildFlags []string

	// Directive marks the type declarations to generate builders for.
	// Empty means load.Directive.
	Directive string

	// TagName is the struct tag key carrying field options, e.g. `builder:"default"`.
	TagName string

	// Runtime is the import path providing the Unset marker and the Into
	// conversion capability.
	Runtime string

	// FactoryName is the name of the method added to the record type.
	FactoryName string

	// OutputName is the generated file name. Empty means "<package>_builder.go".
	OutputName string

	// OptionalTypes lists additional optional-value wrapper types, as
	// "import/path.Name". Pointer types and the database/sql Null types are
	// always optional.
	OptionalTypes []string

	// Features are the enabled feature-flags.
	Features []Feature

	// Workers bounds the number of packages generated concurrently.
	Workers int

	// Check compares the output with the files on disk instead of writing it.
	Check bool

	// CachePath is the generation manifest location. Empty disables caching.
	CachePath string

	// Logger receives progress and diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with every setting at its default value.
func DefaultConfig() *Config {
	return &Config{
		Header:      defaultHeader,
		TagName:     DefaultTagName,
		Runtime:     DefaultRuntime,
		FactoryName: DefaultFactoryName,
		Features:    defaultFeatures(),
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the emitters and the driver.
func (c Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Feature", name, "unknown feature name")
	}
	return c.HasFeature(name), nil
}

// HasFeature reports if the feature name is in the enabled list.
func (c Config) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	return false
}

// OutputFile returns the generated file name for the given package name.
func (c Config) OutputFile(pkgName string) string {
	if c.OutputName != "" {
		return c.OutputName
	}
	return pkgName + outputSuffix
}

// Log returns the configured logger, or a no-op logger.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// tagName returns the configured struct tag key.
func (c Config) tagName() string {
	if c.TagName == "" {
		return DefaultTagName
	}
	return c.TagName
}

// runtimePkg returns the configured runtime import path.
func (c Config) runtimePkg() string {
	if c.Runtime == "" {
		return DefaultRuntime
	}
	return c.Runtime
}

// header returns the configured file header.
func (c Config) header() string {
	if c.Header == "" {
		return defaultHeader
	}
	return c.Header
}

// factoryName returns the configured factory method name.
func (c Config) factoryName() string {
	if c.FactoryName == "" {
		return DefaultFactoryName
	}
	return c.FactoryName
}

// Fingerprint identifies the settings that change generated output.
// Two configs with the same fingerprint render identical files.
func (c Config) Fingerprint() string {
	features := make([]string, 0, len(c.Features))
	for _, f := range c.Features {
		features = append(features, f.Name)
	}
	slices.Sort(features)
	optional := slices.Clone(c.OptionalTypes)
	slices.Sort(optional)
	h := sha256.New()
	fmt.Fprintf(h, "header=%s\ntag=%s\nruntime=%s\nfactory=%s\noutput=%s\ndirective=%s\n",
		c.header(), c.tagName(), c.runtimePkg(), c.factoryName(), c.OutputName, c.Directive)
	fmt.Fprintf(h, "features=%s\noptional=%s\n", strings.Join(features, ","), strings.Join(optional, ","))
	return hex.EncodeToString(h.Sum(nil))
}
