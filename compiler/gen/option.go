package gen

import (
	"errors"
	"go/token"
	"strings"

	"go.uber.org/zap"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithDir sets the directory package patterns are resolved from.
func WithDir(dir string) Option {
	return func(c *Config) error {
		c.Dir = dir
		return nil
	}
}

// WithBuildFlags sets custom build flags for loading packages.
func WithBuildFlags(flags ...string) Option {
	return func(c *Config) error {
		c.BuildFlags = append(c.BuildFlags, flags...)
		return nil
	}
}

// WithDirective overrides the comment that marks records for generation.
func WithDirective(directive string) Option {
	return func(c *Config) error {
		if !strings.HasPrefix(directive, "//") || strings.ContainsAny(directive, " \t\n") {
			return NewConfigError("Directive", directive, "directive must be a single //-comment word")
		}
		c.Directive = directive
		return nil
	}
}

// WithTagName sets the struct tag key holding field options.
func WithTagName(name string) Option {
	return func(c *Config) error {
		if name == "" || strings.ContainsAny(name, " \t:\"`") {
			return NewConfigError("TagName", name, "tag name must be a non-empty struct tag key")
		}
		c.TagName = name
		return nil
	}
}

// WithRuntime sets the import path of the runtime package used by
// generated code. The package must declare Unset and Into compatible with
// the github.com/syssam/autobuilder package.
func WithRuntime(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Runtime", nil, "runtime import path cannot be empty")
		}
		c.Runtime = path
		return nil
	}
}

// WithFactoryName sets the name of the factory method added to records.
func WithFactoryName(name string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return NewConfigError("FactoryName", name, "factory name must be an exported Go identifier")
		}
		c.FactoryName = name
		return nil
	}
}

// WithOutputName sets the generated file name.
func WithOutputName(name string) Option {
	return func(c *Config) error {
		if !strings.HasSuffix(name, ".go") || strings.ContainsAny(name, `/\`) {
			return NewConfigError("OutputName", name, "output name must be a .go file name without directories")
		}
		if strings.HasSuffix(name, "_test.go") {
			return NewConfigError("OutputName", name, "output cannot be a test file")
		}
		c.OutputName = name
		return nil
	}
}

// WithOptionalTypes registers additional optional-value wrapper types,
// given as "import/path.Name".
func WithOptionalTypes(types ...string) Option {
	return func(c *Config) error {
		for _, t := range types {
			i := strings.LastIndex(t, ".")
			if i <= 0 || i == len(t)-1 || !token.IsIdentifier(t[i+1:]) {
				return NewConfigError("OptionalTypes", t, `expect "import/path.Name"`)
			}
		}
		c.OptionalTypes = append(c.OptionalTypes, types...)
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !c.HasFeature(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Feature", name, "unknown feature name")
			}
			if err := WithFeatures(f)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithoutFeatures disables features by name.
func WithoutFeatures(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			if _, ok := FeatureByName(name); !ok {
				return NewConfigError("Feature", name, "unknown feature name")
			}
			features := c.Features[:0]
			for _, f := range c.Features {
				if f.Name != name {
					features = append(features, f)
				}
			}
			c.Features = features
		}
		return nil
	}
}

// WithWorkers sets the number of packages generated in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithCheck switches the generator to check mode: nothing is written and
// out-of-date files are reported instead.
func WithCheck(check bool) Option {
	return func(c *Config) error {
		c.Check = check
		return nil
	}
}

// WithCachePath enables the generation manifest at path.
func WithCachePath(path string) Option {
	return func(c *Config) error {
		c.CachePath = path
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from DefaultConfig and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
