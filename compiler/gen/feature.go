package gen

var (
	// FeatureFromSetters generates a Set<Field>From method next to every
	// setter. It accepts any autobuilder.Into of the field type.
	FeatureFromSetters = Feature{
		Name:        "setter/from",
		Stage:       Stable,
		Default:     true,
		Description: "Generates Set<Field>From setters that accept values convertible to the field type",
	}

	// FeatureFactory adds a Builder method to the record type itself, so a
	// builder can be requested as Record{}.Builder().
	FeatureFactory = Feature{
		Name:        "factory",
		Stage:       Stable,
		Default:     true,
		Description: "Adds a factory method returning a fresh builder to the record type",
	}

	// FeatureStrictDefault rejects `default` fields whose type has no
	// Default() constructor instead of falling back to the zero value.
	FeatureStrictDefault = Feature{
		Name:        "default/strict",
		Stage:       Experimental,
		Default:     false,
		Description: "Requires a Default() constructor on the type of every field flagged as default",
	}

	// allFeatures holds a list of all feature-flags.
	allFeatures = []Feature{
		FeatureFromSetters,
		FeatureFactory,
		FeatureStrictDefault,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are complete, but breaking changes to their output are
	// still expected.
	Alpha

	// Beta features are documented and no breaking changes are expected.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// String returns the name of the stage.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the builder codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// AllFeatures returns every known feature-flag.
func AllFeatures() []Feature {
	return append([]Feature(nil), allFeatures...)
}

// FeatureByName returns the feature-flag with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range allFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// defaultFeatures returns the features enabled when none are configured.
func defaultFeatures() []Feature {
	var fs []Feature
	for _, f := range allFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}
