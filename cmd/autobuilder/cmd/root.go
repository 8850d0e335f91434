// Package cmd implements the autobuilder command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/syssam/autobuilder/compiler/cache"
	"github.com/syssam/autobuilder/compiler/gen"
	"github.com/syssam/autobuilder/internal/logger"
)

// Flag and configuration keys. The same names are used in the config file
// and, upper-cased with an AUTOBUILDER_ prefix, in the environment.
const (
	keyConfig         = "config"
	keyDir            = "dir"
	keyTag            = "tag"
	keyOutput         = "output"
	keyRuntime        = "runtime"
	keyFactory        = "factory"
	keyFeature        = "feature"
	keyDisableFeature = "disable-feature"
	keyOptional       = "optional"
	keyDirective      = "directive"
	keyBuildFlags     = "build-flags"
	keyWorkers        = "workers"
	keyNoCache        = "no-cache"
	keyCachePath      = "cache-path"
	keyVerbose        = "verbose"
	keyJSON           = "json"
)

const (
	envPrefix         = "AUTOBUILDER"
	defaultConfigName = ".autobuilder"
)

// New returns the root command. Each call returns an independent command
// tree with its own configuration.
func New() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "autobuilder",
		Short: "Generate typestate builders for Go structs",
		Long: `autobuilder generates compile-time checked builders for struct types
marked with the //autobuilder:generate directive.

A builder tracks which fields were set in its type parameters, so a call to
Build<Name> on a builder missing a required field does not compile.

Examples:
  autobuilder generate ./...          # Generate builders for every package
  autobuilder check ./...             # Fail when generated files are stale
  autobuilder watch ./internal/...    # Regenerate on source changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "Config file (default: .autobuilder.yaml in the working directory)")
	flags.StringP(keyDir, "C", "", "Directory package patterns are resolved from")
	flags.String(keyTag, gen.DefaultTagName, "Struct tag key holding field options")
	flags.StringP(keyOutput, "o", "", "Generated file name (default: <package>_builder.go)")
	flags.String(keyRuntime, gen.DefaultRuntime, "Import path of the runtime package used by generated code")
	flags.String(keyFactory, gen.DefaultFactoryName, "Name of the factory method added to records")
	flags.StringSlice(keyFeature, nil, "Enable features by name")
	flags.StringSlice(keyDisableFeature, nil, "Disable features by name")
	flags.StringSlice(keyOptional, nil, `Additional optional wrapper types, as "import/path.Name"`)
	flags.String(keyDirective, "", "Directive marking the types to generate builders for")
	flags.StringSlice(keyBuildFlags, nil, "Build flags passed to the package loader")
	flags.Int(keyWorkers, 0, "Packages generated in parallel (default: GOMAXPROCS)")
	flags.Bool(keyNoCache, false, "Regenerate every package, ignoring the generation cache")
	flags.String(keyCachePath, "", "Generation cache location (default: user cache directory)")
	flags.CountP(keyVerbose, "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.Bool(keyJSON, false, "Log in JSON")

	root.AddCommand(
		newGenerateCmd(v),
		newCheckCmd(v),
		newWatchCmd(v),
		newPrintCmd(v),
		newFeaturesCmd(),
	)
	return root
}

// initConfig binds the flags of cmd and reads the config file, if any.
// Precedence: flags > environment > config file > defaults.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		dir := v.GetString(keyDir)
		if dir == "" {
			dir = "."
		}
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// newLogger builds the logger of a command from the verbosity settings.
func newLogger(v *viper.Viper, cmd *cobra.Command) *zap.Logger {
	return logger.New(logger.Options{
		Verbosity: v.GetInt(keyVerbose),
		JSON:      v.GetBool(keyJSON),
		Output:    cmd.ErrOrStderr(),
	})
}

// newConfig translates the bound settings into a generator config.
func newConfig(v *viper.Viper, log *zap.Logger, check bool) (*gen.Config, error) {
	dir := v.GetString(keyDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	opts := []gen.Option{
		gen.WithDir(dir),
		gen.WithLogger(log),
		gen.WithCheck(check),
		gen.WithTagName(v.GetString(keyTag)),
		gen.WithRuntime(v.GetString(keyRuntime)),
		gen.WithFactoryName(v.GetString(keyFactory)),
		gen.WithFeatureNames(v.GetStringSlice(keyFeature)...),
		gen.WithoutFeatures(v.GetStringSlice(keyDisableFeature)...),
		gen.WithOptionalTypes(v.GetStringSlice(keyOptional)...),
		gen.WithBuildFlags(v.GetStringSlice(keyBuildFlags)...),
	}
	if name := v.GetString(keyOutput); name != "" {
		opts = append(opts, gen.WithOutputName(name))
	}
	if d := v.GetString(keyDirective); d != "" {
		opts = append(opts, gen.WithDirective(d))
	}
	if n := v.GetInt(keyWorkers); n != 0 {
		opts = append(opts, gen.WithWorkers(n))
	}
	if !v.GetBool(keyNoCache) {
		path := v.GetString(keyCachePath)
		if path == "" {
			p, err := cache.DefaultPath(dir)
			if err != nil {
				log.Debug("generation cache disabled", zap.Error(err))
			}
			path = p
		}
		opts = append(opts, gen.WithCachePath(path))
	}
	cfg := gen.DefaultConfig()
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
