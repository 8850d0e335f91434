package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/autobuilder/compiler"
)

// ErrStale is returned by the check command when a generated file differs
// from the generator output.
var ErrStale = errors.New("generated files are out of date")

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Verify that generated builders are up to date",
		Long: `Check renders the builders of the packages matching patterns and compares
them with the files on disk. Nothing is written. The command prints a diff
for every stale file and fails if there is any.

Example (CI):
  autobuilder check ./...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v, cmd)
			defer log.Sync() //nolint:errcheck
			cfg, err := newConfig(v, log, true)
			if err != nil {
				return err
			}
			res, err := compiler.Generate(cmd.Context(), cfg, args...)
			if err != nil {
				return err
			}
			if err := diagnostics(cmd.ErrOrStderr(), res); err != nil {
				return err
			}
			stale := res.Stale()
			out := cmd.OutOrStdout()
			for _, p := range stale {
				fmt.Fprintf(out, "%s:\n%s\n", relPath(cfg.Dir, p.File), p.Diff)
			}
			if len(stale) > 0 {
				return fmt.Errorf("%w: %d files, run autobuilder generate", ErrStale, len(stale))
			}
			return nil
		},
	}
}
