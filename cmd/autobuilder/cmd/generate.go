package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/autobuilder/compiler"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate builders for the packages matching patterns",
		Long: `Generate builders for every type marked with //autobuilder:generate in
the packages matching patterns (default: the current directory).

Packages whose sources did not change since the last run are skipped,
unless --no-cache is given. Packages left without any valid record have
their generated file removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v, cmd)
			defer log.Sync() //nolint:errcheck
			cfg, err := newConfig(v, log, false)
			if err != nil {
				return err
			}
			res, err := compiler.Generate(cmd.Context(), cfg, args...)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), cfg.Dir, res)
			return diagnostics(cmd.ErrOrStderr(), res)
		},
	}
}

// report prints the files written or removed by a run.
func report(w io.Writer, dir string, res *compiler.Result) {
	for _, p := range res.Packages {
		switch {
		case p.Removed:
			fmt.Fprintf(w, "removed %s\n", relPath(dir, p.File))
		case p.Changed:
			fmt.Fprintf(w, "generated %s (%d records)\n", relPath(dir, p.File), len(p.Records))
		}
	}
}

// diagnostics prints the rejected declarations, one per line, and returns
// an error when there is any.
func diagnostics(w io.Writer, res *compiler.Result) error {
	n := 0
	for _, p := range res.Packages {
		for _, err := range p.Errors {
			fmt.Fprintln(w, err)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d declarations rejected: %w", n, res.Err())
}

func relPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}
	return path
}
