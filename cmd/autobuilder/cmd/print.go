package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/autobuilder/compiler/gen"
	"github.com/syssam/autobuilder/compiler/load"
)

func newPrintCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "print [patterns...]",
		Short: "Print the generated builders instead of writing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v, cmd)
			defer log.Sync() //nolint:errcheck
			cfg, err := newConfig(v, log, true)
			if err != nil {
				return err
			}
			lcfg := &load.Config{Dir: cfg.Dir, BuildFlags: cfg.BuildFlags, Directive: cfg.Directive}
			listed, err := load.List(cmd.Context(), lcfg, args...)
			if err != nil {
				return err
			}
			for _, p := range listed {
				lcfg.Mask = append(lcfg.Mask, cfg.OutputFile(p.Name))
			}
			pkgs, err := load.Load(cmd.Context(), lcfg, args...)
			if err != nil {
				return err
			}
			var (
				g   = gen.NewJenniferGenerator(cfg)
				buf bytes.Buffer
			)
			for _, pkg := range pkgs {
				if len(pkg.Schemas) == 0 {
					continue
				}
				buf.Reset()
				err := g.Render(pkg, &buf)
				if buf.Len() > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "// Package: %s\n%s", pkg.Path, buf.Bytes())
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
