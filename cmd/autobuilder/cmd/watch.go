package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/syssam/autobuilder/compiler"
	"github.com/syssam/autobuilder/compiler/gen"
	"github.com/syssam/autobuilder/compiler/load"
)

const keyDebounce = "debounce"

func newWatchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [patterns...]",
		Short: "Regenerate builders whenever package sources change",
		Long: `Watch generates the builders of the packages matching patterns, then
regenerates them every time a Go file of those packages changes. Rapid
successive changes are coalesced. Stop with Ctrl-C.

Packages created after the watch started are not picked up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v, cmd)
			defer log.Sync() //nolint:errcheck
			cfg, err := newConfig(v, log, false)
			if err != nil {
				return err
			}
			w := &watcher{
				cfg:      cfg,
				patterns: args,
				debounce: v.GetDuration(keyDebounce),
				log:      log,
				run: func(ctx context.Context) error {
					res, err := compiler.Generate(ctx, cfg, args...)
					if err != nil {
						return err
					}
					report(cmd.OutOrStdout(), cfg.Dir, res)
					return diagnostics(cmd.ErrOrStderr(), res)
				},
			}
			return w.Watch(cmd.Context())
		},
	}
	cmd.Flags().Duration(keyDebounce, 200*time.Millisecond, "Quiet period before regenerating after a change")
	return cmd
}

// watcher reruns generation when the Go files of the watched packages
// change.
type watcher struct {
	cfg      *gen.Config
	patterns []string
	debounce time.Duration
	log      *zap.Logger
	run      func(context.Context) error
}

// Watch runs generation once, then after every relevant change, until ctx
// is done. Generation failures are logged and do not stop the watch.
func (w *watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	listed, err := load.List(ctx, &load.Config{Dir: w.cfg.Dir, BuildFlags: w.cfg.BuildFlags}, w.patterns...)
	if err != nil {
		return err
	}
	outputs := make(map[string]bool, len(listed))
	for _, p := range listed {
		if p.Dir == "" {
			continue
		}
		if err := fsw.Add(p.Dir); err != nil {
			return fmt.Errorf("watch %s: %w", p.Dir, err)
		}
		outputs[filepath.Join(p.Dir, w.cfg.OutputFile(p.Name))] = true
	}
	w.log.Info("watching packages", zap.Int("dirs", len(outputs)))
	w.generate(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, outputs) {
				continue
			}
			w.log.Debug("change detected", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			w.generate(ctx)
		}
	}
}

func (w *watcher) generate(ctx context.Context) {
	if err := w.run(ctx); err != nil && ctx.Err() == nil {
		w.log.Error("generation failed", zap.Error(err))
	}
}

// relevant reports whether ev touches a non-test Go source. Writes to the
// generated files are ignored, they are produced by the watch itself.
func relevant(ev fsnotify.Event, outputs map[string]bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	if filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") || strings.HasPrefix(name, ".") {
		return false
	}
	return !outputs[ev.Name]
}
