// Package compiler drives builder generation: it resolves package
// patterns, skips packages whose sources did not change since the last
// run, loads the others and hands them to the generator.
package compiler

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/syssam/autobuilder/compiler/cache"
	"github.com/syssam/autobuilder/compiler/gen"
	"github.com/syssam/autobuilder/compiler/load"
)

// Result is the outcome of a Generate call.
type Result struct {
	*gen.Result
	// Skipped lists the import paths of the packages skipped because the
	// cache found them unchanged.
	Skipped []string
	// Metrics of the file writer.
	Metrics gen.WriterMetrics
}

// Generate generates the builders of the packages matching patterns.
// Record diagnostics are reported in the result, not as error.
func Generate(ctx context.Context, cfg *gen.Config, patterns ...string) (*Result, error) {
	if cfg == nil {
		cfg = gen.DefaultConfig()
	}
	var (
		log   = cfg.Log()
		start = time.Now()
		lcfg  = &load.Config{Dir: cfg.Dir, BuildFlags: cfg.BuildFlags, Directive: cfg.Directive}
	)
	listed, err := load.List(ctx, lcfg, patterns...)
	if err != nil {
		return nil, err
	}
	store, err := openCache(cfg)
	if err != nil {
		return nil, err
	}
	var (
		res         = &Result{Result: &gen.Result{}}
		hashes      = make(map[string]string, len(listed))
		fingerprint = cfg.Fingerprint()
		targets     []string
	)
	lcfg.Overlay = make(map[string][]byte)
	for _, p := range listed {
		if p.Dir == "" {
			continue
		}
		out := filepath.Join(p.Dir, cfg.OutputFile(p.Name))
		hasOut := slices.Contains(p.GoFiles, out)
		if hasOut {
			// A stale generated file must not break the load regenerating it.
			lcfg.Overlay[out] = []byte("package " + p.Name + "\n")
		}
		if store != nil {
			h, err := cache.HashFiles(p.GoFiles, filepath.Base(out))
			if err != nil {
				return nil, err
			}
			// The output must also be where the last run left it.
			if e, ok := store.Get(p.Dir); ok && store.Fresh(p.Dir, h, fingerprint) && (len(e.Records) > 0) == hasOut {
				res.Skipped = append(res.Skipped, p.Path)
				continue
			}
			hashes[p.Dir] = h
		}
		targets = append(targets, p.Path)
	}
	if len(targets) == 0 {
		log.Info("all packages up to date", zap.Int("skipped", len(res.Skipped)))
		return res, nil
	}
	pkgs, err := load.Load(ctx, lcfg, targets...)
	if err != nil {
		return nil, err
	}
	log.Debug("packages loaded", zap.Int("loaded", len(pkgs)), zap.Int("skipped", len(res.Skipped)), zap.Duration("took", time.Since(start)))
	g := gen.NewJenniferGenerator(cfg)
	gres, err := g.Generate(ctx, pkgs)
	if err != nil {
		return nil, err
	}
	res.Result = gres
	res.Metrics = g.Writer().Metrics()
	if store != nil {
		if err := updateCache(store, pkgs, gres, hashes, fingerprint); err != nil {
			log.Warn("cache not saved", zap.String("path", store.Path()), zap.Error(err))
		}
	}
	log.Info("generation finished",
		zap.Int("packages", len(gres.Packages)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("written", res.Metrics.FilesWritten),
		zap.Int("removed", res.Metrics.FilesRemoved),
		zap.Duration("took", time.Since(start)),
	)
	return res, nil
}

// openCache opens the manifest, or returns nil when caching is disabled.
// Check mode always looks at every package.
func openCache(cfg *gen.Config) (*cache.Store, error) {
	if cfg.CachePath == "" || cfg.Check {
		return nil, nil
	}
	s, err := cache.Open(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return s, nil
}

// updateCache records the packages generated without diagnostics. Packages
// with diagnostics are dropped so the next run reports them again.
func updateCache(store *cache.Store, pkgs []*load.Package, res *gen.Result, hashes map[string]string, fingerprint string) error {
	results := make(map[string]*gen.PackageResult)
	for _, pr := range res.Packages {
		results[pr.Path] = pr
	}
	for _, p := range pkgs {
		h, ok := hashes[p.Dir]
		if !ok {
			continue
		}
		pr := results[p.Path]
		if pr != nil && len(pr.Errors) > 0 {
			store.Delete(p.Dir)
			continue
		}
		e := &cache.Entry{Hash: h, Fingerprint: fingerprint}
		if pr != nil {
			e.Records = pr.Records
		}
		store.Put(p.Dir, e)
	}
	return store.Save()
}
