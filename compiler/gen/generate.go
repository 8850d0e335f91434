package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/autobuilder/compiler/load"
)

// JenniferGenerator renders the builders of loaded packages with Jennifer.
// Each package yields at most one file holding the builders of all its
// valid records.
type JenniferGenerator struct {
	cfg    *Config
	writer *FileWriter
}

// NewJenniferGenerator creates a generator for the given configuration.
// A nil config means DefaultConfig.
func NewJenniferGenerator(cfg *Config) *JenniferGenerator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &JenniferGenerator{
		cfg:    cfg,
		writer: NewFileWriter(cfg),
	}
}

// Writer returns the writer used by Generate.
func (g *JenniferGenerator) Writer() *FileWriter {
	return g.writer
}

// PackageResult is the outcome of generating one package.
type PackageResult struct {
	// Path is the package import path.
	Path string
	// File is the absolute path of the generated file.
	File string
	// Records lists the records a builder was generated for.
	Records []string
	// Changed reports whether the file differs from the one on disk.
	// In check mode nothing is written.
	Changed bool
	// Removed reports that the file was (or in check mode, would be)
	// removed because the package has no valid record left.
	Removed bool
	// Diff is the difference between the file on disk and the expected
	// output. It is only computed in check mode.
	Diff string
	// Errors are the diagnostics of the rejected records.
	Errors []error
}

// Result is the outcome of a Generate call.
type Result struct {
	Packages []*PackageResult
}

// Err returns the diagnostics of all packages joined, or nil.
func (r *Result) Err() error {
	var errs []error
	for _, p := range r.Packages {
		errs = append(errs, p.Errors...)
	}
	return errors.Join(errs...)
}

// Stale returns the packages whose file is out of date.
func (r *Result) Stale() []*PackageResult {
	var stale []*PackageResult
	for _, p := range r.Packages {
		if p.Changed || p.Removed {
			stale = append(stale, p)
		}
	}
	return stale
}

// Records derives the records of a package. Rejected declarations are
// reported as errors and do not prevent the others from being generated.
func (g *JenniferGenerator) Records(pkg *load.Package) ([]*Record, []error) {
	var (
		recs []*Record
		errs []error
		used = make(nameSet)
	)
	for _, s := range pkg.Schemas {
		r, err := NewRecord(g.cfg, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if dup := firstTaken(used, r.generated()); dup != "" {
			errs = append(errs, NewSchemaError(s.Pos, s.Name, "", "generated identifier "+dup+" conflicts with another record", nil))
			continue
		}
		used.add(r.generated()...)
		recs = append(recs, r)
	}
	return recs, errs
}

func firstTaken(s nameSet, names []string) string {
	for _, n := range names {
		if s.has(n) {
			return n
		}
	}
	return ""
}

// File returns the Jennifer file holding the builders of recs.
func (g *JenniferGenerator) File(pkg *load.Package, recs []*Record) *jen.File {
	f := jen.NewFilePathName(pkg.Path, pkg.Name)
	f.HeaderComment(g.cfg.header())
	imports := map[string]string{g.cfg.runtimePkg(): lastSegment(g.cfg.runtimePkg())}
	for _, r := range recs {
		for path, p := range r.Imports() {
			imports[path] = p.Name()
		}
	}
	importNames(f, pkg, imports)
	for _, r := range recs {
		genRecord(f, r)
	}
	return f
}

// importNames registers the import names of the generated file. A
// package whose name is declared in the package scope is imported under
// a fresh alias, since an import name cannot be redeclared.
func importNames(f *jen.File, pkg *load.Package, imports map[string]string) {
	taken := make(nameSet)
	if pkg.Types != nil {
		taken.add(pkg.Types.Scope().Names()...)
	}
	paths := make([]string, 0, len(imports))
	for path := range imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		name := imports[path]
		if !taken.has(name) {
			f.ImportName(path, name)
			continue
		}
		f.ImportAlias(path, taken.fresh(name+"pkg"))
	}
}

// Source renders the formatted builder file of a package. It returns nil
// when the package has no valid record.
func (g *JenniferGenerator) Source(pkg *load.Package) ([]byte, []error, error) {
	recs, errs := g.Records(pkg)
	if len(recs) == 0 {
		return nil, errs, nil
	}
	src, err := g.writer.Format(g.outputPath(pkg), g.File(pkg, recs))
	return src, errs, err
}

func (g *JenniferGenerator) outputPath(pkg *load.Package) string {
	return filepath.Join(pkg.Dir, g.cfg.OutputFile(pkg.Name))
}

// Generate renders and writes the builder file of every package in
// parallel. Record diagnostics are collected in the result; the returned
// error is reserved for failures that prevent a package from being
// processed at all.
func (g *JenniferGenerator) Generate(ctx context.Context, pkgs []*load.Package) (*Result, error) {
	var (
		mu  sync.Mutex
		res = &Result{}
		log = g.cfg.Log()
	)
	eg, ctx := errgroup.WithContext(ctx)
	if g.cfg.Workers > 0 {
		eg.SetLimit(g.cfg.Workers)
	}
	for _, pkg := range pkgs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pr, err := g.generatePackage(pkg)
			if err != nil {
				return err
			}
			if pr == nil {
				return nil
			}
			log.Debug("package generated",
				zap.String("package", pr.Path),
				zap.Strings("records", pr.Records),
				zap.Bool("changed", pr.Changed),
				zap.Bool("removed", pr.Removed),
				zap.Int("errors", len(pr.Errors)),
			)
			mu.Lock()
			res.Packages = append(res.Packages, pr)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(res.Packages, func(i, j int) bool {
		return res.Packages[i].Path < res.Packages[j].Path
	})
	return res, nil
}

// generatePackage handles one package. Packages with no schema and no
// previously generated file are skipped and yield a nil result.
func (g *JenniferGenerator) generatePackage(pkg *load.Package) (*PackageResult, error) {
	if pkg.Dir == "" {
		return nil, nil
	}
	pr := &PackageResult{Path: pkg.Path, File: g.outputPath(pkg)}
	if len(pkg.Errors) > 0 {
		for _, e := range pkg.Errors {
			pr.Errors = append(pr.Errors, NewGenerationError("load", pr.File, "package "+pkg.Path+" has errors", e))
		}
		return pr, nil
	}
	if len(pkg.TypeErrors) > 0 {
		// Code calling the builders does not check while the output is
		// masked. Records whose field types did not resolve are rejected
		// one by one.
		g.cfg.Log().Debug("package has type errors",
			zap.String("package", pkg.Path),
			zap.Int("errors", len(pkg.TypeErrors)),
			zap.Error(pkg.TypeErrors[0]),
		)
	}
	recs, errs := g.Records(pkg)
	pr.Errors = errs
	for _, r := range recs {
		pr.Records = append(pr.Records, r.Name)
	}
	if len(recs) == 0 {
		removed, diff, err := g.writer.Remove(pr.File)
		if err != nil {
			return nil, err
		}
		if !removed && len(pkg.Schemas) == 0 {
			return nil, nil
		}
		pr.Removed, pr.Diff = removed, diff
		return pr, nil
	}
	changed, diff, err := g.writer.Write(pr.File, g.File(pkg, recs))
	if err != nil {
		return nil, err
	}
	pr.Changed, pr.Diff = changed, diff
	return pr, nil
}

// Render renders the builder file of a single package into buf. It is a
// convenience for tools that print the output instead of writing it.
func (g *JenniferGenerator) Render(pkg *load.Package, buf *bytes.Buffer) error {
	src, errs, err := g.Source(pkg)
	if err != nil {
		return err
	}
	if src == nil {
		if len(errs) > 0 {
			return errors.Join(errs...)
		}
		return fmt.Errorf("autobuilder: package %s has no records", pkg.Path)
	}
	buf.Write(src)
	return errors.Join(errs...)
}
