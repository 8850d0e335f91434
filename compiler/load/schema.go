// Package load extracts builder schemas from Go packages.
//
// A schema is a type declaration whose doc comment carries the generate
// directive:
//
//	//autobuilder:generate
//	type User struct {
//		Name  string
//		Email *string
//		Role  Role `builder:"default"`
//	}
//
// The loader does not judge the declaration. Non-struct or generic
// declarations are returned as-is and rejected by the generator, so that
// one bad declaration does not hide the others in the same package.
package load

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Directive is the comment line that marks a type declaration for generation.
const Directive = "//autobuilder:generate"

// Package holds the schemas found in one loaded Go package.
type Package struct {
	// Name is the package name, Path its import path.
	Name, Path string
	// Dir is the directory holding the package sources.
	Dir string
	// GoFiles are the absolute paths of the package's Go files.
	GoFiles []string
	// Types is the type-checked package.
	Types *types.Package
	// Schemas are the annotated declarations, in source order.
	Schemas []*Schema
	// Errors are the list and parse errors of the package. Its schemas
	// cannot be trusted when there is any.
	Errors []error
	// TypeErrors are the type-checking errors. Type information stays
	// available for the declarations that did check, so they do not
	// prevent generation.
	TypeErrors []error
}

// Schema represents an annotated type declaration.
type Schema struct {
	Name string `json:"name,omitempty"`
	// Pos is the "file:line:col" position of the type name.
	Pos string `json:"pos,omitempty"`
	// Shape is "struct" for struct declarations, otherwise a short
	// description of the underlying type ("interface", "alias", "int", ...).
	Shape string `json:"shape,omitempty"`
	// Generic reports whether the declaration has type parameters.
	Generic bool     `json:"generic,omitempty"`
	Fields  []*Field `json:"fields,omitempty"`
	// Object is the declared type name; it gives access to the
	// method set and the enclosing package scope.
	Object *types.TypeName `json:"-"`
}

// Field is one struct field of a schema, in declaration order.
type Field struct {
	Name     string     `json:"name,omitempty"`
	Type     types.Type `json:"-"`
	Tag      string     `json:"tag,omitempty"`
	Embedded bool       `json:"embedded,omitempty"`
	Pos      string     `json:"pos,omitempty"`
}

// IsStruct reports whether the schema was declared as a struct type.
func (s *Schema) IsStruct() bool { return s.Shape == "struct" }

// Package returns the package the schema is declared in.
func (s *Schema) Package() *types.Package {
	if s.Object == nil {
		return nil
	}
	return s.Object.Pkg()
}

// Config configures the loader.
type Config struct {
	// Dir is the directory patterns are resolved from. Empty means the
	// current directory.
	Dir string
	// BuildFlags are passed to the underlying build tool.
	BuildFlags []string
	// Directive overrides the default Directive.
	Directive string
	// Mask lists file base names (e.g. the generated output) whose content
	// is hidden from the type checker. A stale generated file must not be
	// able to break the load that regenerates it.
	Mask []string
	// Overlay adds or replaces file contents, keyed by absolute path.
	Overlay map[string][]byte
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Load loads the packages matching patterns and extracts their schemas.
func Load(ctx context.Context, cfg *Config, patterns ...string) ([]*Package, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	overlay, err := maskOverlay(ctx, cfg, patterns)
	if err != nil {
		return nil, err
	}
	pkgs, err := packages.Load(&packages.Config{
		Context:    ctx,
		Mode:       loadMode,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
		Overlay:    overlay,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages %s: %w", strings.Join(patterns, " "), err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %s", strings.Join(patterns, " "))
	}
	directive := cfg.Directive
	if directive == "" {
		directive = Directive
	}
	out := make([]*Package, 0, len(pkgs))
	for _, p := range pkgs {
		lp := &Package{
			Name:    p.Name,
			Path:    p.PkgPath,
			GoFiles: p.GoFiles,
			Types:   p.Types,
		}
		if len(p.GoFiles) > 0 {
			lp.Dir = filepath.Dir(p.GoFiles[0])
		}
		var listErrs []error
		for _, e := range p.Errors {
			switch e.Kind {
			case packages.TypeError:
				lp.TypeErrors = append(lp.TypeErrors, e)
			case packages.ListError:
				listErrs = append(listErrs, e)
			default:
				lp.Errors = append(lp.Errors, e)
			}
		}
		// go list compiles the package for its export data and reports the
		// compiler output again as a list error.
		if len(lp.TypeErrors) > 0 {
			lp.TypeErrors = append(lp.TypeErrors, listErrs...)
		} else {
			lp.Errors = append(lp.Errors, listErrs...)
		}
		if p.TypesInfo != nil {
			for _, file := range p.Syntax {
				lp.Schemas = append(lp.Schemas, fileSchemas(p.Fset, p.TypesInfo, file, directive)...)
			}
		}
		out = append(out, lp)
	}
	return out, nil
}

// Listed is a package found by List, without syntax or type information.
type Listed struct {
	Name, Path string
	Dir        string
	GoFiles    []string
}

// List resolves patterns to packages and their files without parsing them.
// It is much cheaper than Load and lets callers skip unchanged packages.
func List(ctx context.Context, cfg *Config, patterns ...string) ([]*Listed, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pkgs, err := packages.Load(&packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedFiles,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("list packages %s: %w", strings.Join(patterns, " "), err)
	}
	out := make([]*Listed, 0, len(pkgs))
	for _, p := range pkgs {
		l := &Listed{Name: p.Name, Path: p.PkgPath, GoFiles: p.GoFiles}
		if len(p.GoFiles) > 0 {
			l.Dir = filepath.Dir(p.GoFiles[0])
		}
		out = append(out, l)
	}
	return out, nil
}

// maskOverlay resolves the package files that match cfg.Mask and replaces
// their content with a bare package clause.
func maskOverlay(ctx context.Context, cfg *Config, patterns []string) (map[string][]byte, error) {
	overlay := make(map[string][]byte, len(cfg.Overlay))
	for k, v := range cfg.Overlay {
		overlay[k] = v
	}
	if len(cfg.Mask) == 0 {
		return overlay, nil
	}
	pkgs, err := List(ctx, cfg, patterns...)
	if err != nil {
		return nil, err
	}
	for _, p := range pkgs {
		for _, f := range p.GoFiles {
			if !masked(cfg.Mask, filepath.Base(f)) {
				continue
			}
			if _, ok := overlay[f]; !ok {
				overlay[f] = []byte("package " + p.Name + "\n")
			}
		}
	}
	return overlay, nil
}

func masked(mask []string, base string) bool {
	for _, m := range mask {
		if m == base {
			return true
		}
	}
	return false
}

// fileSchemas returns the annotated type declarations of a file.
func fileSchemas(fset *token.FileSet, info *types.Info, file *ast.File, directive string) []*Schema {
	var schemas []*Schema
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			// A non-grouped declaration attaches its comment to the GenDecl.
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}
			if !hasDirective(doc, directive) {
				continue
			}
			obj, ok := info.Defs[ts.Name].(*types.TypeName)
			if !ok {
				continue
			}
			schemas = append(schemas, newSchema(fset, ts, obj))
		}
	}
	return schemas
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == directive {
			return true
		}
	}
	return false
}

func newSchema(fset *token.FileSet, ts *ast.TypeSpec, obj *types.TypeName) *Schema {
	s := &Schema{
		Name:    obj.Name(),
		Pos:     fset.Position(ts.Name.Pos()).String(),
		Generic: ts.TypeParams != nil && ts.TypeParams.NumFields() > 0,
		Object:  obj,
	}
	if ts.Assign.IsValid() {
		s.Shape = "alias"
		return s
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		s.Shape = shape(obj.Type().Underlying())
		return s
	}
	s.Shape = "struct"
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		s.Fields = append(s.Fields, &Field{
			Name:     v.Name(),
			Type:     v.Type(),
			Tag:      st.Tag(i),
			Embedded: v.Embedded(),
			Pos:      fset.Position(v.Pos()).String(),
		})
	}
	return s
}

// shape describes a non-struct underlying type for diagnostics.
func shape(t types.Type) string {
	switch t := t.(type) {
	case *types.Interface:
		return "interface"
	case *types.Basic:
		return t.Name()
	case *types.Map:
		return "map"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Pointer:
		return "pointer"
	case *types.Signature:
		return "func"
	case *types.Chan:
		return "chan"
	default:
		return types.TypeString(t, nil)
	}
}
