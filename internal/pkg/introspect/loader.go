package introspect

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Library is the introspected target library.
type Library struct {
	Pkg           *packages.Package
	Dir           string // absolute source dir of the root package
	EntryFile     string // absolute path of the file with the export list declaration
	Namespace     *Namespace
	Typing        *Namespace
	TypingPkgPath string
}

// Load introspects the target library: the root package namespace, the
// typing-support package namespace and the entry file location.
//
// The entryFile argument is optional, when empty, the entry file is
// discovered by searching the declaration in the loaded syntax.
func Load(ctx context.Context, logger *zap.SugaredLogger, dir, pkgPattern, typingPattern, declName, entryFile string) (*Library, error) {
	// Load root package
	logger.Debugf(`Loading package "%s" in "%s"`, pkgPattern, dir)
	pkg, err := loadPackage(ctx, dir, pkgPattern)
	if err != nil {
		return nil, err
	}
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf(`package "%s" contains no Go files`, pkg.PkgPath)
	}

	// Load typing-support package
	logger.Debugf(`Loading typing-support package "%s"`, typingPattern)
	typingPkg, err := loadPackage(ctx, dir, typingPattern)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Pkg:           pkg,
		Dir:           filepath.Dir(pkg.GoFiles[0]),
		Namespace:     buildNamespace(pkg),
		Typing:        buildNamespace(typingPkg),
		TypingPkgPath: typingPkg.PkgPath,
	}

	// Locate entry file
	entryAst, path, err := findEntryFile(pkg, declName, entryFile)
	if err != nil {
		return nil, err
	}
	lib.EntryFile = path

	// Bind the entry file imports as package attributes
	addImports(lib.Namespace, pkg, entryAst)

	logger.Debugf(`Loaded %d attributes from "%s"`, lib.Namespace.Len(), pkg.PkgPath)
	return lib, nil
}

func loadPackage(ctx context.Context, dir, pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    loadMode,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf(`cannot load package "%s": %w`, pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf(`pattern "%s" matched %d packages, expected one`, pattern, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, fmt.Errorf(`cannot load package "%s": %w`, pattern, errors.Join(errs...))
	}
	return pkg, nil
}

// buildNamespace creates a namespace snapshot from the package scope.
// Deprecation markers are read from the syntax only, static lookup,
// no value is evaluated.
func buildNamespace(pkg *packages.Package) *Namespace {
	ns := NewNamespace()
	docs := collectDocs(pkg)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		kind, ok := kindOf(obj)
		if !ok {
			continue
		}
		doc := docs[name]
		ns.Set(Attr{
			Name:            name,
			Kind:            kind,
			Origin:          originOf(obj),
			TypeOrigin:      typeOriginOf(obj),
			Deprecated:      doc.self,
			DeprecatedGroup: doc.group,
		})
	}
	return ns
}

type docMarkers struct {
	self  bool // marker in the doc of the symbol itself
	group bool // marker in the doc of the enclosing declaration group
}

// collectDocs indexes deprecation markers of all top-level declarations.
func collectDocs(pkg *packages.Package) map[string]docMarkers {
	out := make(map[string]docMarkers)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv != nil {
					continue // method, not a top-level name
				}
				out[d.Name.Name] = docMarkers{self: hasDeprecatedMarker(d.Doc)}
			case *ast.GenDecl:
				// A group marker makes sense for a parenthesized group only,
				// the doc of a single declaration belongs to the symbol itself.
				grouped := d.Lparen.IsValid()
				declMarker := hasDeprecatedMarker(d.Doc)
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.ValueSpec:
						m := docMarkers{self: hasDeprecatedMarker(s.Doc)}
						if grouped {
							m.group = declMarker
						} else {
							m.self = m.self || declMarker
						}
						for _, name := range s.Names {
							out[name.Name] = m
						}
					case *ast.TypeSpec:
						m := docMarkers{self: hasDeprecatedMarker(s.Doc)}
						if grouped {
							m.group = declMarker
						} else {
							m.self = m.self || declMarker
						}
						out[s.Name.Name] = m
					}
				}
			}
		}
	}
	return out
}

func kindOf(obj types.Object) (Kind, bool) {
	switch obj.(type) {
	case *types.Const:
		return KindConst, true
	case *types.Var:
		return KindVar, true
	case *types.Func:
		return KindFunc, true
	case *types.TypeName:
		return KindType, true
	default:
		return 0, false
	}
}

// originOf resolves the canonical object of a type name through alias chains.
// Only type names have a resolvable origin, a value re-export keeps no link
// to its source in type information, so it gets none.
func originOf(obj types.Object) *Ref {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil // alias of an unnamed type, no stable identity
	}
	o := named.Obj()
	if o.Pkg() == nil {
		return nil // universe scope, for example "error"
	}
	return &Ref{Pkg: o.Pkg().Path(), Name: o.Name()}
}

// typeOriginOf identifies the named type of a value attribute.
func typeOriginOf(obj types.Object) *Ref {
	switch obj.(type) {
	case *types.Const, *types.Var:
	default:
		return nil
	}
	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok {
		return nil
	}
	o := named.Obj()
	if o.Pkg() == nil {
		return nil
	}
	return &Ref{Pkg: o.Pkg().Path(), Name: o.Name()}
}

// findEntryFile returns the syntax and path of the file declaring the export
// list. An explicit path wins, otherwise the declaration is searched.
func findEntryFile(pkg *packages.Package, declName, explicit string) (*ast.File, string, error) {
	for _, file := range pkg.Syntax {
		path := pkg.Fset.Position(file.Pos()).Filename
		if explicit != "" {
			if filepath.Base(path) == filepath.Base(explicit) {
				return file, path, nil
			}
			continue
		}
		if declaresName(file, declName) {
			return file, path, nil
		}
	}
	if explicit != "" {
		return nil, "", fmt.Errorf(`entry file "%s" not found in package "%s"`, explicit, pkg.PkgPath)
	}
	return nil, "", fmt.Errorf(`declaration "%s" not found in package "%s"`, declName, pkg.PkgPath)
}

func declaresName(file *ast.File, name string) bool {
	for _, decl := range file.Decls {
		d, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range d.Specs {
			s, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, ident := range s.Names {
				if ident.Name == name {
					return true
				}
			}
		}
	}
	return false
}

// addImports binds the entry file imports to the namespace,
// the sub-module analog of the export list.
func addImports(ns *Namespace, pkg *packages.Package, entry *ast.File) {
	for _, imp := range entry.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		imported, found := pkg.Imports[path]
		if !found {
			continue
		}

		name := imported.Name
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}

		dir := ""
		if len(imported.GoFiles) > 0 {
			dir = filepath.Dir(imported.GoFiles[0])
		}
		ns.Set(Attr{Name: name, Kind: KindPackage, Dir: dir})
	}
}
