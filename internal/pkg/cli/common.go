package cli

import (
	"github.com/gochart/exportgen/internal/pkg/codemod"
	"github.com/gochart/exportgen/internal/pkg/exports"
	"github.com/gochart/exportgen/internal/pkg/filesystem"
	"github.com/gochart/exportgen/internal/pkg/introspect"
)

// relevantNames introspects the target library and computes the names
// that belong to the export list, common for update and check.
func (root *rootCommand) relevantNames() (*introspect.Library, []string, error) {
	o := root.options
	lib, err := introspect.Load(
		root.ctx,
		root.logger,
		root.fs.BasePath(),
		o.Package(),
		o.TypingPackage(),
		codemod.DeclName,
		o.EntryFile(),
	)
	if err != nil {
		return nil, nil, err
	}

	filter := exports.NewFilter(root.fs.BasePath(), lib.TypingPkgPath, codemod.DeclName, lib.Typing)
	names := filter.RelevantAttributes(lib.Namespace)
	root.logger.Debugf(`Found %d relevant attributes in "%s"`, len(names), lib.Pkg.PkgPath)
	return lib, names, nil
}

// entryPath returns the entry file path relative to the working dir.
func (root *rootCommand) entryPath(lib *introspect.Library) string {
	return filesystem.Rel(root.fs.BasePath(), lib.EntryFile)
}
