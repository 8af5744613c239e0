// Package exports decides which attributes of a namespace snapshot belong
// to the public export list.
//
// The filter is pure, it works on an explicit namespace and never touches
// the mechanism that produced it.
package exports

import (
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gochart/exportgen/internal/pkg/introspect"
)

// SentinelTypeName is the marker type of the typing-support package whose
// values exist for static analysis only.
const SentinelTypeName = "TypeCheckingFlag"

// typingConstructPkgs are packages whose constructs support static typing
// and never belong to a runtime export list.
var typingConstructPkgs = map[string]struct{}{
	"unsafe":                       {},
	"golang.org/x/exp/constraints": {},
}

// denylist contains local names conventionally bound to helper libraries,
// never public exports.
var denylist = map[string]struct{}{
	"dataframe":  {},
	"jsonschema": {},
}

// Filter holds the exclusion rules for one target library.
type Filter struct {
	projectDir string
	declName   string
	sentinel   introspect.Ref
	constructs map[introspect.Ref]struct{}
}

// NewFilter builds the exclusion rules: the static baseline united with the
// typing constructs re-exported by the typing-support package.
// Typing entries without a stable identity cannot join the set and are
// skipped, not errors.
func NewFilter(projectDir, typingPkgPath, declName string, typing *introspect.Namespace) *Filter {
	f := &Filter{
		projectDir: projectDir,
		declName:   declName,
		sentinel:   introspect.Ref{Pkg: typingPkgPath, Name: SentinelTypeName},
		constructs: make(map[introspect.Ref]struct{}),
	}

	if typing != nil {
		for _, name := range typing.Names() {
			if internalName(name, introspect.KindType) {
				continue
			}
			attr, _ := typing.Get(name)
			if attr.Origin == nil {
				continue
			}
			f.constructs[*attr.Origin] = struct{}{}
		}
	}
	return f
}

// RelevantAttributes returns the names that belong to the export list,
// alphabetically sorted so regenerated diffs stay stable and minimal.
func (f *Filter) RelevantAttributes(ns *introspect.Namespace) []string {
	out := make([]string, 0, ns.Len())
	for _, name := range ns.Names() {
		attr, _ := ns.Get(name)
		if internalName(name, attr.Kind) {
			continue
		}
		if name == f.declName {
			continue // the managed declaration itself
		}
		if f.IsRelevant(attr) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// IsRelevant is the predicate deciding whether one attribute belongs
// to the export list.
func (f *Filter) IsRelevant(attr introspect.Attr) bool {
	switch {
	case attr.Deprecated:
		return false
	case f.isSentinel(attr):
		return false
	case attr.Origin != nil && f.isTypingConstruct(*attr.Origin):
		return false
	case isDenied(attr.Name):
		return false
	case attr.DeprecatedGroup:
		return false
	}

	if attr.Kind == introspect.KindPackage {
		// Only include packages which are part of the target library.
		// This excludes stdlib and third-party packages bound in the entry file.
		if attr.Dir == "" || !strings.HasPrefix(attr.Dir, f.projectDir) {
			return false
		}
		// Internal packages cannot be imported by the library users
		return !f.isInternalPkg(attr.Dir)
	}
	return true
}

func (f *Filter) isInternalPkg(dir string) bool {
	rel := strings.TrimPrefix(dir, f.projectDir)
	for _, elem := range strings.Split(filepath.ToSlash(rel), "/") {
		if elem == "internal" {
			return true
		}
	}
	return false
}

func (f *Filter) isSentinel(attr introspect.Attr) bool {
	return attr.TypeOrigin != nil && *attr.TypeOrigin == f.sentinel
}

func (f *Filter) isTypingConstruct(ref introspect.Ref) bool {
	if _, found := typingConstructPkgs[ref.Pkg]; found {
		return true
	}
	_, found := f.constructs[ref]
	return found
}

func isDenied(name string) bool {
	_, found := denylist[name]
	return found
}

// internalName implements the internal-prefix convention. Package attributes
// are lowercase by nature, for them only the underscore prefix counts.
func internalName(name string, kind introspect.Kind) bool {
	if strings.HasPrefix(name, "_") {
		return true
	}
	if kind != introspect.KindPackage {
		return !token.IsExported(name)
	}
	return false
}
