package introspect

import (
	"go/ast"

	"github.com/umisama/go-regexpcache"
)

// hasDeprecatedMarker reports whether the doc comment contains
// a "Deprecated:" paragraph, see https://go.dev/wiki/Deprecated.
func hasDeprecatedMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	return regexpcache.MustCompile(`(?m)^\s*Deprecated:`).MatchString(doc.Text())
}
