// Package vizlib is a declarative charting library.
package vizlib

import (
	"strings"

	"vizlib/geom"
	"vizlib/internal/typing"
)

var ExportedNames = []string{
	"OldChart",
}

// Chart is a single visualization with data and encodings.
type Chart struct {
	Title string
	Marks []geom.Point
}

// NewChart creates an empty chart.
func NewChart(title string) *Chart {
	return &Chart{Title: strings.TrimSpace(title)}
}

// Deprecated: use Chart instead.
type OldChart struct {
	Title string
}

// Typing helpers re-exported for import convenience only.
type Option = typing.Option

const TypeChecking = typing.TypeChecking
