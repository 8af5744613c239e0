// Package vizlib is a declarative charting library.
package vizlib

import (
	dataframe "encoding/csv"
	jsonschema "encoding/json"
	"strings"

	"vizlib/geom"
	"vizlib/internal/typing"
)

var ExportedNames = []string{
	"Chart",
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

// Typing helpers re-exported for import convenience only.
type (
	ChannelName = typing.ChannelName
	Option      = typing.Option
)

const TypeChecking = typing.TypeChecking

// Conventional aliases of helper libraries, bound for internal use.
var (
	_ *dataframe.Reader
	_ = jsonschema.Marshal
)
