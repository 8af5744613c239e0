package vizlib

// Deprecated: use Chart instead.
type OldChart struct {
	Title string
}

// NewOldChart creates an OldChart.
//
// Deprecated: use NewChart.
func NewOldChart() *OldChart {
	return &OldChart{}
}

// Deprecated: legacy theming, superseded by Option.
var (
	LegacyThemeName    = "classic"
	LegacyRenderConfig = map[string]string{}
)
