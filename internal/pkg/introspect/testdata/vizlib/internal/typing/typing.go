// Package typing provides constructs that exist to support static analysis,
// re-exported at the library root for import convenience.
package typing

// TypeCheckingFlag marks values meaningful to static analyzers only.
type TypeCheckingFlag bool

// TypeChecking is always false at runtime.
const TypeChecking TypeCheckingFlag = false

// ChannelName is the name of an encoding channel, "x", "y", "color", ...
type ChannelName string

// Option configures a chart.
type Option func(settings map[string]any)
