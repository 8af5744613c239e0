// Package geom provides chart geometry primitives.
package geom

type Point struct {
	X, Y float64
}
