// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform maps drawing-space centers to millimeter space.
//
// The plate drawing carries matrix(1,0,0,-1,0.238,380.456): Y is flipped
// relative to the physical plate and re-based at 380.456. The unit scale
// comes from the key pitch: adjacent MX keys sit 54.032 drawing units apart
// and 19.05mm apart on the physical plate.
package transform

import "math"

const (
	// KeyPitchMM is the physical center-to-center key spacing.
	KeyPitchMM = 19.05

	// SVGPitch is the measured center-to-center spacing in drawing units.
	SVGPitch = 54.032

	// Scale converts drawing units to millimeters.
	Scale = KeyPitchMM / SVGPitch

	// YOrigin is the drawing-space Y of the millimeter-space origin.
	YOrigin = 380.456
)

// ToMM converts a drawing-space center to millimeters, full precision.
// Pure and total over finite inputs.
func ToMM(cx, cy float64) (xmm, ymm float64) {
	return cx * Scale, (YOrigin - cy) * Scale
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RowBucket groups a millimeter Y position into an approximate physical row
// at ~19mm row spacing, for row-major ordering.
func RowBucket(ymm float64) int {
	return int(math.Round(ymm / 19))
}
