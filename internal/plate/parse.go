// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plate holds the extracted plate cutout tables and the parser that
// turns them into rectangle centers in drawing units.
package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// Center is a rectangle center in drawing units, full precision.
type Center struct {
	X float64
	Y float64
}

// ParseRects parses a block of cutout lines into centers. A line is data iff
// it splits on whitespace into exactly 2 corner tokens; anything else (blank
// lines, the 4-corner thumb outlines) is skipped. The skip policy covers the
// token count only: once a line is data, a corner that does not parse as
// "x,y" with numeric parts is an authoring error and aborts the whole parse.
func ParseRects(block string) ([]Center, error) {
	var centers []Center
	for _, line := range strings.Split(block, "\n") {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		x1, y1, err := parseCorner(parts[0])
		if err != nil {
			return nil, err
		}
		x2, y2, err := parseCorner(parts[1])
		if err != nil {
			return nil, err
		}
		centers = append(centers, Center{
			X: (x1 + x2) / 2,
			Y: (y1 + y2) / 2,
		})
	}
	return centers, nil
}

// parseCorner parses one "x,y" corner token.
func parseCorner(token string) (x, y float64, err error) {
	coords := strings.Split(token, ",")
	if len(coords) != 2 {
		return 0, 0, fmt.Errorf("corner %q: want 2 comma-separated coordinates, got %d", token, len(coords))
	}
	x, err = strconv.ParseFloat(coords[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("corner %q: %w", token, err)
	}
	y, err = strconv.ParseFloat(coords[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("corner %q: %w", token, err)
	}
	return x, y, nil
}
