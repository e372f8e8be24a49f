// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report builds the key-position report from the plate tables.
package report

import (
	"fmt"
	"sort"

	"github.com/orthball/plateconv/internal/plate"
	"github.com/orthball/plateconv/internal/transform"
	"github.com/orthball/plateconv/pkg/types"
)

const info = "OrthBall V1 key positions extracted from v4 SVG"

// Build parses both cutout tables, converts every center to millimeters,
// sorts, and assembles the report. A malformed coordinate literal aborts the
// whole build; there is no partial report.
func Build() (types.Report, error) {
	mx, err := convert(plate.MXRects, types.SwitchMX)
	if err != nil {
		return types.Report{}, fmt.Errorf("MX table: %w", err)
	}
	choc, err := convert(plate.ChocRects, types.SwitchChoc)
	if err != nil {
		return types.Report{}, fmt.Errorf("Choc table: %w", err)
	}

	SortRowMajor(mx)
	SortByX(choc)

	return types.Report{
		Info:      info,
		Scale:     fmt.Sprintf("1 SVG unit = %.4f mm", transform.Scale),
		MXKeys:    mx,
		ChocKeys:  choc,
		TotalMX:   len(mx),
		TotalChoc: len(choc),
		Total:     len(mx) + len(choc),
	}, nil
}

// convert parses one cutout table and maps each center to a KeyPosition.
func convert(block string, kind types.KeySwitchType) ([]types.KeyPosition, error) {
	centers, err := plate.ParseRects(block)
	if err != nil {
		return nil, err
	}
	keys := make([]types.KeyPosition, len(centers))
	for i, c := range centers {
		xmm, ymm := transform.ToMM(c.X, c.Y)
		keys[i] = types.KeyPosition{
			Type: kind,
			XMM:  transform.Round2(xmm),
			YMM:  transform.Round2(ymm),
			SVGX: c.X,
			SVGY: c.Y,
		}
	}
	return keys, nil
}

// SortRowMajor orders keys into reading order: row bucket first, then X
// ascending within the row.
func SortRowMajor(keys []types.KeyPosition) {
	sort.SliceStable(keys, func(i, j int) bool {
		bi, bj := transform.RowBucket(keys[i].YMM), transform.RowBucket(keys[j].YMM)
		if bi != bj {
			return bi < bj
		}
		return keys[i].XMM < keys[j].XMM
	})
}

// SortByX orders keys by X ascending.
func SortByX(keys []types.KeyPosition) {
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].XMM < keys[j].XMM
	})
}
