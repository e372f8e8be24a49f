// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"

	"github.com/orthball/plateconv/internal/transform"
	"github.com/orthball/plateconv/pkg/types"
)

func TestBuildCounts(t *testing.T) {
	r, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.TotalMX != 50 {
		t.Errorf("TotalMX = %d, want 50", r.TotalMX)
	}
	if r.TotalChoc != 5 {
		t.Errorf("TotalChoc = %d, want 5", r.TotalChoc)
	}
	if r.Total != r.TotalMX+r.TotalChoc {
		t.Errorf("Total = %d, want %d", r.Total, r.TotalMX+r.TotalChoc)
	}
	if len(r.MXKeys) != r.TotalMX || len(r.ChocKeys) != r.TotalChoc {
		t.Error("counts do not match list lengths")
	}
}

func TestBuildMetadata(t *testing.T) {
	r, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.Info != "OrthBall V1 key positions extracted from v4 SVG" {
		t.Errorf("Info = %q", r.Info)
	}
	if r.Scale != "1 SVG unit = 0.3526 mm" {
		t.Errorf("Scale = %q", r.Scale)
	}
}

func TestBuildMXOrdering(t *testing.T) {
	r, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 1; i < len(r.MXKeys); i++ {
		prev, cur := r.MXKeys[i-1], r.MXKeys[i]
		pb, cb := transform.RowBucket(prev.YMM), transform.RowBucket(cur.YMM)
		if pb > cb {
			t.Fatalf("row bucket decreased at %d: %d after %d", i, cb, pb)
		}
		if pb == cb && prev.XMM > cur.XMM {
			t.Fatalf("x_mm decreased within row at %d: %v after %v", i, cur.XMM, prev.XMM)
		}
	}
}

func TestBuildChocOrdering(t *testing.T) {
	r, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 1; i < len(r.ChocKeys); i++ {
		if r.ChocKeys[i-1].XMM > r.ChocKeys[i].XMM {
			t.Fatalf("choc x_mm decreased at %d", i)
		}
	}
}

func TestBuildReferenceKey(t *testing.T) {
	r, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// The cutout "614.966,251.492 575.282,291.176" has center (595.124, 271.334).
	for _, k := range r.MXKeys {
		if k.SVGX == 595.124 && k.SVGY == 271.334 {
			if k.XMM != 209.82 {
				t.Errorf("x_mm = %v, want 209.82", k.XMM)
			}
			if k.YMM != 38.47 {
				t.Errorf("y_mm = %v, want 38.47", k.YMM)
			}
			if k.Type != types.SwitchMX {
				t.Errorf("Type = %q, want MX", k.Type)
			}
			return
		}
	}
	t.Fatal("reference key not found in report")
}

func TestConvertAbortsOnBadLiteral(t *testing.T) {
	keys, err := convert("1,2 3,4\na,1 2,3\n", types.SwitchMX)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if keys != nil {
		t.Errorf("expected no partial result, got %d keys", len(keys))
	}
}
