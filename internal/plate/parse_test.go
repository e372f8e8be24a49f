// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plate

import (
	"testing"
)

func TestParseRectsCenter(t *testing.T) {
	centers, err := ParseRects("614.966,251.492 575.282,291.176")
	if err != nil {
		t.Fatalf("ParseRects: %v", err)
	}
	if len(centers) != 1 {
		t.Fatalf("len(centers) = %d, want 1", len(centers))
	}
	// Exact midpoints, no rounding.
	if got, want := centers[0].X, (614.966+575.282)/2; got != want {
		t.Errorf("X = %v, want %v", got, want)
	}
	if got, want := centers[0].Y, (251.492+291.176)/2; got != want {
		t.Errorf("Y = %v, want %v", got, want)
	}
}

func TestParseRectsSkipsNonDataLines(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  int
	}{
		{"blank lines around data", "\n\n1,2 3,4\n\n", 1},
		{"single token line skipped", "1,2 3,4\nlonely\n", 1},
		{"four corner outline skipped", "1,2 3,4 5,6 7,8\n1,2 3,4\n", 1},
		{"only blanks", "\n   \n", 0},
		{"empty block", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			centers, err := ParseRects(tt.block)
			if err != nil {
				t.Fatalf("ParseRects: %v", err)
			}
			if len(centers) != tt.want {
				t.Errorf("len(centers) = %d, want %d", len(centers), tt.want)
			}
		})
	}
}

func TestParseRectsMalformedCorner(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{"non-numeric coordinate", "a,1 2,3"},
		{"missing comma", "12 3,4"},
		{"too many coordinates", "1,2,3 4,5"},
		{"valid line does not rescue bad line", "1,2 3,4\na,1 2,3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			centers, err := ParseRects(tt.block)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if centers != nil {
				t.Errorf("expected no partial result, got %d centers", len(centers))
			}
		})
	}
}

func TestDataTables(t *testing.T) {
	mx, err := ParseRects(MXRects)
	if err != nil {
		t.Fatalf("MXRects: %v", err)
	}
	if len(mx) != 50 {
		t.Errorf("len(mx) = %d, want 50", len(mx))
	}

	choc, err := ParseRects(ChocRects)
	if err != nil {
		t.Fatalf("ChocRects: %v", err)
	}
	if len(choc) != 5 {
		t.Errorf("len(choc) = %d, want 5", len(choc))
	}
}
