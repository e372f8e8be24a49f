// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/orthball/plateconv/pkg/types"
)

// FormatJSON writes the report as indented JSON to w. This is the primary
// output format; field order follows the Report struct.
func FormatJSON(r types.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatYAML writes the report as YAML to w.
func FormatYAML(r types.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// FormatTable writes the report as a human-readable table to w.
func FormatTable(r types.Report, w io.Writer) {
	fmt.Fprintln(w, r.Info)
	fmt.Fprintln(w, r.Scale)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-6s  %-9s  %-9s  %-10s  %s\n", "Type", "X (mm)", "Y (mm)", "SVG X", "SVG Y")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, k := range r.MXKeys {
		writeRow(w, k)
	}
	for _, k := range r.ChocKeys {
		writeRow(w, k)
	}

	fmt.Fprintf(w, "\n%d keys (%d MX, %d Choc)\n", r.Total, r.TotalMX, r.TotalChoc)
}

func writeRow(w io.Writer, k types.KeyPosition) {
	fmt.Fprintf(w, "%-6s  %-9.2f  %-9.2f  %-10.3f  %.3f\n", k.Type, k.XMM, k.YMM, k.SVGX, k.SVGY)
}
