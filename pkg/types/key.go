// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across the plateconv stages.
package types

// KeySwitchType identifies the switch family a plate cutout is sized for.
type KeySwitchType string

const (
	SwitchMX   KeySwitchType = "MX"
	SwitchChoc KeySwitchType = "Choc"
)

// KeyPosition is one key center in millimeter space. XMM and YMM are rounded
// to 2 decimals; SVGX and SVGY keep the full-precision drawing coordinates
// for traceability. Immutable after construction.
type KeyPosition struct {
	Type KeySwitchType `json:"type" yaml:"type"`
	XMM  float64       `json:"x_mm" yaml:"x_mm"`
	YMM  float64       `json:"y_mm" yaml:"y_mm"`
	SVGX float64       `json:"svg_x" yaml:"svg_x"`
	SVGY float64       `json:"svg_y" yaml:"svg_y"`
}

// Report is the aggregate emitted by a conversion run. Field order is the
// wire order: encoding/json preserves struct declaration order.
type Report struct {
	Info      string        `json:"info" yaml:"info"`
	Scale     string        `json:"scale" yaml:"scale"`
	MXKeys    []KeyPosition `json:"mx_keys" yaml:"mx_keys"`
	ChocKeys  []KeyPosition `json:"choc_keys" yaml:"choc_keys"`
	TotalMX   int           `json:"total_mx" yaml:"total_mx"`
	TotalChoc int           `json:"total_choc" yaml:"total_choc"`
	Total     int           `json:"total" yaml:"total"`
}
