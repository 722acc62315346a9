/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

// Format is an output encoding.
type Format string

const (
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"

	// FormatTable renders a flattened FIELD/VALUE table for terminals.
	FormatTable Format = "table"

	// StdoutURI is the special output path indicating output should be written to stdout.
	StdoutURI = "-"

	// emptyMarker is printed in table output for empty collections.
	emptyMarker = "<empty>"

	// nilMarker is printed in table output for null values.
	nilMarker = "<nil>"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns the names of all supported formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}
