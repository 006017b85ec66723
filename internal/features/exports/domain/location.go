// Package domain holds the fixed lookups used by the warehouse flat-file exports.
package domain

import "strings"

var locationCodes = map[string]string{
	"18008": "AR",
	"18044": "FF",
	"22010": "40",
}

// RenderLocation maps a raw facility code to its two-letter abbreviation.
// Unknown codes render as an empty string.
func RenderLocation(code string) string {
	return locationCodes[code]
}

// RenderLocations renders every known code, space separated.
func RenderLocations(codes []string) string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if l := RenderLocation(c); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, " ")
}
