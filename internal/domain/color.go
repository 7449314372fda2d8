package domain

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// FilterValidColors keeps only syntactically valid hex colors, in order
func FilterValidColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if IsValidHexColor(c) {
			out = append(out, c)
		}
	}
	return out
}
