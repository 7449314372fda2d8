package domain

import "strings"

// Creativity is the requested variance of generated text
type Creativity string

const (
	CreativityNone    Creativity = "none"
	CreativityLow     Creativity = "low"
	CreativityMedium  Creativity = "medium"
	CreativityHigh    Creativity = "high"
	CreativityMaximum Creativity = "maximum"
)

// DefaultCreativity is used when no level is given
const DefaultCreativity = CreativityMedium

// Creativities lists the levels from least to most creative
var Creativities = []Creativity{
	CreativityNone,
	CreativityLow,
	CreativityMedium,
	CreativityHigh,
	CreativityMaximum,
}

// IsCreativity reports whether s names a known level (case-insensitive)
func IsCreativity(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Creativities {
		if string(c) == s {
			return true
		}
	}
	return false
}
