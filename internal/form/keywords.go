package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"tinta/internal/domain"
)

// KeywordResult reports how each token of a keyword batch was handled
type KeywordResult struct {
	// Duplicate lists each distinct keyword that was dropped as a duplicate
	Duplicate []string
	Invalid   []string
	// Removed lists every dropped duplicate occurrence, in input order
	Removed        []string
	TotalProcessed int
	Valid          []string
}

// ProcessKeywords parses comma or newline separated text into new keywords.
// Valid tokens already in existing (or earlier in the same input) are
// dropped as duplicates, compared case-insensitively. Malformed input yields
// an empty Valid list, never an error.
func ProcessKeywords(text string, existing []string) KeywordResult {
	result := KeywordResult{
		Duplicate: []string{},
		Invalid:   []string{},
		Removed:   []string{},
		Valid:     []string{},
	}

	seen := make(map[string]bool, len(existing))
	for _, k := range existing {
		seen[keywordKey(k)] = true
	}
	reported := make(map[string]bool)

	tokens := splitKeywords(text)
	result.TotalProcessed = len(tokens)

	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if !isValidKeyword(token) {
			result.Invalid = append(result.Invalid, token)
			continue
		}

		key := keywordKey(token)
		if seen[key] {
			result.Removed = append(result.Removed, token)
			if !reported[key] {
				reported[key] = true
				result.Duplicate = append(result.Duplicate, token)
			}
			continue
		}

		seen[key] = true
		result.Valid = append(result.Valid, token)
	}

	return result
}

// splitKeywords splits on commas and line breaks, keeping empty tokens so
// they are counted.
func splitKeywords(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", ",")
	return strings.Split(text, ",")
}

func isValidKeyword(token string) bool {
	if token == "" || utf8.RuneCountInString(token) > domain.KeywordMaxLength {
		return false
	}
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			continue
		}
		return false
	}
	return true
}

func keywordKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
