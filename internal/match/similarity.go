package match

import "github.com/agnivade/levenshtein"

// Similarity returns a normalized edit-distance similarity in [0,1]:
// 1 means identical, 0 means nothing in common. Inputs are expected to be
// canonicalized already (normalize.Key).
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if dist >= maxLen {
		return 0
	}
	return 1 - float64(dist)/float64(maxLen)
}
