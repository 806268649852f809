package runtime

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxSuggestionDistance is the maximal edit distance
// for a type name to be suggested.
const MaxSuggestionDistance = 3

// Suggest returns the candidate closest to the given name
// or the empty string if no candidate is close enough.
func Suggest(name string, candidates ...string) string {
	best := ""
	dist := MaxSuggestionDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d < dist {
			best, dist = c, d
		}
	}
	return best
}
