package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ClosestMatches returns up to limit candidates that are close to name,
// nearest first. Candidates further than half the name's length away are
// dropped, so wildly different names produce no suggestion at all.
func ClosestMatches(name string, candidates []string, limit int) []string {
	type scored struct {
		name     string
		distance int
	}

	lowered := strings.ToLower(name)
	threshold := len(name)/2 + 1

	var matches []scored
	for _, candidate := range candidates {
		lc := strings.ToLower(candidate)
		d := levenshtein(lowered, lc)
		if strings.HasPrefix(lc, lowered) {
			d = min(d, 1)
		}
		if d <= threshold {
			matches = append(matches, scored{candidate, d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance == matches[j].distance {
			return matches[i].name < matches[j].name
		}
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, 0, limit)
	for i := 0; i < len(matches) && i < limit; i++ {
		result = append(result, matches[i].name)
	}

	return result
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []string) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Did you mean:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion))
	}

	return output.String()
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
