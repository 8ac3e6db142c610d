package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to limit package names close to name, best first.
// Used to enrich lookup failures; it never affects Filter.
func (c *Catalog) Suggest(name string, limit int) []string {
	name = NormalizeQuery(name)
	if name == "" || limit <= 0 {
		return nil
	}

	names := c.Names()
	best := make(map[string]int)

	// Subsequence matches ("nhttp" -> "net/http")
	for _, rank := range fuzzy.RankFindFold(name, names) {
		best[rank.Target] = rank.Distance
	}

	// Typos ("nte/http" -> "net/http")
	maxTypos := max(2, len([]rune(name))/3)
	for _, candidate := range names {
		dist := fuzzy.LevenshteinDistance(name, strings.ToLower(candidate))
		if dist > maxTypos {
			continue
		}
		if prev, ok := best[candidate]; !ok || dist < prev {
			best[candidate] = dist
		}
	}

	suggestions := make([]string, 0, len(best))
	for candidate := range best {
		suggestions = append(suggestions, candidate)
	}
	sort.Slice(suggestions, func(i, j int) bool {
		di, dj := best[suggestions[i]], best[suggestions[j]]
		if di != dj {
			return di < dj
		}
		return suggestions[i] < suggestions[j]
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
