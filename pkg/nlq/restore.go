package nlq

import (
	"regexp"
	"sort"
	"strings"
)

// MergeCasefoldMaps unions casefold maps left to right; later maps win on
// key collision. The translation pipeline merges the schema-derived map
// first and the question-derived supplementary map last, so question
// tokens take priority over schema identifiers with the same casefold.
func MergeCasefoldMaps(maps ...CasefoldMap) CasefoldMap {
	merged := make(CasefoldMap)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// Restore rewrites every occurrence of a casefolded key in text with its
// canonical original-case form, in a single left-to-right non-overlapping
// pass. Keys are matched as literal substrings. When several keys match
// at the same offset the longest key wins, so a short identifier nested
// inside a longer one ("id" inside "userid") never clobbers it.
//
// Output is deterministic for a fixed text and map; an empty map returns
// text unchanged.
func Restore(text string, m CasefoldMap) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return text
	}

	// Go's regexp prefers alternatives in pattern order at a given
	// offset, so longest-first ordering is the longest-match tie-break.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = regexp.QuoteMeta(k)
	}
	pattern := regexp.MustCompile(strings.Join(escaped, "|"))

	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		if canonical, ok := m[match]; ok {
			return canonical
		}
		return match
	})
}
