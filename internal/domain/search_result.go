package domain

// MaxScore is the score given to every binding when the query is empty
const MaxScore = 1.0

// MatchRange is a half-open byte range [Start, End) of matched characters
// in a binding's search text.
type MatchRange struct {
	End   int
	Start int
}

// SearchResult references a binding in the store with its match score
type SearchResult struct {
	Binding Keybinding
	Index   int
	Matches []MatchRange
	Score   float64
}

// RangesFromIndexes collapses sorted byte indexes of matched runes into ranges.
// runeLen reports the byte length of the rune starting at an index.
func RangesFromIndexes(indexes []int, runeLen func(int) int) []MatchRange {
	if len(indexes) == 0 {
		return nil
	}
	var ranges []MatchRange
	current := MatchRange{Start: indexes[0], End: indexes[0] + runeLen(indexes[0])}
	for _, idx := range indexes[1:] {
		if idx == current.End {
			current.End = idx + runeLen(idx)
			continue
		}
		ranges = append(ranges, current)
		current = MatchRange{Start: idx, End: idx + runeLen(idx)}
	}
	return append(ranges, current)
}
