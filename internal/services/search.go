package services

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
)

// Score weights, summing to 1
const (
	weightContiguity  = 0.35
	weightBoundary    = 0.25
	weightDensity     = 0.25
	weightSpecificity = 0.15
)

// SearchOptions configures the search service
type SearchOptions struct {
	IncludeDescription bool
	MaxResults         int
	Threshold          float64
}

// DefaultSearchOptions returns the options used when the config sets none
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		IncludeDescription: true,
		MaxResults:         50,
		Threshold:          0.6,
	}
}

// SearchService ranks keybindings against a fuzzy query
type SearchService struct {
	opts SearchOptions
}

// NewSearchService creates a new SearchService; the threshold is clamped to [0,1]
func NewSearchService(opts SearchOptions) *SearchService {
	opts.Threshold = max(0, min(1, opts.Threshold))
	return &SearchService{opts: opts}
}

// Options returns the effective options
func (s *SearchService) Options() SearchOptions {
	return s.opts
}

// WithIncludeDescription returns a copy that does or does not match descriptions
func (s *SearchService) WithIncludeDescription(include bool) *SearchService {
	opts := s.opts
	opts.IncludeDescription = include
	return &SearchService{opts: opts}
}

// Search returns the matching bindings ordered by descending score, ties in
// store order. An empty query yields every binding with domain.MaxScore in
// store order, uncapped.
func (s *SearchService) Search(query string, store *domain.BindingStore) iter.Seq[domain.SearchResult] {
	query = strings.TrimSpace(query)
	if query == "" {
		return func(yield func(domain.SearchResult) bool) {
			for i, b := range store.All() {
				if !yield(domain.SearchResult{Binding: b, Index: i, Score: domain.MaxScore}) {
					return
				}
			}
		}
	}

	results := s.rank(query, store)
	return slices.Values(results)
}

// SearchAll is Search collected into a slice
func (s *SearchService) SearchAll(query string, store *domain.BindingStore) []domain.SearchResult {
	return slices.Collect(s.Search(query, store))
}

func (s *SearchService) rank(query string, store *domain.BindingStore) []domain.SearchResult {
	source := newBindingSource(store, s.opts.IncludeDescription)
	candidates := fuzzy.FindFrom(query, source)

	queryRunes := foldRunes([]rune(query))
	results := make([]domain.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		text := source.texts[c.Index]
		score, positions := bestAlignment(queryRunes, text, c.MatchedIndexes)
		if score < s.opts.Threshold {
			continue
		}
		results = append(results, domain.SearchResult{
			Binding: store.At(c.Index),
			Index:   c.Index,
			Matches: domain.RangesFromIndexes(positions, runeLenAt(text)),
			Score:   score,
		})
	}

	// candidates come back sorted by the library's own score
	slices.SortFunc(results, func(a, b domain.SearchResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	if s.opts.MaxResults > 0 && len(results) > s.opts.MaxResults {
		results = results[:s.opts.MaxResults]
	}

	logging.Logger.Debug("Search completed",
		"query", query,
		"candidates", len(candidates),
		"results", len(results))
	return results
}

// bindingSource adapts a store to fuzzy.Source
type bindingSource struct {
	texts []string
}

func newBindingSource(store *domain.BindingStore, includeDescription bool) bindingSource {
	texts := make([]string, 0, store.Len())
	for _, b := range store.All() {
		texts = append(texts, b.SearchText(includeDescription))
	}
	return bindingSource{texts: texts}
}

func (b bindingSource) String(i int) string { return b.texts[i] }
func (b bindingSource) Len() int            { return len(b.texts) }

// bestAlignment scores the library's match positions and every alignment
// anchored at an occurrence of the first query rune, keeping the best.
// Positions are returned as byte offsets into text.
func bestAlignment(query []rune, text string, libraryIndexes []int) (float64, []int) {
	runes := []rune(text)
	folded := foldRunes(runes)
	offsets := runeOffsets(text)

	bestScore := -1.0
	var best []int

	consider := func(positions []int) {
		if len(positions) != len(query) {
			return
		}
		if score := scoreAlignment(runes, positions); score > bestScore {
			bestScore = score
			best = positions
		}
	}

	consider(byteToRuneIndexes(libraryIndexes, offsets))

	for start, r := range folded {
		if r == query[0] {
			consider(alignFrom(query, folded, start))
		}
	}

	if best == nil {
		return 0, nil
	}

	bytes := make([]int, len(best))
	for i, p := range best {
		bytes[i] = offsets[p]
	}
	return bestScore, bytes
}

// alignFrom matches query greedily left to right starting at start
func alignFrom(query, text []rune, start int) []int {
	positions := make([]int, 0, len(query))
	q := 0
	for i := start; i < len(text) && q < len(query); i++ {
		if text[i] == query[q] {
			positions = append(positions, i)
			q++
		}
	}
	return positions
}

// scoreAlignment normalizes an alignment to [0,1] from contiguity, boundary
// anchoring, density and specificity. positions are rune indexes.
func scoreAlignment(text []rune, positions []int) float64 {
	q := len(positions)
	if q == 0 || len(text) == 0 {
		return 0
	}

	runs := 1
	boundaryRuns := 0
	if isWordBoundary(text, positions[0]) {
		boundaryRuns++
	}
	for i := 1; i < q; i++ {
		if positions[i] == positions[i-1]+1 {
			continue
		}
		runs++
		if isWordBoundary(text, positions[i]) {
			boundaryRuns++
		}
	}

	contiguity := 1.0
	if q > 1 {
		contiguity = float64(q-runs) / float64(q-1)
	}
	boundary := float64(boundaryRuns) / float64(runs)
	span := positions[q-1] - positions[0] + 1
	density := float64(q) / float64(span)
	specificity := float64(q) / float64(len(text))

	score := weightContiguity*contiguity +
		weightBoundary*boundary +
		weightDensity*density +
		weightSpecificity*specificity
	return max(0, min(domain.MaxScore, score))
}

// isWordBoundary checks if the rune at idx starts a word or token
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || unicode.IsSymbol(prev) {
		return true
	}
	// camelCase
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

func foldRunes(runes []rune) []rune {
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}

// runeOffsets maps rune index to byte offset
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text))
	for i := range text {
		offsets = append(offsets, i)
	}
	return offsets
}

func byteToRuneIndexes(byteIndexes []int, offsets []int) []int {
	positions := make([]int, 0, len(byteIndexes))
	for _, b := range byteIndexes {
		if p, ok := slices.BinarySearch(offsets, b); ok {
			positions = append(positions, p)
		}
	}
	return positions
}

func runeLenAt(text string) func(int) int {
	return func(i int) int {
		_, size := utf8.DecodeRuneInString(text[i:])
		return size
	}
}
