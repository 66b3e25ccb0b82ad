package dashboard

import (
	"errors"
	"sort"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// MinQueryLength is the shortest query the search box acts on.
const MinQueryLength = 3

const (
	nameWeight  = 0.75
	briefWeight = 0.25
)

var ErrQueryTooShort = errors.New("search query too short")

type Result struct {
	Occupation Occupation `json:"occupation"`
	Index      int        `json:"index"`
	Score      float64    `json:"score"`
}

// Index searches occupations by name and brief.
type Index struct {
	occs   []Occupation
	names  []string
	briefs []string
}

func NewIndex(occs []Occupation) *Index {
	idx := &Index{
		occs:   occs,
		names:  make([]string, len(occs)),
		briefs: make([]string, len(occs)),
	}
	for i, o := range occs {
		idx.names[i] = o.Name
		idx.briefs[i] = o.Brief
	}
	return idx
}

func (idx *Index) Len() int { return len(idx.occs) }

// Search returns matching occupations, best first. A match on the name
// counts three times as much as a match on the brief.
func (idx *Index) Search(query string) ([]Result, error) {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, ErrQueryTooShort
	}

	scores := make(map[int]float64)
	byName := make(map[int]bool)
	for _, m := range fuzzy.Find(query, idx.names) {
		scores[m.Index] += nameWeight * float64(m.Score)
		byName[m.Index] = true
	}
	for _, m := range fuzzy.Find(query, idx.briefs) {
		scores[m.Index] += briefWeight * float64(m.Score)
	}

	results := make([]Result, 0, len(scores))
	for i, s := range scores {
		results = append(results, Result{Occupation: idx.occs[i], Index: i, Score: s})
	}
	sort.Slice(results, func(a, b int) bool {
		ra, rb := results[a], results[b]
		if byName[ra.Index] != byName[rb.Index] {
			return byName[ra.Index]
		}
		if ra.Score != rb.Score {
			return ra.Score > rb.Score
		}
		return ra.Index < rb.Index
	})
	return results, nil
}

// Occupations unwraps search results for charting.
func Occupations(results []Result) []Occupation {
	out := make([]Occupation, len(results))
	for i, r := range results {
		out[i] = r.Occupation
	}
	return out
}
