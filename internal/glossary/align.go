package glossary

import (
	"sort"

	"github.com/valpere/perevir/internal/xliff"
)

// Pair is a heuristically aligned terminology candidate with its occurrence
// count and the ids of the units it was seen in.
type Pair struct {
	Source string
	Target string
	Count  int
	IDs    map[string]struct{}
}

// Term is one unmatched candidate together with its provenance, used for
// deterministic reporting.
type Term struct {
	Term string
	IDs  []string // sorted
}

// Glossary accumulates the result of one mining pass.
type Glossary struct {
	// Pairs is keyed by the exact (source term, target term) string pair.
	Pairs map[[2]string]*Pair
	// SourceUnmatched and TargetUnmatched map unmatched candidate terms to
	// the ids of the units they appeared in.
	SourceUnmatched map[string]map[string]struct{}
	TargetUnmatched map[string]map[string]struct{}
}

// Build mines terminology candidates from units. A unit with exactly one
// source candidate and exactly one target candidate records an aligned
// pair; any other unit contributes all of its candidates to the unmatched
// bins instead. Alignment is exact-count and per-unit only — the result is
// independent of the order units are processed in.
func Build(units []xliff.Unit) *Glossary {
	g := &Glossary{
		Pairs:           make(map[[2]string]*Pair),
		SourceUnmatched: make(map[string]map[string]struct{}),
		TargetUnmatched: make(map[string]map[string]struct{}),
	}

	for _, u := range units {
		srcTerms := SourceCandidates(u.Source)
		tgtTerms := TargetCandidates(u.Target)

		if len(srcTerms) == 1 && len(tgtTerms) == 1 {
			key := [2]string{srcTerms[0], tgtTerms[0]}
			p, ok := g.Pairs[key]
			if !ok {
				p = &Pair{Source: srcTerms[0], Target: tgtTerms[0], IDs: make(map[string]struct{})}
				g.Pairs[key] = p
			}
			p.Count++
			p.IDs[u.ID] = struct{}{}
			continue
		}

		for _, term := range srcTerms {
			addUnmatched(g.SourceUnmatched, term, u.ID)
		}
		for _, term := range tgtTerms {
			addUnmatched(g.TargetUnmatched, term, u.ID)
		}
	}
	return g
}

func addUnmatched(bin map[string]map[string]struct{}, term, id string) {
	ids, ok := bin[term]
	if !ok {
		ids = make(map[string]struct{})
		bin[term] = ids
	}
	ids[id] = struct{}{}
}

// SortedPairs returns the aligned pairs ordered by descending count, ties
// broken by ascending source term, then ascending target term.
func (g *Glossary) SortedPairs() []*Pair {
	pairs := make([]*Pair, 0, len(g.Pairs))
	for _, p := range g.Pairs {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].Source != pairs[j].Source {
			return pairs[i].Source < pairs[j].Source
		}
		return pairs[i].Target < pairs[j].Target
	})
	return pairs
}

// SortedIDs returns the pair's unit ids in ascending order.
func (p *Pair) SortedIDs() []string {
	return sortedKeys(p.IDs)
}

// SortUnmatched flattens an unmatched bin into terms ordered by descending
// occurrence count, ties broken by ascending term.
func SortUnmatched(bin map[string]map[string]struct{}) []Term {
	terms := make([]Term, 0, len(bin))
	for term, ids := range bin {
		terms = append(terms, Term{Term: term, IDs: sortedKeys(ids)})
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i].IDs) != len(terms[j].IDs) {
			return len(terms[i].IDs) > len(terms[j].IDs)
		}
		return terms[i].Term < terms[j].Term
	})
	return terms
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
