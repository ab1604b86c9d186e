// Package combtab implements the primary+combiner -> composed-codepoint
// lookup table used by canonical composition: a two-level index, keyed by
// starter codepoint, of small per-starter {min, max, entries...} records.
//
// The table is built once, at init, from [github.com/tawesoft/uninorm/text/dm]'s
// curated canonical decomposition mappings: every two-codepoint canonical
// mapping S+C -> X is also a valid composition X = S+C, so this package
// is the reverse index of that same curated data rather than a second,
// independently-curated dataset.
package combtab

import (
    "sort"

    "github.com/tawesoft/uninorm/text/dm"
)

// CombIndex flags, matching the bit layout of the Property.comb_index
// field this package feeds into
// [github.com/tawesoft/uninorm/text/proptab]: bit 15 set means "this is a
// combiner, not a primary starter"; bit 14 on a combiner means its
// composition results are two words wide (a supplementary codepoint).
const (
    CombinerFlag      = uint16(0x8000)
    SupplementaryFlag = uint16(0x4000)
    idMask            = uint16(0x3FFF)
)

// Words is the flat combination table: per starter, two header words
// (min combiner, max combiner) followed by one entry per combiner in
// [min, max], holding the composed codepoint or 0 for "no composition".
var Words []uint16

// starters maps a primary starter codepoint to its record's offset into
// Words (a valid comb_index with bit 15 clear).
var starters = map[rune]uint16{}

// combiners maps a combining codepoint to its comb_index (bit 15 set,
// bits 0-13 its combiner id).
var combiners = map[rune]uint16{}

// scanLimit bounds the codepoint range swept for canonical pairs when
// building the table. Every composable pair in this module's curated
// dataset is well inside the Basic Multilingual Plane.
const scanLimit = 0x30000

type pair struct {
    starter, combiner, composed rune
}

func init() {
    var pairs []pair
    for cp := rune(0); cp < scanLimit; cp++ {
        dt, m := dm.Map(cp)
        if dt == dm.Canonical && len(m) == 2 {
            pairs = append(pairs, pair{m[0], m[1], cp})
        }
    }

    sort.Slice(pairs, func(i, j int) bool {
        if pairs[i].starter != pairs[j].starter {
            return pairs[i].starter < pairs[j].starter
        }
        return pairs[i].combiner < pairs[j].combiner
    })

    i := 0
    for i < len(pairs) {
        j := i
        starter := pairs[i].starter
        for j < len(pairs) && pairs[j].starter == starter {
            j++
        }
        group := pairs[i:j]

        min := uint16(group[0].combiner)
        max := uint16(group[len(group)-1].combiner)
        base := uint16(len(Words))

        entries := make([]uint16, int(max-min)+1)
        for _, p := range group {
            entries[uint16(p.combiner)-min] = uint16(p.composed)
        }

        Words = append(Words, min, max)
        Words = append(Words, entries...)

        starters[starter] = base
        for _, p := range group {
            combiners[p.combiner] = CombinerFlag | (uint16(p.combiner) & idMask)
        }

        i = j
    }
}

// StarterIndex returns cp's comb_index as a primary starter (bit 15
// clear), and whether cp is a primary starter at all.
func StarterIndex(cp rune) (uint16, bool) {
    idx, ok := starters[cp]
    return idx, ok
}

// CombinerIndex returns cp's comb_index as a combiner (bit 15 set), and
// whether cp is ever used as the right-hand side of a composition.
func CombinerIndex(cp rune) (uint16, bool) {
    idx, ok := combiners[cp]
    return idx, ok
}

// Try attempts to compose a starter codepoint s with a combining
// codepoint c. Composition is refused unless s is a primary starter and c
// a combiner - matching the spec's requirement that composition never
// crosses a non-primary starter or a non-combiner.
func Try(s, c rune) (rune, bool) {
    sIdx, ok := starters[s]
    if !ok {
        return 0, false
    }
    cIdx, ok := combiners[c]
    if !ok {
        return 0, false
    }

    id := cIdx & idMask
    min := Words[sIdx]
    max := Words[sIdx+1]
    if id < min || id > max {
        return 0, false
    }

    entry := Words[sIdx+2+(id-min)]
    if entry == 0 {
        return 0, false
    }

    if cIdx&SupplementaryFlag != 0 {
        // Not exercised by this module's curated dataset: no curated
        // canonical pair composes to a codepoint above U+FFFF, so the
        // two-word stride this would require never arises here. See
        // DESIGN.md.
        return 0, false
    }

    return rune(entry), true
}
