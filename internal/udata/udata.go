// Package udata builds and serves the per-codepoint Property record that
// backs [github.com/tawesoft/uninorm/text/proptab]: a two-stage lookup
// table (a block index per 256-codepoint page, then a page of indices into
// a deduplicated Properties array), the same shape utf8proc's own
// utf8proc_property() table uses, built once at init from this module's
// other curated data sources rather than a second independent dataset.
package udata

import (
    "github.com/tawesoft/uninorm/text/ccc"
    "github.com/tawesoft/uninorm/text/combtab"
    "github.com/tawesoft/uninorm/text/dm"
    "github.com/tawesoft/uninorm/text/grapheme"
    "github.com/tawesoft/uninorm/text/seqtab"
)

// noIndex marks a Property sequence-table or combination-table field as
// "not present".
const noIndex = seqtab.NoIndex

// Property holds everything this module knows about a single codepoint.
// Unlike utf8proc's packed C bitfield struct, this is a plain comparable Go
// struct - indices into the shared [Words] sequence table stand in for the
// packed pointer/offset fields the C struct uses.
type Property struct {
    Category       Category
    CombiningClass uint8
    BidiClass      BidiClass
    Boundclass     grapheme.Boundclass
    Charwidth      uint8

    DecompType     uint8 // dm.Type, widened: None=0, Canonical=1, compat tags 2-17
    DecompSeqIndex uint16

    CasefoldSeqIndex   uint16
    UppercaseSeqIndex  uint16
    LowercaseSeqIndex  uint16
    TitlecaseSeqIndex  uint16

    // CombIndex is either a primary-starter index (bit 15 clear) or a
    // combiner index (bit 15 set, per [combtab.CombinerFlag]), or noIndex
    // if cp never takes part in canonical composition.
    CombIndex uint16

    BidiMirrored   bool
    CompExclusion  bool
    Ignorable      bool
    ControlBoundary bool
}

// Words is the shared sequence table that DecompSeqIndex, CasefoldSeqIndex,
// UppercaseSeqIndex, LowercaseSeqIndex and TitlecaseSeqIndex index into -
// see [github.com/tawesoft/uninorm/text/seqtab].
var Words []seqtab.Word

// Properties is the deduplicated table of distinct Property records;
// Stage2 holds indices into it.
var Properties []Property

// Stage1 maps a codepoint's high bits (cp >> 8) to a block index into
// Stage2. Stage2 is organised as consecutive 256-entry blocks, each one a
// page of Properties indices for the 256 codepoints sharing that high
// 8 bits.
var Stage1 []uint16
var Stage2 []uint16

const maxCodepoint = 0x110000
const blockSize = 256

func init() {
    numBlocks := maxCodepoint / blockSize
    Stage1 = make([]uint16, numBlocks)

    propIndex := make(map[Property]uint16, 4096)
    blockIndex := make(map[string]uint16, numBlocks)

    var block [blockSize]uint16
    for b := 0; b < numBlocks; b++ {
        for i := 0; i < blockSize; i++ {
            cp := rune(b*blockSize + i)
            p := propertyOf(cp)

            pi, ok := propIndex[p]
            if !ok {
                pi = uint16(len(Properties))
                Properties = append(Properties, p)
                propIndex[p] = pi
            }
            block[i] = pi
        }

        key := blockKey(block[:])
        bi, ok := blockIndex[key]
        if !ok {
            bi = uint16(len(Stage2) / blockSize)
            Stage2 = append(Stage2, block[:]...)
            blockIndex[key] = bi
        }
        Stage1[b] = bi
    }
}

func blockKey(block []uint16) string {
    buf := make([]byte, len(block)*2)
    for i, v := range block {
        buf[2*i] = byte(v)
        buf[2*i+1] = byte(v >> 8)
    }
    return string(buf)
}

// Get returns the Property record for cp. Codepoints outside the Unicode
// range return the zero-value (unassigned, Cn) record.
func Get(cp rune) Property {
    if cp < 0 || cp >= maxCodepoint {
        return Property{}
    }
    block := Stage1[cp>>8]
    return Properties[Stage2[int(block)*blockSize+int(cp&0xFF)]]
}

// propertyOf resolves a single codepoint's Property from this module's
// curated sources: the hand-authored overlay ranges in ranges.go for
// category/bidi/width/boundclass, [ccc.Of] for combining class, [dm.Map]
// for decomposition, and [combtab] for canonical composition. Hangul
// syllables bypass all of this in favour of the algorithmic formulas in
// hangul.go, matching the Unicode Standard's own treatment of the block.
func propertyOf(cp rune) Property {
    if IsHangulSyllable(cp) {
        return hangulProperty(cp)
    }

    p := Property{
        DecompSeqIndex:    noIndex,
        CasefoldSeqIndex:  noIndex,
        UppercaseSeqIndex: noIndex,
        LowercaseSeqIndex: noIndex,
        TitlecaseSeqIndex: noIndex,
        CombIndex:         noIndex,
        Charwidth:         1,
    }

    if ov, ok := overlayAt(cp); ok {
        p.Category = ov.category
        p.BidiClass = ov.bidi
        p.Charwidth = ov.width
        p.Boundclass = ov.boundclass
        p.Ignorable = ov.ignorable
        p.BidiMirrored = ov.mirrored
    } else {
        p.Category = Cn
        p.Boundclass = grapheme.Other
    }

    if c := ccc.Of(cp); c != 0 {
        p.CombiningClass = uint8(c)
        if !isMarkCategory(p.Category, Mn, Mc, Me) {
            // no curated overlay assigned a mark category: fall back to
            // the generic extending-mark defaults.
            p.Category = Mn
            p.BidiClass = NSM
            p.Boundclass = grapheme.Extend
            p.Charwidth = 0
        }
    }

    if p.Category == Cc || p.Boundclass == grapheme.Control ||
        p.Boundclass == grapheme.CR || p.Boundclass == grapheme.LF {
        p.ControlBoundary = true
    }

    if dt, seq := dm.Map(cp); dt != dm.None {
        p.DecompType = uint8(dt)
        var idx int
        Words, idx = seqtab.Append(Words, seq)
        p.DecompSeqIndex = uint16(idx)
    }

    if idx, ok := combtab.StarterIndex(cp); ok {
        p.CombIndex = idx
    } else if idx, ok := combtab.CombinerIndex(cp); ok {
        p.CombIndex = idx
    }

    if lower, upper, title, has := caseMapping(cp); has {
        var idx int
        if lower != cp {
            Words, idx = seqtab.AppendSingle(Words, lower)
            p.LowercaseSeqIndex = uint16(idx)
            p.CasefoldSeqIndex = uint16(idx)
        }
        if upper != cp {
            Words, idx = seqtab.AppendSingle(Words, upper)
            p.UppercaseSeqIndex = uint16(idx)
        }
        if title != cp {
            Words, idx = seqtab.AppendSingle(Words, title)
            p.TitlecaseSeqIndex = uint16(idx)
        }
    }

    return p
}

func isMarkCategory(c Category, any ...Category) bool {
    for _, a := range any {
        if c == a {
            return true
        }
    }
    return false
}

// hangulProperty computes the Property of a precomposed Hangul syllable
// directly from the algorithmic constants in hangul.go, rather than from
// the curated overlay/decomposition tables.
func hangulProperty(cp rune) Property {
    seq := DecomposeHangul(cp)
    var idx int
    Words, idx = seqtab.Append(Words, seq)

    bc := grapheme.LVT
    if IsHangulLV(cp) {
        bc = grapheme.LV
    }

    return Property{
        Category:          Lo,
        BidiClass:         L,
        Boundclass:        bc,
        Charwidth:         2,
        DecompType:        uint8(dm.Canonical),
        DecompSeqIndex:    uint16(idx),
        CasefoldSeqIndex:  noIndex,
        UppercaseSeqIndex: noIndex,
        LowercaseSeqIndex: noIndex,
        TitlecaseSeqIndex: noIndex,
        CombIndex:         noIndex,
    }
}

// caseRange is a curated script block with a constant upper<->lower offset
// (upper + offset == lower), the same shape ASCII, Latin-1, Greek and
// Cyrillic case pairs all share.
type caseRange struct {
    upperStart, upperEnd rune // half-open, inclusive of every upper letter in the block
    offset               rune
    skip                 map[rune]bool // codepoints within the range with no case pair
}

var caseRanges = []caseRange{
    {0x0041, 0x005B, 0x20, nil},                          // ASCII A-Z
    {0x00C0, 0x00D7, 0x20, nil},                          // Latin-1 (excludes D7 multiplication sign)
    {0x00D8, 0x00DF, 0x20, nil},                          // Latin-1 continued
    {0x0391, 0x03A2, 0x20, nil},                           // Greek capital (excludes final sigma slot)
    {0x03A3, 0x03AB, 0x20, nil},                           // Greek capital continued
    {0x0400, 0x0410, 0x50, nil},                           // Cyrillic Ѐ-Џ
    {0x0410, 0x0430, 0x20, nil},                           // Cyrillic А-Я
}

// caseMapping returns cp's simple lowercase, uppercase and titlecase
// mappings, derived algorithmically from a curated set of fixed-offset
// script blocks (no special casing exceptions, e.g. Turkish dotless I, are
// modelled - see DESIGN.md). has is false if cp has no case pair at all.
func caseMapping(cp rune) (lower, upper, title rune, has bool) {
    for _, r := range caseRanges {
        if cp >= r.upperStart && cp < r.upperEnd {
            if r.skip != nil && r.skip[cp] {
                return cp, cp, cp, false
            }
            l := cp + r.offset
            return l, cp, cp, true
        }
        lowerStart, lowerEnd := r.upperStart+r.offset, r.upperEnd+r.offset
        if cp >= lowerStart && cp < lowerEnd {
            if r.skip != nil && r.skip[cp-r.offset] {
                return cp, cp, cp, false
            }
            u := cp - r.offset
            return cp, u, u, true
        }
    }
    return cp, cp, cp, false
}
