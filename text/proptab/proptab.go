// Package proptab is the public per-codepoint Unicode property table: the
// category, combining class, bidi class, decomposition, case mappings and
// grapheme boundary class of a single rune, backed by the two-stage table
// built in [github.com/tawesoft/uninorm/internal/udata].
//
// This mirrors utf8proc_get_property() and the convenience accessors built
// on it (utf8proc_category, utf8proc_toupper, ...), but as a family of
// small typed functions rather than one C struct pointer.
package proptab

import (
    "github.com/tawesoft/uninorm/internal/udata"
    "github.com/tawesoft/uninorm/text/dm"
    "github.com/tawesoft/uninorm/text/grapheme"
    "github.com/tawesoft/uninorm/text/seqtab"
)

// Category, BidiClass and Property re-export the udata package's types, so
// callers of this package never need to import internal/udata directly.
type Category = udata.Category
type BidiClass = udata.BidiClass
type Property = udata.Property

// The general categories, re-exported for convenience.
const (
    Cn = udata.Cn
    Lu = udata.Lu
    Ll = udata.Ll
    Lt = udata.Lt
    Lm = udata.Lm
    Lo = udata.Lo
    Mn = udata.Mn
    Mc = udata.Mc
    Me = udata.Me
    Nd = udata.Nd
    Nl = udata.Nl
    No = udata.No
    Pc = udata.Pc
    Pd = udata.Pd
    Ps = udata.Ps
    Pe = udata.Pe
    Pi = udata.Pi
    Pf = udata.Pf
    Po = udata.Po
    Sm = udata.Sm
    Sc = udata.Sc
    Sk = udata.Sk
    So = udata.So
    Zs = udata.Zs
    Zl = udata.Zl
    Zp = udata.Zp
    Cc = udata.Cc
    Cf = udata.Cf
    Cs = udata.Cs
    Co = udata.Co
)

// Get returns the full Property record for a single codepoint.
func Get(cp rune) Property {
    return udata.Get(cp)
}

// CategoryOf returns cp's Unicode general category.
func CategoryOf(cp rune) Category {
    return udata.Get(cp).Category
}

// BidiClassOf returns cp's Unicode bidi class.
func BidiClassOf(cp rune) BidiClass {
    return udata.Get(cp).BidiClass
}

// CombiningClass returns cp's canonical combining class (0 for starters).
// This is the same value as [github.com/tawesoft/uninorm/text/ccc.Of], but
// served from the unified property table rather than the standalone ccc
// range table.
func CombiningClass(cp rune) uint8 {
    return udata.Get(cp).CombiningClass
}

// Charwidth returns cp's indicative terminal column width: 0 for
// non-printing/combining codepoints, 1 for ordinary characters, 2 for wide
// (e.g. CJK, Hangul) characters.
func Charwidth(cp rune) uint8 {
    return udata.Get(cp).Charwidth
}

// IsIgnorable reports whether cp is a default-ignorable codepoint (e.g.
// soft hyphen, zero width space) - used by the ignore decomposition option.
func IsIgnorable(cp rune) bool {
    return udata.Get(cp).Ignorable
}

// IsMirrored reports whether cp is a bidi-mirrored character (brackets and
// similar paired punctuation).
func IsMirrored(cp rune) bool {
    return udata.Get(cp).BidiMirrored
}

// Boundclass returns cp's UAX #29 grapheme cluster boundary class, for use
// with [github.com/tawesoft/uninorm/text/grapheme].
func Boundclass(cp rune) grapheme.Boundclass {
    return udata.Get(cp).Boundclass
}

// DecompType returns cp's decomposition mapping type (dm.None if cp has no
// decomposition mapping of its own - note Hangul syllables always report
// dm.Canonical here, even though their mapping is computed algorithmically
// rather than tabled).
func DecompType(cp rune) dm.Type {
    return dm.Type(udata.Get(cp).DecompType)
}

// Decompose returns cp's single-step decomposition mapping (not a full
// recursive decomposition - see
// [github.com/tawesoft/uninorm/text/unorm.DecomposeChar] for that), and
// whether cp has one at all.
func Decompose(cp rune) ([]rune, bool) {
    p := udata.Get(cp)
    if p.DecompType == uint8(dm.None) {
        return nil, false
    }
    return seqtab.Decode(udata.Words, int(p.DecompSeqIndex)), true
}

// ToUpper, ToLower and ToTitle return cp's simple case mapping, or cp
// itself if it has none.
func ToUpper(cp rune) rune { return singleOr(cp, udata.Get(cp).UppercaseSeqIndex) }
func ToLower(cp rune) rune { return singleOr(cp, udata.Get(cp).LowercaseSeqIndex) }
func ToTitle(cp rune) rune { return singleOr(cp, udata.Get(cp).TitlecaseSeqIndex) }

// CaseFold returns cp's simple case-fold mapping, or cp itself if it has
// none. This module's curated data has no case-fold mapping distinct from
// simple lowercasing - see DESIGN.md.
func CaseFold(cp rune) rune { return singleOr(cp, udata.Get(cp).CasefoldSeqIndex) }

func singleOr(cp rune, idx uint16) rune {
    if idx == seqtab.NoIndex {
        return cp
    }
    return seqtab.DecodeSingle(udata.Words, int(idx))
}
