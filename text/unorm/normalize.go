package unorm

import (
    "github.com/tawesoft/uninorm/internal/udata"
    "github.com/tawesoft/uninorm/text/ccc"
    "github.com/tawesoft/uninorm/text/combtab"
    "github.com/tawesoft/uninorm/text/proptab"
)

// NormalizeUTF32 runs the three normalizer phases of spec.md §4.4 over buf
// in place (NLF canonicalization/control stripping, canonical reordering,
// and - if [Compose] is set - canonical and Hangul composition), and
// returns the buffer's new length. buf must hold exactly the codepoints to
// normalize; trim it to the count [DecomposeChar]/the decompose pass
// actually produced before calling this.
//
// Canonical reordering is done by [ccc.ReorderRunes], so a run of more than
// 30 consecutive non-starters makes this return [ccc.ErrMaxNonStarters]
// instead of a normalized buffer.
func NormalizeUTF32(buf []rune, options Options) (int, error) {
    buf = phaseA(buf, options)

    if err := ccc.ReorderRunes(buf); err != nil {
        return 0, err
    }

    if options&Compose != 0 {
        buf = composePass(buf, options)
    }

    return len(buf), nil
}

// phaseA implements spec.md §4.4 Phase A: NLF sequences (CR, LF, CRLF,
// NEL, and - if stripcc - VT, FF) collapse to a single codepoint chosen by
// the nlf2ls/nlf2ps options (LF if both, LS if only nlf2ls, PS if only
// nlf2ps, SPACE otherwise); other C0/C1 controls are dropped (TAB becomes
// SPACE) if stripcc is set. Operates in place: the result is never longer
// than the input.
func phaseA(buf []rune, options Options) []rune {
    if options&(Nlf2ls|Nlf2ps|Stripcc) == 0 {
        return buf
    }

    nlfTarget := rune(0x0020)
    switch {
    case options&Nlf2ls != 0 && options&Nlf2ps != 0:
        nlfTarget = 0x000A
    case options&Nlf2ls != 0:
        nlfTarget = 0x2028
    case options&Nlf2ps != 0:
        nlfTarget = 0x2029
    }

    out := buf[:0]
    i := 0
    for i < len(buf) {
        c := buf[i]
        switch {
        case c == 0x000D && i+1 < len(buf) && buf[i+1] == 0x000A:
            out = append(out, nlfTarget)
            i += 2
        case c == 0x000D || c == 0x000A || c == 0x0085:
            out = append(out, nlfTarget)
            i++
        case options&Stripcc != 0 && (c == 0x000B || c == 0x000C):
            out = append(out, nlfTarget)
            i++
        case options&Stripcc != 0 && c == 0x0009:
            out = append(out, 0x0020)
            i++
        case options&Stripcc != 0 && ((c >= 0x0000 && c <= 0x001F) || (c >= 0x007F && c <= 0x009F)):
            i++ // dropped
        default:
            out = append(out, c)
            i++
        }
    }
    return out
}

// composePass implements spec.md §4.4 Phase C over an already
// canonical-order buffer: a single left-to-right pass that attempts
// Hangul L+V, Hangul LV+T, and table composition against the current
// starter, blocked by any intervening combiner of equal or higher
// combining class. Operates in place - wpos never exceeds rpos, so the
// compaction is safe.
func composePass(buf []rune, options Options) []rune {
    starterPos := -1
    maxCC := -1
    wpos := 0

    for rpos := 0; rpos < len(buf); rpos++ {
        c := buf[rpos]
        cc := int(proptab.CombiningClass(c))

        if starterPos >= 0 && cc > maxCC {
            if r, ok := tryCompose(buf[starterPos], c, options); ok {
                buf[starterPos] = r
                continue
            }
        }

        buf[wpos] = c
        if cc == 0 {
            starterPos = wpos
            maxCC = -1
        } else if cc > maxCC {
            maxCC = cc
        }
        wpos++
    }

    return buf[:wpos]
}

// tryCompose attempts to compose starter s with combiner c: Hangul L+V,
// Hangul LV+T, then table composition via [combtab.Try]. A stable-mode
// composition exclusion refuses the table-composition result.
func tryCompose(s, c rune, options Options) (rune, bool) {
    if s >= udata.LBase && s < udata.LBase+udata.LCount &&
        c >= udata.VBase && c < udata.VBase+udata.VCount {
        lIdx := s - udata.LBase
        vIdx := c - udata.VBase
        return udata.SBase + (lIdx*udata.VCount+vIdx)*udata.TCount, true
    }

    if udata.IsHangulLV(s) && c >= udata.TBase && c < udata.TBase+udata.TCount {
        return s + (c - udata.TBase), true
    }

    r, ok := combtab.Try(s, c)
    if !ok {
        return 0, false
    }
    if options&Stable != 0 && proptab.Get(r).CompExclusion {
        return 0, false
    }
    return r, true
}
