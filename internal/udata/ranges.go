package udata

import (
    "sort"

    "github.com/tawesoft/uninorm/text/grapheme"
)

// overlay is a curated, hand-authored range of codepoints sharing a
// General_Category, Bidi_Class, char width, and grapheme boundary class -
// the same "sorted non-overlapping ranges, binary search" shape already
// used by [github.com/tawesoft/uninorm/text/ccc] and
// [github.com/tawesoft/uninorm/text/dm]'s own curated tables.
//
// This is a curated subset of Unicode 13.0.0 (ASCII, Latin-1, Greek,
// Cyrillic, Hangul jamo, the general punctuation/symbol/emoji ranges this
// module's test vectors exercise), not the full Unicode Character
// Database - see DESIGN.md.
type overlay struct {
    start, end rune // half-open
    category   Category
    bidi       BidiClass
    width      uint8
    boundclass grapheme.Boundclass
    ignorable  bool
    mirrored   bool
}

var overlays []overlay

func init() {
    overlays = []overlay{
        // C0 controls
        {0x0000, 0x0009, Cc, BN, 0, grapheme.Control, false, false},
        {0x0009, 0x000A, Cc, S, 0, grapheme.Control, false, false},   // TAB
        {0x000A, 0x000B, Cc, B, 0, grapheme.LF, false, false},        // LF
        {0x000B, 0x000D, Cc, BN, 0, grapheme.Control, false, false}, // VT, FF
        {0x000D, 0x000E, Cc, B, 0, grapheme.CR, false, false},        // CR
        {0x000E, 0x0020, Cc, BN, 0, grapheme.Control, false, false},
        {0x0020, 0x0021, Zs, WS, 1, grapheme.Other, false, false}, // SPACE

        // ASCII punctuation and symbols
        {0x0021, 0x0023, Po, ON, 1, grapheme.Other, false, false}, // ! "
        {0x0023, 0x0026, Po, ET, 1, grapheme.Other, false, false}, // # $ %
        {0x0026, 0x0027, Po, ON, 1, grapheme.Other, false, false}, // &
        {0x0027, 0x0028, Po, ON, 1, grapheme.Other, false, false}, // '
        {0x0028, 0x0029, Ps, ON, 1, grapheme.Other, false, true},  // (
        {0x0029, 0x002A, Pe, ON, 1, grapheme.Other, false, true},  // )
        {0x002A, 0x002B, Po, ON, 1, grapheme.Other, false, false}, // *
        {0x002B, 0x002C, Sm, ES, 1, grapheme.Other, false, false}, // +
        {0x002C, 0x002D, Po, CS, 1, grapheme.Other, false, false}, // ,
        {0x002D, 0x002E, Pd, ES, 1, grapheme.Other, false, false}, // - HYPHEN-MINUS
        {0x002E, 0x002F, Po, CS, 1, grapheme.Other, false, false}, // .
        {0x002F, 0x0030, Po, CS, 1, grapheme.Other, false, false}, // /
        {0x0030, 0x003A, Nd, EN, 1, grapheme.Other, false, false}, // 0-9
        {0x003A, 0x003C, Po, CS, 1, grapheme.Other, false, false}, // : ;
        {0x003C, 0x003D, Sm, ON, 1, grapheme.Other, false, true},  // <
        {0x003D, 0x003E, Sm, ON, 1, grapheme.Other, false, false}, // =
        {0x003E, 0x003F, Sm, ON, 1, grapheme.Other, false, true},  // >
        {0x003F, 0x0041, Po, ON, 1, grapheme.Other, false, false}, // ? @
        {0x0041, 0x005B, Lu, L, 1, grapheme.Other, false, false},  // A-Z
        {0x005B, 0x005C, Ps, ON, 1, grapheme.Other, false, true},  // [
        {0x005C, 0x005D, Po, ON, 1, grapheme.Other, false, false}, // backslash
        {0x005D, 0x005E, Pe, ON, 1, grapheme.Other, false, true},  // ]
        {0x005E, 0x005F, Sk, ON, 1, grapheme.Other, false, false}, // ^
        {0x005F, 0x0060, Pc, ON, 1, grapheme.Other, false, false}, // _
        {0x0060, 0x0061, Sk, ON, 1, grapheme.Other, false, false}, // `
        {0x0061, 0x007B, Ll, L, 1, grapheme.Other, false, false},  // a-z
        {0x007B, 0x007C, Ps, ON, 1, grapheme.Other, false, true},  // {
        {0x007C, 0x007D, Sm, ON, 1, grapheme.Other, false, false}, // |
        {0x007D, 0x007E, Pe, ON, 1, grapheme.Other, false, true},  // }
        {0x007E, 0x007F, Sm, ON, 1, grapheme.Other, false, false}, // ~
        {0x007F, 0x00A0, Cc, BN, 0, grapheme.Control, false, false}, // DEL, C1

        // Latin-1 Supplement
        {0x00A0, 0x00A1, Zs, CS, 1, grapheme.Other, false, false},  // NBSP
        {0x00A1, 0x00A7, Po, ON, 1, grapheme.Other, false, false},
        {0x00A7, 0x00A8, Po, ON, 1, grapheme.Other, false, false},  // section sign
        {0x00A8, 0x00AA, Sk, ON, 1, grapheme.Other, false, false},
        {0x00AA, 0x00AB, Lo, L, 1, grapheme.Other, false, false},   // feminine ordinal
        {0x00AB, 0x00AC, Pi, ON, 1, grapheme.Other, false, false},
        {0x00AC, 0x00AD, Sm, ON, 1, grapheme.Other, false, false},
        {0x00AD, 0x00AE, Cf, BN, 0, grapheme.Control, true, false}, // SOFT HYPHEN
        {0x00AE, 0x00B0, Sk, ON, 1, grapheme.Other, false, false},
        {0x00B0, 0x00B1, So, ET, 1, grapheme.Other, false, false},
        {0x00B1, 0x00B2, Sm, ET, 1, grapheme.Other, false, false},
        {0x00B2, 0x00B4, No, EN, 1, grapheme.Other, false, false},  // superscript 2, 3
        {0x00B4, 0x00B5, Sk, ON, 1, grapheme.Other, false, false},
        {0x00B5, 0x00B6, Ll, L, 1, grapheme.Other, false, false},   // MICRO SIGN
        {0x00B6, 0x00B8, Po, ON, 1, grapheme.Other, false, false},
        {0x00B8, 0x00B9, Sk, ON, 1, grapheme.Other, false, false},
        {0x00B9, 0x00BA, No, EN, 1, grapheme.Other, false, false},  // superscript 1
        {0x00BA, 0x00BB, Lo, L, 1, grapheme.Other, false, false},   // masculine ordinal
        {0x00BB, 0x00BC, Pf, ON, 1, grapheme.Other, false, false},
        {0x00BC, 0x00BF, No, ON, 1, grapheme.Other, false, false},  // vulgar fractions
        {0x00BF, 0x00C0, Po, ON, 1, grapheme.Other, false, false},
        {0x00C0, 0x00D7, Lu, L, 1, grapheme.Other, false, false},   // accented uppercase (D7 excluded: multiplication sign)
        {0x00D7, 0x00D8, Sm, ON, 1, grapheme.Other, false, false},  // MULTIPLICATION SIGN
        {0x00D8, 0x00DF, Lu, L, 1, grapheme.Other, false, false},
        {0x00DF, 0x00E0, Ll, L, 1, grapheme.Other, false, false},   // SHARP S
        {0x00E0, 0x00F7, Ll, L, 1, grapheme.Other, false, false},
        {0x00F7, 0x00F8, Sm, ON, 1, grapheme.Other, false, false},  // DIVISION SIGN
        {0x00F8, 0x00FF, Ll, L, 1, grapheme.Other, false, false},
        {0x00FF, 0x0100, Ll, L, 1, grapheme.Other, false, false},

        // General Punctuation lump/NLF/quote targets
        {0x200B, 0x200C, Cf, BN, 0, grapheme.Control, true, false}, // ZERO WIDTH SPACE
        {0x200C, 0x200D, Cf, BN, 0, grapheme.Extend, true, false},  // ZWNJ
        {0x200D, 0x200E, Cf, BN, 0, grapheme.ZWJ, true, false},     // ZWJ
        {0x2010, 0x2012, Pd, ON, 1, grapheme.Other, false, false},  // hyphen, non-breaking hyphen
        {0x2013, 0x2015, Pd, ON, 1, grapheme.Other, false, false},  // en/em dash
        {0x2018, 0x201A, Pi, ON, 1, grapheme.Other, false, false},  // left/right single quote
        {0x201C, 0x201E, Pi, ON, 1, grapheme.Other, false, false},  // left/right double quote
        {0x2020, 0x2028, Po, ON, 1, grapheme.Other, false, false},
        {0x2028, 0x2029, Zl, WS, 1, grapheme.LF, false, false},     // LINE SEPARATOR
        {0x2029, 0x202A, Zp, B, 1, grapheme.LF, false, false},      // PARAGRAPH SEPARATOR
        {0x2032, 0x2034, Po, ON, 1, grapheme.Other, false, false},  // prime, double prime
        {0x203F, 0x2040, Pc, ON, 1, grapheme.Other, false, false},  // UNDERTIE
        {0x2044, 0x2045, Sm, CS, 1, grapheme.Other, false, false},  // FRACTION SLASH
        {0x2070, 0x2080, No, EN, 1, grapheme.Other, false, false},  // superscripts
        {0x2080, 0x2084, No, EN, 1, grapheme.Other, false, false},  // subscripts
        {0x2100, 0x2150, So, ON, 1, grapheme.Other, false, false},  // letterlike symbols
        {0x2150, 0x2190, No, ON, 1, grapheme.Other, false, false},  // number forms
        {0x2215, 0x2216, Sm, ON, 1, grapheme.Other, false, false},  // DIVISION SLASH
        {0x2329, 0x232B, Ps, ON, 1, grapheme.Other, false, true},   // angle brackets

        // Enclosed Alphanumerics / CJK Compatibility (lump/compat targets)
        {0x2460, 0x24B6, No, EN, 1, grapheme.Other, false, false},  // circled digits
        {0x24B6, 0x2500, Lu, L, 1, grapheme.Other, false, false},   // circled letters (approx: upper then lower)
        {0x33C4, 0x33C5, So, ON, 1, grapheme.Other, false, false},  // SQUARE CC

        // Greek and Coptic
        {0x0370, 0x0378, Lu, L, 1, grapheme.Other, false, false},
        {0x037A, 0x0391, Lu, L, 1, grapheme.Other, false, false},
        {0x0391, 0x03A2, Lu, L, 1, grapheme.Other, false, false}, // capital letters
        {0x03A3, 0x03AA, Lu, L, 1, grapheme.Other, false, false},
        {0x03AA, 0x03AC, Ll, L, 1, grapheme.Other, false, false},
        {0x03AC, 0x03C2, Ll, L, 1, grapheme.Other, false, false},
        {0x03C2, 0x03C3, Ll, L, 1, grapheme.Other, false, false}, // final sigma
        {0x03C3, 0x03CC, Ll, L, 1, grapheme.Other, false, false},
        {0x03D0, 0x03D3, Ll, L, 1, grapheme.Other, false, false}, // letterform variants
        {0x03D5, 0x03D7, Ll, L, 1, grapheme.Other, false, false},
        {0x03F0, 0x03F3, Ll, L, 1, grapheme.Other, false, false},
        {0x03F4, 0x03F6, Ll, L, 1, grapheme.Other, false, false},

        // Cyrillic
        {0x0400, 0x0410, Lu, L, 1, grapheme.Other, false, false},
        {0x0410, 0x0430, Lu, L, 1, grapheme.Other, false, false},
        {0x0430, 0x0450, Ll, L, 1, grapheme.Other, false, false},
        {0x0450, 0x0460, Ll, L, 1, grapheme.Other, false, false},

        // Hebrew letters (bidi only; no case concept)
        {0x05D0, 0x05EB, Lo, R, 1, grapheme.Other, false, false},

        // Arabic letters (bidi only)
        {0x0621, 0x0660, Lo, AL, 1, grapheme.Other, false, false},

        // Arabic-Indic and other digit systems referenced by bidi tests
        {0x0660, 0x066A, Nd, AN, 1, grapheme.Other, false, false},

        // Hangul Jamo (handled algorithmically for decomposition; tabled
        // here only for category/bidi/boundclass)
        {0x1100, 0x1113, Lo, L, 1, grapheme.L, false, false},
        {0x1161, 0x1176, Lo, L, 1, grapheme.V, false, false},
        {0x11A8, 0x11C3, Lo, L, 1, grapheme.T, false, false},

        // Arabic Presentation Forms (compat decomposition targets)
        {0xFB00, 0xFB07, Ll, L, 1, grapheme.Other, false, false},  // Latin ligatures ff, fi, fl, ffi, ffl
        {0xFB20, 0xFB29, Lo, R, 1, grapheme.Other, false, false},  // Hebrew alternates
        {0xFE10, 0xFE1A, Po, ON, 1, grapheme.Other, false, false}, // vertical forms
        {0xFE50, 0xFE53, Po, CS, 1, grapheme.Other, false, false}, // small forms
        {0xFE54, 0xFE55, Po, CS, 1, grapheme.Other, false, false},
        {0xFE8D, 0xFE93, Lo, AL, 1, grapheme.Other, false, false}, // Arabic presentation forms-A
        {0xFEFF, 0xFF00, Cf, BN, 0, grapheme.Control, true, false}, // ZERO WIDTH NO-BREAK SPACE / BOM
        {0xFF10, 0xFF1A, Nd, EN, 2, grapheme.Other, false, false}, // fullwidth digits
        {0xFF21, 0xFF3B, Lu, L, 2, grapheme.Other, false, false},  // fullwidth uppercase
        {0xFF41, 0xFF5B, Ll, L, 2, grapheme.Other, false, false},  // fullwidth lowercase
        {0xFF66, 0xFFA0, Lo, L, 1, grapheme.Other, false, false},  // halfwidth katakana

        // Regional indicators and emoji exercised by grapheme-break tests
        {0x1F1E6, 0x1F200, So, ON, 2, grapheme.RegionalIndicator, false, false},
        {0x1F600, 0x1F650, So, ON, 2, grapheme.ExtendedPictographic, false, false}, // emoticons
        {0x1F466, 0x1F470, So, ON, 2, grapheme.ExtendedPictographic, false, false}, // family emoji (boy..woman)
        {0xFE00, 0xFE10, Mn, NSM, 0, grapheme.Extend, true, false}, // variation selectors 1-16
    }

    sort.Slice(overlays, func(i, j int) bool { return overlays[i].start < overlays[j].start })
}

// overlayAt returns the curated overlay containing cp, if any.
func overlayAt(cp rune) (overlay, bool) {
    n := len(overlays)
    i := sort.Search(n, func(i int) bool { return cp < overlays[i].end })
    if i == n || cp < overlays[i].start {
        return overlay{}, false
    }
    return overlays[i], true
}
