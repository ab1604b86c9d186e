package unorm

import (
    "github.com/tawesoft/uninorm/text/proptab"
)

// lump maps cp to its curated ASCII-ish equivalent, per spec.md §4.3 step
// 6: quotes to apostrophe/double-quote, dashes to hyphen-minus, divisions
// to slash, angle brackets to their ASCII form, space separators to space,
// connector punctuation to underscore, and (when both nlf2ls and nlf2ps
// are set) line/paragraph separators to LF.
//
// Per spec.md §9's open question, this always returns the substitute and
// lets the caller recurse - earlier known implementations of this table
// discarded the recursive result for a handful of cases (U+02CB, U+2223,
// U+223C, and the NLF-lump case); this package treats that as a bug and
// always returns the value to be recursed into.
func lump(cp rune, options Options) (rune, bool) {
    switch cp {
    case 0x2018, 0x2019, 0x201A, 0x201B, 0x2032, 0x2035:
        return 0x0027, true // single quotation marks, primes -> '
    case 0x201C, 0x201D, 0x201E, 0x201F, 0x2033, 0x2036:
        return 0x0022, true // double quotation marks, double primes -> "
    case 0x2010, 0x2011, 0x2012, 0x2013, 0x2014, 0x2015:
        return 0x002D, true // hyphen, non-breaking hyphen, figure/en/em dash, horizontal bar -> -
    case 0x2044, 0x2215:
        return 0x002F, true // fraction slash, division slash -> /
    case 0x2329, 0x3008:
        return 0x003C, true // left angle bracket -> <
    case 0x232A, 0x3009:
        return 0x003E, true // right angle bracket -> >
    case 0x02CB:
        return 0x0060, true // MODIFIER LETTER GRAVE ACCENT -> `
    case 0x2223:
        return 0x007C, true // DIVIDES -> |
    case 0x223C:
        return 0x007E, true // TILDE OPERATOR -> ~
    }

    if options&Nlf2ls != 0 && options&Nlf2ps != 0 {
        if cp == 0x2028 || cp == 0x2029 {
            return 0x000A, true
        }
    }

    p := proptab.Get(cp)
    switch p.Category {
    case proptab.Zs:
        return 0x0020, true
    case proptab.Pc:
        return 0x005F, true
    }

    return 0, false
}
