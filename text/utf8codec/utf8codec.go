// Package utf8codec implements the UTF-8 decode/encode primitives this
// module's normalization pipeline is built on: a single-codepoint decoder
// with the exact lead-byte and continuation-byte validation of the Unicode
// Standard's table of ill-formed subsequences, and a single-codepoint
// encoder that (for historical API compatibility) still encodes surrogate
// codepoints rather than rejecting them.
package utf8codec

// Invalid is returned by [Iterate] when it cannot decode a well-formed
// codepoint at the front of the input.
const Invalid = -3

// Iterate decodes a single codepoint from the front of b.
//
// n bounds how many bytes of b may be read; a negative n means "length
// unknown, assume at most four bytes are available" (the longest possible
// UTF-8 sequence). An n larger than four is treated as four, and an n
// larger than len(b) is clamped to len(b).
//
// *out is set to the decoded codepoint, or -1 on any error or on empty
// input. Returns the number of bytes consumed (0 on empty input), or a
// negative error code ([Invalid]) if the bytes at the front of b do not
// form a well-formed UTF-8 sequence.
func Iterate(b []byte, n int, out *rune) int {
    *out = -1

    if n < 0 || n > 4 {
        n = 4
    }
    if n > len(b) {
        n = len(b)
    }
    if n == 0 {
        return 0
    }

    lead := b[0]

    switch {
    case lead <= 0x7F:
        *out = rune(lead)
        return 1

    case lead < 0xC2 || lead > 0xF4:
        return Invalid

    case lead <= 0xDF: // 2-byte sequence
        if n < 2 || !isCont(b[1]) {
            return Invalid
        }
        *out = (rune(lead&0x1F) << 6) | rune(b[1]&0x3F)
        return 2

    case lead <= 0xEF: // 3-byte sequence
        if n < 3 || !isCont(b[1]) || !isCont(b[2]) {
            return Invalid
        }
        if lead == 0xED && b[1] > 0x9F {
            return Invalid // would encode a surrogate
        }
        cp := (rune(lead&0x0F) << 12) | (rune(b[1]&0x3F) << 6) | rune(b[2]&0x3F)
        if cp < 0x800 {
            return Invalid // over-long
        }
        *out = cp
        return 3

    default: // 4-byte sequence, lead in [0xF0, 0xF4]
        if n < 4 || !isCont(b[1]) || !isCont(b[2]) || !isCont(b[3]) {
            return Invalid
        }
        if lead == 0xF0 && b[1] < 0x90 {
            return Invalid // over-long
        }
        if lead == 0xF4 && b[1] > 0x8F {
            return Invalid // beyond U+10FFFF
        }
        cp := (rune(lead&0x07) << 18) | (rune(b[1]&0x3F) << 12) |
            (rune(b[2]&0x3F) << 6) | rune(b[3]&0x3F)
        *out = cp
        return 4
    }
}

func isCont(b byte) bool {
    return b&0xC0 == 0x80
}

// Valid reports whether cp is a valid Unicode scalar value: in range
// [0, 0x110000) and not a surrogate.
func Valid(cp rune) bool {
    if cp < 0 || cp >= 0x110000 {
        return false
    }
    return cp < 0xD800 || cp >= 0xE000
}

// Encode writes the UTF-8 encoding of cp to out and returns the number of
// bytes written.
//
// Codepoints in the surrogate range [0xD800, 0xE000) are still encoded to
// their three-byte form, asymmetric with [Iterate]'s rejection of
// surrogates on input; see this module's design notes on why the
// historical encode/decode asymmetry is preserved. Codepoints outside
// [0, 0x110000) or negative write nothing and return 0.
func Encode(cp rune, out *[4]byte) int {
    switch {
    case cp < 0:
        return 0
    case cp < 0x80:
        out[0] = byte(cp)
        return 1
    case cp < 0x800:
        out[0] = 0xC0 | byte(cp>>6)
        out[1] = 0x80 | byte(cp&0x3F)
        return 2
    case cp < 0x10000:
        out[0] = 0xE0 | byte(cp>>12)
        out[1] = 0x80 | byte((cp>>6)&0x3F)
        out[2] = 0x80 | byte(cp&0x3F)
        return 3
    case cp < 0x110000:
        out[0] = 0xF0 | byte(cp>>18)
        out[1] = 0x80 | byte((cp>>12)&0x3F)
        out[2] = 0x80 | byte((cp>>6)&0x3F)
        out[3] = 0x80 | byte(cp&0x3F)
        return 4
    default:
        return 0
    }
}

// CharboundEncode is like [Encode], except that the grapheme-cluster
// boundary sentinel cp == -1 is encoded as a single 0xFF byte - a value
// that can never otherwise appear in well-formed UTF-8, so it is safe to
// use as an in-band marker when the charbound option is active.
func CharboundEncode(cp rune, out *[4]byte) int {
    if cp == -1 {
        out[0] = 0xFF
        return 1
    }
    return Encode(cp, out)
}
