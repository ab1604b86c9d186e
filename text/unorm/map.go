package unorm

import (
    "github.com/tawesoft/uninorm/operator/checked/integer"
    "github.com/tawesoft/uninorm/text/grapheme"
    "github.com/tawesoft/uninorm/text/utf8codec"
)

// maxBufferRunes bounds the checked-arithmetic sizing calculation in
// MapCustom, matching spec.md §4.5's "fail OVERFLOW if decompose produces
// more than SSIZE_MAX/8 codepoints" against a signed-32-bit ceiling
// (there is no realistic input that approaches this on a Go int, but the
// check itself is the point - see spec.md §7 and §4.5).
const maxBufferRunes = 0x7FFFFFFF

// Map decodes UTF-8 input, decomposes and normalizes it according to
// options, and re-encodes the result to UTF-8. This is the two-pass
// allocation protocol of spec.md §4.5: decompose is run once to size the
// buffer, then again to fill it.
func Map(b []byte, options Options) ([]byte, error) {
    return MapCustom(b, options, nil)
}

// MapCustom is like [Map], but calls hook(cp) on every decoded codepoint
// before it enters the decomposer - the per-codepoint custom hook of
// spec.md §6's decompose_custom/map_custom.
func MapCustom(b []byte, options Options, hook func(cp rune) rune) ([]byte, error) {
    if err := options.validate(); err != nil {
        return nil, err
    }

    runes, err := decodeAll(b)
    if err != nil {
        return nil, err
    }

    count, err := decomposeAll(runes, options, hook, nil)
    if err != nil {
        return nil, err
    }

    if _, ok := integer.Mul(0, maxBufferRunes, count, 8); !ok {
        return nil, ErrOverflow
    }

    buf := make([]rune, count)
    if _, err := decomposeAll(runes, options, hook, buf); err != nil {
        return nil, err
    }

    newLen, err := NormalizeUTF32(buf, options)
    if err != nil {
        return nil, err
    }

    return Reencode(buf[:newLen], options)
}

// decodeAll decodes a full UTF-8 byte slice to codepoints, failing with
// [ErrInvalidUTF8] on the first ill-formed sequence.
func decodeAll(b []byte) ([]rune, error) {
    out := make([]rune, 0, len(b))
    i := 0
    for i < len(b) {
        var cp rune
        n := utf8codec.Iterate(b[i:], -1, &cp)
        if n < 0 {
            return nil, ErrInvalidUTF8
        }
        if n == 0 {
            break
        }
        out = append(out, cp)
        i += n
    }
    return out, nil
}

// decomposeAll runs [DecomposeChar]'s per-codepoint pipeline across an
// entire decoded buffer, threading a single grapheme-break state across
// the whole input (as spec.md §6's decompose(bytes, len, ...) does, rather
// than resetting per character). dst may be nil or too short for a
// dry-run sizing call, exactly as decomposeChar itself supports.
func decomposeAll(runes []rune, options Options, hook func(cp rune) rune, dst []rune) (int, error) {
    var state grapheme.State
    w := &writer{dst: dst}
    for _, cp := range runes {
        if hook != nil {
            cp = hook(cp)
        }
        if err := decomposeChar(cp, w, options, &state, 0); err != nil {
            return 0, err
        }
    }
    return w.n, nil
}

// Reencode re-encodes a normalized codepoint buffer to UTF-8, matching
// spec.md §4.1's charbound encoding (a -1 sentinel becomes a single 0xFF
// byte) and always appending the terminating NUL byte spec.md §4.5 and
// §6 describe.
func Reencode(buf []rune, options Options) ([]byte, error) {
    out := make([]byte, 0, len(buf)*4+1)
    var tmp [4]byte
    for _, cp := range buf {
        n := utf8codec.CharboundEncode(cp, &tmp)
        if n == 0 {
            return nil, ErrInvalidUTF8
        }
        out = append(out, tmp[:n]...)
    }
    out = append(out, 0)
    return out, nil
}

// toString strips Reencode's trailing NUL terminator before handing bytes
// back to a caller as a Go string - the convenience wrappers below are
// string-in-string-out, unlike the NUL-terminated-buffer low-level API.
func toString(b []byte) string {
    if n := len(b); n > 0 && b[n-1] == 0 {
        b = b[:n-1]
    }
    return string(b)
}

func normalizeString(s string, options Options) (string, error) {
    b, err := Map([]byte(s), options)
    if err != nil {
        return "", err
    }
    return toString(b), nil
}

// NFD, NFC, NFKD, NFKC and NFKCCasefold are the fixed-option convenience
// entry points of spec.md §4.5.
func NFD(s string) (string, error)          { return normalizeString(s, NFDOptions) }
func NFC(s string) (string, error)          { return normalizeString(s, NFCOptions) }
func NFKD(s string) (string, error)         { return normalizeString(s, NFKDOptions) }
func NFKC(s string) (string, error)         { return normalizeString(s, NFKCOptions) }
func NFKCCasefold(s string) (string, error) { return normalizeString(s, NFKCCasefoldOptions) }

const (
    version         = "1.0.0"
    unicodeVersion  = "13.0.0"
)

// Version returns this package's own version string.
func Version() string { return version }

// UnicodeVersion returns the Unicode Standard version the tables in this
// module are derived from.
func UnicodeVersion() string { return unicodeVersion }
