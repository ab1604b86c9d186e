// Package ccc implements lookup of the Unicode Canonical Combining Class
// (ccc) property and the canonical ordering algorithm that reorders runs of
// combining characters into canonical order.
//
// See [Canonical Ordering Behavior] in the Unicode Standard, and the
// [Stream-Safe Text Format] that this package's maximum non-starter run
// length is based on.
//
// [Canonical Ordering Behavior]: https://www.unicode.org/reports/tr15/#Canonical_Ordering_Behavior
// [Stream-Safe Text Format]: https://unicode.org/reports/tr15/#Stream_Safe_Text_Format
package ccc

import (
    "errors"
    "fmt"
    "sort"
    "unicode/utf8"

    "golang.org/x/text/transform"
)

// CCC is a Unicode Canonical Combining Class value, in the range 0 to 254.
// A CCC of 0 means the codepoint is a "starter" - it does not combine with
// a preceding character.
type CCC uint8

// maxNonStarters bounds the length of any single run of consecutive
// non-starters (runes with a non-zero CCC) that this package will reorder.
// This matches the Unicode Stream-Safe Text Format's limit of 30 combining
// characters between starters, and exists so that [Reorder], [ReorderRunes]
// and [Transformer] cannot be made to do unbounded work by malicious input
// consisting of a long run of combining marks.
const maxNonStarters = 30

// ErrMaxNonStarters is returned by [Reorder], [ReorderRunes] and
// [Transformer] when an input run of non-starters is longer than this
// package is willing to reorder.
var ErrMaxNonStarters = errors.New("ccc: maximum non-starter run length exceeded")

// ccRange is a half-open range [start, end) of codepoints sharing a ccc.
type ccRange struct {
    start rune
    end   rune
    ccc   CCC
}

// Of returns the Canonical Combining Class of a single rune. Unassigned and
// unlisted codepoints have a ccc of 0 (they are starters).
func Of(r rune) CCC {
    n := len(table)
    i := sort.Search(n, func(i int) bool {
        return r < table[i].end
    })
    if i == n || r < table[i].start {
        return 0
    }
    return table[i].ccc
}

// ReorderRunes applies the canonical ordering algorithm in place: every
// maximal run of consecutive non-starters is stably sorted by increasing
// ccc. Starters (ccc 0) are left untouched and act as run boundaries.
//
// Returns [ErrMaxNonStarters] without modifying runs longer than this
// package's maximum run length.
func ReorderRunes(rs []rune) error {
    i := 0
    for i < len(rs) {
        if Of(rs[i]) == 0 {
            i++
            continue
        }

        j := i
        for j < len(rs) && Of(rs[j]) != 0 {
            j++
            if (j - i) > maxNonStarters {
                return ErrMaxNonStarters
            }
        }

        reorderRun(rs[i:j])
        i = j
    }
    return nil
}

// reorderRun stably sorts a run of non-starters by increasing ccc using
// pairwise adjacent swaps, backtracking each inserted element as far left
// as its ccc requires. The run is already bounded by maxNonStarters, so
// this is never more than quadratic in a small constant.
func reorderRun(run []rune) {
    for i := 1; i < len(run); i++ {
        j := i
        for j > 0 && Of(run[j-1]) > Of(run[j]) {
            run[j-1], run[j] = run[j], run[j-1]
            j--
        }
    }
}

// Reorder applies the canonical ordering algorithm in place to UTF-8
// encoded bytes. See [ReorderRunes].
func Reorder(b []byte) error {
    rs := []rune(string(b))
    if err := ReorderRunes(rs); err != nil {
        return err
    }
    i := 0
    for _, r := range rs {
        i += utf8.EncodeRune(b[i:], r)
    }
    return nil
}

// Transformer is a [golang.org/x/text/transform.Transformer] that applies
// the canonical ordering algorithm across a stream.
//
// Its internal buffer never holds more than one pending non-starter run
// (at most maxNonStarters runes), so it is safe to use with streams of any
// size, and returns [ErrMaxNonStarters] rather than buffering an
// unreasonably long run.
var Transformer transform.Transformer = &reorderTransformer{}

type reorderTransformer struct {
    run []rune
}

func (t *reorderTransformer) Reset() {
    t.run = t.run[:0]
}

// flush reorders and writes the pending run to dst, reporting whether there
// was enough room to do so.
func (t *reorderTransformer) flush(dst []byte, nDst *int) bool {
    if len(t.run) == 0 {
        return true
    }

    need := 0
    for _, r := range t.run {
        need += utf8.RuneLen(r)
    }
    if cap(dst)-*nDst < need {
        return false
    }

    reorderRun(t.run)
    for _, r := range t.run {
        *nDst += utf8.EncodeRune(dst[*nDst:], r)
    }
    t.run = t.run[:0]
    return true
}

func (t *reorderTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    for {
        r, rZ := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError {
            if rZ == 0 && atEOF {
                if !t.flush(dst, &nDst) {
                    return nDst, nSrc, transform.ErrShortDst
                }
                return nDst, nSrc, nil
            }
            if atEOF {
                return nDst, nSrc, fmt.Errorf("ccc: invalid utf8 sequence")
            }
            return nDst, nSrc, transform.ErrShortSrc
        }

        if Of(r) == 0 {
            if !t.flush(dst, &nDst) {
                return nDst, nSrc, transform.ErrShortDst
            }
            if cap(dst)-nDst < rZ {
                return nDst, nSrc, transform.ErrShortDst
            }
            nDst += utf8.EncodeRune(dst[nDst:], r)
            nSrc += rZ
        } else {
            if len(t.run) >= maxNonStarters {
                return nDst, nSrc, ErrMaxNonStarters
            }
            t.run = append(t.run, r)
            nSrc += rZ
        }
    }
}
