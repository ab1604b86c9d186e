package unorm

import (
    "github.com/tawesoft/uninorm/internal/udata"
    "github.com/tawesoft/uninorm/text/dm"
    "github.com/tawesoft/uninorm/text/grapheme"
    "github.com/tawesoft/uninorm/text/proptab"
    "github.com/tawesoft/uninorm/text/utf8codec"
)

// maxRecursionDepth bounds the lump/casefold/decompose recursion in
// decomposeChar. Unicode decompositions are acyclic by construction (see
// spec.md §9), so this is a defensive backstop, never a real limit.
const maxRecursionDepth = 32

// writer accumulates decomposed codepoints into dst, counting how many
// would have been written even once dst is full - the "dry run" sizing
// mode spec.md §4.3 requires of DecomposeChar.
type writer struct {
    dst []rune
    n   int
}

func (w *writer) put(r rune) {
    if w.n < len(w.dst) {
        w.dst[w.n] = r
    }
    w.n++
}

// DecomposeChar expands a single codepoint according to options, writing
// the result to dst (which may be nil or too short - see [writer]), and
// returns the number of codepoints written or that would have been
// written. state carries the grapheme-break state across successive calls
// when [Charbound] is set; pass nil if charbound is not in use.
//
// This implements spec.md §4.3's order of effects exactly: range check,
// Hangul algorithmic decomposition, rejectna, ignore, stripna, lump
// (recursive), stripmark, casefold (recursive), compose/decompose
// expansion (recursive per produced codepoint), charbound sentinel
// insertion, default emit.
func DecomposeChar(cp rune, dst []rune, options Options, state *grapheme.State) (int, error) {
    w := &writer{dst: dst}
    if err := decomposeChar(cp, w, options, state, 0); err != nil {
        return 0, err
    }
    return w.n, nil
}

func decomposeChar(cp rune, w *writer, options Options, state *grapheme.State, depth int) error {
    if depth > maxRecursionDepth {
        return nil
    }

    if !utf8codec.Valid(cp) {
        return ErrNotAssigned
    }

    if udata.IsHangulSyllable(cp) && options&(Compose|Decompose) != 0 {
        for _, r := range udata.DecomposeHangul(cp) {
            writeOne(r, w, options, state)
        }
        return nil
    }

    p := proptab.Get(cp)

    if options&Rejectna != 0 && p.Category == proptab.Cn {
        return ErrNotAssigned
    }
    if options&Ignore != 0 && p.Ignorable {
        return nil
    }
    if options&Stripna != 0 && p.Category == proptab.Cn {
        return nil
    }
    if options&Lump != 0 {
        if r, ok := lump(cp, options); ok {
            return decomposeChar(r, w, options&^Lump, state, depth+1)
        }
    }
    if options&Stripmark != 0 && p.Category.IsMark() {
        return nil
    }
    if options&Casefold != 0 {
        if f := proptab.CaseFold(cp); f != cp {
            return decomposeChar(f, w, options, state, depth+1)
        }
    }
    if options&(Compose|Decompose) != 0 {
        dt := dm.Type(p.DecompType)
        if dt == dm.Canonical || (dt != dm.None && options&Compat != 0) {
            seq, _ := proptab.Decompose(cp)
            for _, r := range seq {
                if err := decomposeChar(r, w, options, state, depth+1); err != nil {
                    return err
                }
            }
            return nil
        }
    }

    writeOne(cp, w, options, state)
    return nil
}

// writeOne appends cp to w, first inserting a -1 grapheme-boundary
// sentinel if [Charbound] is set and a boundary is permitted here.
func writeOne(cp rune, w *writer, options Options, state *grapheme.State) {
    if options&Charbound != 0 && state != nil {
        left := grapheme.Boundclass(*state)
        right := proptab.Boundclass(cp)
        if grapheme.BreakStateful(left, right, state) {
            w.put(-1)
        }
    }
    w.put(cp)
}
