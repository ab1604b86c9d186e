// Package grapheme implements the pair-plus-state automaton of [UAX #29]
// extended grapheme cluster boundaries: a subset of the break rules,
// including GB11 (emoji ZWJ sequences) and GB12/GB13 (regional indicator
// pairs), both of which require a carried state rather than a pure
// pairwise lookup.
//
// This is a break detector only; it carries no decomposition or
// composition state of its own and does not belong to the normal forms in
// [github.com/tawesoft/uninorm/text/unorm]. See [Clusters] for a streaming
// cluster splitter built on top of it.
//
// [UAX #29]: https://unicode.org/reports/tr29/
package grapheme

import (
    "io"

    "github.com/tawesoft/uninorm/text/runeio"
)

// Boundclass is the UAX #29 grapheme-cluster-boundary class of a codepoint,
// as looked up via a property table (see
// [github.com/tawesoft/uninorm/text/proptab.Boundclass]).
//
// Start is not a real codepoint class; it is only ever seen as the initial
// value of a [State], meaning "no codepoint has been seen yet".
type Boundclass int

const (
    Start Boundclass = iota
    Other
    CR
    LF
    Control
    Extend
    L
    V
    T
    LV
    LVT
    RegionalIndicator
    SpacingMark
    Prepend
    ZWJ
    EBase
    EModifier
    GlueAfterZWJ
    EBaseGCM
    ExtendedPictographic
    EZWG // synthetic: "ExtendedPictographic, ZWJ" carried state
)

func (b Boundclass) String() string {
    switch b {
    case Start: return "Start"
    case Other: return "Other"
    case CR: return "CR"
    case LF: return "LF"
    case Control: return "Control"
    case Extend: return "Extend"
    case L: return "L"
    case V: return "V"
    case T: return "T"
    case LV: return "LV"
    case LVT: return "LVT"
    case RegionalIndicator: return "RegionalIndicator"
    case SpacingMark: return "SpacingMark"
    case Prepend: return "Prepend"
    case ZWJ: return "ZWJ"
    case EBase: return "EBase"
    case EModifier: return "EModifier"
    case GlueAfterZWJ: return "GlueAfterZWJ"
    case EBaseGCM: return "EBaseGCM"
    case ExtendedPictographic: return "ExtendedPictographic"
    case EZWG: return "EZWG"
    }
    return "Boundclass(?)"
}

// State is grapheme-break state carried between successive calls to
// [BreakStateful]. Its zero value is [Start], meaning "start of text" - the
// correct initial value before the first codepoint of a cluster-scanning
// pass.
//
// A State must not be shared between concurrent scans; each caller (or
// each stream) owns its own State value.
type State Boundclass

// Break reports whether a grapheme cluster boundary is permitted between
// two codepoints with the given boundary classes, without tracking any
// state. This is sufficient for every rule except GB11 (extended
// pictographic + ZWJ sequences) and the odd/even pairing half of
// GB12/GB13 (regional indicators), both of which require [BreakStateful].
func Break(left, right Boundclass) bool {
    return breakSimple(left, right)
}

// BreakStateful reports whether a grapheme cluster boundary is permitted
// between two codepoints with the given boundary classes, implementing the
// full rule subset in this package's documentation (GB1, GB3-GB9b, GB11,
// GB12/13, GB999), and advances *state for the next call.
//
// Pass a *state initialised to its zero value (equivalently, [Start]) for
// the first codepoint of a scan.
func BreakStateful(left, right Boundclass, state *State) bool {
    lbc := left
    if state != nil && Boundclass(*state) != Start {
        lbc = Boundclass(*state)
    }

    brk := breakSimple(lbc, right)

    if state != nil {
        switch {
        case lbc == RegionalIndicator && right == RegionalIndicator:
            // GB12/13: this pair is consumed; force the next regional
            // indicator to see a fresh, un-paired left side.
            *state = State(Other)
        case lbc == ExtendedPictographic:
            switch right {
            case Extend:
                *state = State(ExtendedPictographic)
            case ZWJ:
                *state = State(EZWG)
            default:
                *state = State(right)
            }
        case lbc == EZWG && right == ExtendedPictographic:
            // GB11: ExtPict Extend* ZWJ ExtPict - no break. EZWG is
            // synthetic (not a real Boundclass breakSimple knows about),
            // so breakSimple falls through to its GB999 default here and
            // would otherwise report a break.
            brk = false
            *state = State(ExtendedPictographic)
        default:
            *state = State(right)
        }
    }

    return brk
}

// breakSimple implements GB1, GB3-GB9b, GB12/13's pairwise half, and GB999.
// GB11's carried-state half is layered on top by [BreakStateful].
func breakSimple(lbc, tbc Boundclass) bool {
    switch {
    case lbc == Start:
        return true // GB1
    case lbc == CR && tbc == LF:
        return false // GB3
    case lbc == CR || lbc == LF || lbc == Control:
        return true // GB4
    case tbc == CR || tbc == LF || tbc == Control:
        return true // GB5
    case lbc == L && (tbc == L || tbc == V || tbc == LV || tbc == LVT):
        return false // GB6
    case (lbc == LV || lbc == V) && (tbc == V || tbc == T):
        return false // GB7
    case (lbc == LVT || lbc == T) && tbc == T:
        return false // GB8
    case tbc == Extend || tbc == ZWJ:
        return false // GB9
    case tbc == SpacingMark:
        return false // GB9a
    case lbc == Prepend:
        return false // GB9b
    case lbc == RegionalIndicator && tbc == RegionalIndicator:
        return false // GB12/13 (pairwise half; state handles the rest)
    default:
        return true // GB999
    }
}

// Clusters splits a stream into extended grapheme clusters, returning a
// function that yields one cluster (as a string) per call, and a final
// io.EOF once the stream is exhausted.
//
// This is an ambient convenience built on [runeio.Reader] and this
// package's [BreakStateful]; it is NOT the streaming normalizer explicitly
// excluded by this module's specification - it carries only the grapheme
// State, never a decomposition or composition buffer.
func Clusters(r io.Reader, boundclassOf func(rune) Boundclass) func() (string, error) {
    rd := runeio.NewReader(r)
    var state State
    var pending rune
    havePending := false

    return func() (string, error) {
        var buf []rune

        if havePending {
            buf = append(buf, pending)
            havePending = false
        } else {
            x, err := rd.Next()
            if err != nil {
                return "", err
            }
            buf = append(buf, x)
        }

        for {
            x, err := rd.Next()
            if err != nil {
                return string(buf), nil
            }

            left := boundclassOf(buf[len(buf)-1])
            right := boundclassOf(x)
            if BreakStateful(left, right, &state) {
                pending = x
                havePending = true
                return string(buf), nil
            }
            buf = append(buf, x)
        }
    }
}
