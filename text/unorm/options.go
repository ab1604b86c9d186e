// Package unorm implements the four Unicode normal forms (NFD, NFC, NFKD,
// NFKC), NFKC_Casefold, and the lower-level decompose/normalize/reencode
// pipeline they are built from: per-codepoint option-gated decomposition,
// canonical reordering and composition over a codepoint buffer, and
// re-encoding back to UTF-8.
//
// This mirrors utf8proc's public API shape - the same option bitmask
// values, the same five error kinds, the same two-pass allocation protocol
// in [Map] - expressed as Go functions and an [error] type rather than a C
// struct and negative-integer return codes.
package unorm

// Options is a bitmask of independent decomposition/normalization flags.
// The bit values match utf8proc's own option bitmask, so a caller porting
// option constants from that library needs no translation.
type Options uint32

const (
    // Nullterm: input is NUL-terminated. This module's functions already
    // take explicit-length Go strings/slices, so this flag only affects
    // behaviour where spec.md doc explicitly says so; it exists for
    // option-bitmask compatibility.
    Nullterm Options = 1 << iota
    // Stable: respect Unicode Versioning Stability (exclude composition
    // exclusions per CompositionExclusions.txt).
    Stable
    // Compat: use compatibility (not just canonical) decomposition.
    Compat
    // Compose: run the composition pass.
    Compose
    // Decompose: run the decomposition pass (no composition).
    Decompose
    // Ignore: drop default-ignorable codepoints.
    Ignore
    // Rejectna: fail with a NotAssigned error on unassigned codepoints.
    Rejectna
    // Nlf2ls: map newline sequences to U+2028 LINE SEPARATOR.
    Nlf2ls
    // Nlf2ps: map newline sequences to U+2029 PARAGRAPH SEPARATOR.
    Nlf2ps
    // Stripcc: strip control characters.
    Stripcc
    // Casefold: apply Unicode case folding.
    Casefold
    // Charbound: insert a grapheme-cluster boundary sentinel (-1) before
    // each cluster.
    Charbound
    // Lump: map a curated set of punctuation/symbols to ASCII equivalents.
    Lump
    // Stripmark: drop all combining marks (Mn, Mc, Me). Only valid
    // together with Compose or Decompose.
    Stripmark
    // Stripna: drop unassigned codepoints.
    Stripna
)

// NFDOptions, NFCOptions, NFKDOptions, NFKCOptions and NFKCCasefoldOptions
// are the option bitmasks behind this package's convenience entry points
// NFD, NFC, NFKD, NFKC and NFKCCasefold.
const (
    NFDOptions          = Nullterm | Stable | Decompose
    NFCOptions          = Nullterm | Stable | Compose
    NFKDOptions         = Nullterm | Stable | Decompose | Compat
    NFKCOptions         = Nullterm | Stable | Compose | Compat
    NFKCCasefoldOptions = Nullterm | Stable | Compose | Compat | Casefold | Ignore
)

// validate checks the option combination rules of spec.md §4.5: compose
// and decompose cannot both be set, and stripmark requires one of them.
func (o Options) validate() error {
    if o&Compose != 0 && o&Decompose != 0 {
        return ErrInvalidOpts
    }
    if o&Stripmark != 0 && o&(Compose|Decompose) == 0 {
        return ErrInvalidOpts
    }
    return nil
}
