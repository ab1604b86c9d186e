package proptab_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/uninorm/text/grapheme"
    "github.com/tawesoft/uninorm/text/proptab"
)

func TestCategoryOf(t *testing.T) {
    assert.Equal(t, proptab.Lu, proptab.CategoryOf('A'))
    assert.Equal(t, proptab.Ll, proptab.CategoryOf('a'))
    assert.Equal(t, proptab.Nd, proptab.CategoryOf('0'))
    assert.Equal(t, proptab.Zs, proptab.CategoryOf(' '))
    assert.Equal(t, proptab.Cn, proptab.CategoryOf(0x0378)) // unassigned Greek slot
}

func TestCaseMappings(t *testing.T) {
    assert.Equal(t, rune('a'), proptab.ToLower('A'))
    assert.Equal(t, rune('A'), proptab.ToUpper('a'))
    assert.Equal(t, rune('A'), proptab.ToTitle('a'))
    assert.Equal(t, rune('a'), proptab.ToLower('a')) // no-op when already lowercase
}

func TestHangulSyllableProperties(t *testing.T) {
    // U+AC01 (각) decomposes to L+V+T.
    seq, ok := proptab.Decompose(0xAC01)
    assert.True(t, ok)
    assert.Equal(t, []rune{0x1100, 0x1161, 0x11A8}, seq)

    assert.Equal(t, grapheme.LVT, proptab.Boundclass(0xAC01))

    // U+AC00 (가) is an LV syllable (no trailing consonant).
    assert.Equal(t, grapheme.LV, proptab.Boundclass(0xAC00))
}

func TestIgnorable(t *testing.T) {
    assert.True(t, proptab.IsIgnorable(0x00AD))  // SOFT HYPHEN
    assert.False(t, proptab.IsIgnorable('A'))
}

func TestCombiningClass(t *testing.T) {
    assert.Equal(t, uint8(230), proptab.CombiningClass(0x0300)) // combining grave accent
    assert.Equal(t, uint8(0), proptab.CombiningClass('A'))
}
