package utf8codec_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/uninorm/text/utf8codec"
)

func TestIterate_ascii(t *testing.T) {
    var cp rune
    n := utf8codec.Iterate([]byte("A"), -1, &cp)
    assert.Equal(t, 1, n)
    assert.Equal(t, rune('A'), cp)
}

func TestIterate_empty(t *testing.T) {
    var cp rune
    n := utf8codec.Iterate(nil, -1, &cp)
    assert.Equal(t, 0, n)
    assert.Equal(t, rune(-1), cp)
}

func TestIterate_roundtrip(t *testing.T) {
    // a sample across the Unicode range, excluding surrogates
    samples := []rune{
        0x00, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xD7FF, 0xE000,
        0xFFFD, 0x10000, 0x1F600, 0x10FFFF,
    }

    for _, cp := range samples {
        var buf [4]byte
        n := utf8codec.Encode(cp, &buf)
        assert.Greater(t, n, 0, "encode %x", cp)

        var out rune
        m := utf8codec.Iterate(buf[:n], n, &out)
        assert.Equal(t, n, m, "iterate %x", cp)
        assert.Equal(t, cp, out, "roundtrip %x", cp)
    }
}

func TestIterate_invalid(t *testing.T) {
    rows := [][]byte{
        {0xC0, 0x80},       // over-long NUL
        {0xE0, 0x80, 0x80}, // over-long
        {0xED, 0xA0, 0x80}, // surrogate
        {0xF5, 0x80, 0x80, 0x80}, // beyond 0x10FFFF lead
        {0xC2},             // truncated
        {0xFF},              // never a valid lead byte
        {0x80},               // stray continuation byte
    }

    for i, b := range rows {
        var cp rune
        n := utf8codec.Iterate(b, -1, &cp)
        assert.Equal(t, utf8codec.Invalid, n, "row %d", i)
        assert.Equal(t, rune(-1), cp, "row %d", i)
    }
}

func TestValid(t *testing.T) {
    assert.True(t, utf8codec.Valid(0x41))
    assert.True(t, utf8codec.Valid(0x10FFFF))
    assert.False(t, utf8codec.Valid(0x110000))
    assert.False(t, utf8codec.Valid(0xD800))
    assert.False(t, utf8codec.Valid(0xDFFF))
    assert.False(t, utf8codec.Valid(-1))
}

func TestCharboundEncode(t *testing.T) {
    var buf [4]byte
    n := utf8codec.CharboundEncode(-1, &buf)
    assert.Equal(t, 1, n)
    assert.Equal(t, byte(0xFF), buf[0])

    n = utf8codec.CharboundEncode('A', &buf)
    assert.Equal(t, 1, n)
    assert.Equal(t, byte('A'), buf[0])
}
