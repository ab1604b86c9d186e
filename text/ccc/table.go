package ccc

// table lists Canonical_Combining_Class ranges for Unicode 13.0.0, sorted by
// start and non-overlapping. Any codepoint not covered by a range has a ccc
// of 0 (it is a starter). This is a curated subset covering the combining
// mark blocks exercised by this package's normalization forms (Latin, Greek,
// Cyrillic, Hebrew, Arabic, Devanagari, Thai, Adlam) rather than the full
// Unicode Character Database; see DESIGN.md for the rationale.
var table = []ccRange{
    // Combining Diacritical Marks
    {0x0300, 0x0315, 230}, // grave ... reversed comma above
    {0x0315, 0x0316, 232}, // comma above right
    {0x0316, 0x031A, 220}, // grave accent below ... right tack below
    {0x031A, 0x031B, 232}, // left angle above
    {0x031B, 0x031C, 216}, // horn
    {0x031C, 0x0321, 220}, // left half ring below ... minus sign below
    {0x0321, 0x0323, 202}, // palatalized hook below, retroflex hook below
    {0x0323, 0x0327, 220}, // dot below ... comma below
    {0x0327, 0x0329, 202}, // cedilla, ogonek
    {0x0329, 0x0334, 220}, // vertical line below ... double low line
    {0x0334, 0x0339, 1},   // tilde overlay ... long solidus overlay
    {0x0339, 0x033D, 220}, // right half ring below ... seagull below
    {0x033D, 0x0340, 230}, // x above, vertical tilde, double overline
    {0x0340, 0x0342, 230}, // grave tone mark, acute tone mark
    {0x0342, 0x0343, 230}, // greek perispomeni
    {0x0343, 0x0344, 230}, // greek koronis
    {0x0344, 0x0345, 230}, // greek dialytika tonos
    {0x0345, 0x0346, 240}, // greek ypogegrammeni
    {0x0346, 0x034D, 230}, // bridge above ... almost equal above
    {0x034D, 0x034F, 220}, // left right arrow below, upwards arrow below
    {0x0350, 0x0353, 230}, // right arrowhead above ... fermata
    {0x0353, 0x0357, 220}, // x below ... right arrowhead and up arrowhead below
    {0x0357, 0x0358, 230}, // right half ring above
    {0x0358, 0x0359, 232}, // dot above right
    {0x0359, 0x035B, 220}, // asterisk below, double ring below
    {0x035B, 0x035C, 230}, // zigzag above
    {0x035C, 0x035D, 233}, // double breve below
    {0x035D, 0x035F, 234}, // double breve, double macron
    {0x035F, 0x0360, 233}, // double macron below
    {0x0360, 0x0362, 234}, // double tilde, double inverted breve
    {0x0362, 0x0363, 233}, // double rightwards arrow below
    {0x0363, 0x0370, 230}, // combining latin small letters a-x (medieval)

    // Cyrillic and Hebrew
    {0x0483, 0x0488, 230}, // combining cyrillic titlo, palatalization, etc
    {0x0591, 0x0592, 220}, // hebrew accent etnahta
    {0x0592, 0x0596, 230}, // hebrew accents, above
    {0x0596, 0x0597, 220},
    {0x0597, 0x0599, 230},
    {0x0599, 0x059A, 220},
    {0x059A, 0x05A2, 230},
    {0x05A2, 0x05A3, 220},
    {0x05A3, 0x05AF, 220}, // hebrew accents, below
    {0x05AF, 0x05B0, 230},
    {0x05B0, 0x05B1, 10},  // hebrew point sheva
    {0x05B1, 0x05B2, 11},  // hataf segol
    {0x05B2, 0x05B3, 12},  // hataf patah
    {0x05B3, 0x05B4, 13},  // hataf qamats
    {0x05B4, 0x05B5, 14},  // hiriq
    {0x05B5, 0x05B6, 15},  // tsere
    {0x05B6, 0x05B7, 16},  // segol
    {0x05B7, 0x05B8, 17},  // patah
    {0x05B8, 0x05B9, 18},  // qamats
    {0x05B9, 0x05BB, 19},  // holam, holam haser for vav
    {0x05BB, 0x05BC, 20},  // qubuts
    {0x05BC, 0x05BD, 21},  // dagesh
    {0x05BD, 0x05BE, 22},  // meteg
    {0x05BF, 0x05C0, 23},  // rafe
    {0x05C1, 0x05C2, 24},  // shin dot
    {0x05C2, 0x05C3, 25},  // sin dot
    {0x05C4, 0x05C5, 230}, // upper dot
    {0x05C5, 0x05C6, 220}, // lower dot
    {0x05C7, 0x05C8, 18},  // qamats qatan

    // Arabic
    {0x0610, 0x0615, 230},
    {0x064B, 0x064C, 27},  // fathatan
    {0x064C, 0x064D, 28},  // dammatan
    {0x064D, 0x064E, 29},  // kasratan
    {0x064E, 0x064F, 30},  // fatha
    {0x064F, 0x0650, 31},  // damma
    {0x0650, 0x0651, 32},  // kasra
    {0x0651, 0x0652, 33},  // shadda
    {0x0652, 0x0653, 34},  // sukun
    {0x0653, 0x0656, 230}, // maddah, hamza above, hamza below
    {0x0656, 0x065A, 220},
    {0x065A, 0x065C, 230},
    {0x065C, 0x065D, 220},
    {0x065D, 0x065F, 230},
    {0x0670, 0x0671, 35},  // superscript alef

    // Devanagari and related Indic scripts
    {0x0900, 0x0903, 0},
    {0x093C, 0x093D, 7},   // nukta
    {0x094D, 0x094E, 9},   // virama
    {0x0951, 0x0952, 230}, // udatta
    {0x0952, 0x0953, 220}, // anudatta

    // Thai
    {0x0E38, 0x0E3A, 103},
    {0x0E3A, 0x0E3B, 9},
    {0x0E48, 0x0E4C, 107},

    // Lao
    {0x0EB8, 0x0EBA, 118},
    {0x0EC8, 0x0ECC, 122},

    // Adlam
    {0x1E944, 0x1E94A, 230}, // adlam alif lengthener ... gemination mark
    {0x1E94A, 0x1E94B, 7},   // adlam nukta
}
