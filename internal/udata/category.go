package udata

// Category is a Unicode General_Category value.
type Category uint8

// The 30 Unicode general categories.
const (
    Cn Category = iota // unassigned
    Lu
    Ll
    Lt
    Lm
    Lo
    Mn
    Mc
    Me
    Nd
    Nl
    No
    Pc
    Pd
    Ps
    Pe
    Pi
    Pf
    Po
    Sm
    Sc
    Sk
    So
    Zs
    Zl
    Zp
    Cc
    Cf
    Cs
    Co
)

func (c Category) String() string {
    switch c {
    case Cn: return "Cn"
    case Lu: return "Lu"
    case Ll: return "Ll"
    case Lt: return "Lt"
    case Lm: return "Lm"
    case Lo: return "Lo"
    case Mn: return "Mn"
    case Mc: return "Mc"
    case Me: return "Me"
    case Nd: return "Nd"
    case Nl: return "Nl"
    case No: return "No"
    case Pc: return "Pc"
    case Pd: return "Pd"
    case Ps: return "Ps"
    case Pe: return "Pe"
    case Pi: return "Pi"
    case Pf: return "Pf"
    case Po: return "Po"
    case Sm: return "Sm"
    case Sc: return "Sc"
    case Sk: return "Sk"
    case So: return "So"
    case Zs: return "Zs"
    case Zl: return "Zl"
    case Zp: return "Zp"
    case Cc: return "Cc"
    case Cf: return "Cf"
    case Cs: return "Cs"
    case Co: return "Co"
    }
    return "Cn"
}

// IsMark reports whether c is one of the three Unicode mark categories
// (Mn, Mc, Me) - used by the stripmark decomposition option.
func (c Category) IsMark() bool {
    return c == Mn || c == Mc || c == Me
}

// BidiClass is a Unicode Bidi_Class value. Only per-codepoint lookup is in
// scope for this module; the full bidirectional algorithm is not
// implemented.
type BidiClass uint8

// The 23 Unicode bidi classes.
const (
    L BidiClass = iota
    R
    AL
    EN
    ES
    ET
    AN
    CS
    NSM
    BN
    B
    S
    WS
    ON
    LRE
    LRO
    RLE
    RLO
    PDF
    LRI
    RLI
    FSI
    PDI
)

func (b BidiClass) String() string {
    switch b {
    case L: return "L"
    case R: return "R"
    case AL: return "AL"
    case EN: return "EN"
    case ES: return "ES"
    case ET: return "ET"
    case AN: return "AN"
    case CS: return "CS"
    case NSM: return "NSM"
    case BN: return "BN"
    case B: return "B"
    case S: return "S"
    case WS: return "WS"
    case ON: return "ON"
    case LRE: return "LRE"
    case LRO: return "LRO"
    case RLE: return "RLE"
    case RLO: return "RLO"
    case PDF: return "PDF"
    case LRI: return "LRI"
    case RLI: return "RLI"
    case FSI: return "FSI"
    case PDI: return "PDI"
    }
    return "L"
}
