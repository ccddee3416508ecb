package barcode

// Code-128A symbology. The table index is the symbol value; each code packs
// the module widths of the alternating bar/space runs, one decimal digit
// per hex nibble. Value 104 is the start-A code and 106 the 7-run stop.
var code128Patterns = [...]uint32{
	0x212222, // ' '
	0x222122, // '!'
	0x222221, // '"'
	0x121223, // '#'
	0x121322, // '$'
	0x131222, // '%'
	0x122213, // '&'
	0x122312, // "'"
	0x132212, // '('
	0x221213, // ')'
	0x221312, // '*'
	0x231212, // '+'
	0x112232, // ','
	0x122132, // '-'
	0x122231, // '.'
	0x113222, // '/'
	0x123122, // '0'
	0x123221, // '1'
	0x223211, // '2'
	0x221132, // '3'
	0x221231, // '4'
	0x213212, // '5'
	0x223112, // '6'
	0x312131, // '7'
	0x311222, // '8'
	0x321122, // '9'
	0x321221, // ':'
	0x312212, // ';'
	0x322112, // '<'
	0x322211, // '='
	0x212123, // '>'
	0x212321, // '?'
	0x232121, // '@'
	0x111323, // 'A'
	0x131123, // 'B'
	0x131321, // 'C'
	0x112313, // 'D'
	0x132113, // 'E'
	0x132311, // 'F'
	0x211313, // 'G'
	0x231113, // 'H'
	0x231311, // 'I'
	0x112133, // 'J'
	0x112331, // 'K'
	0x132131, // 'L'
	0x113123, // 'M'
	0x113321, // 'N'
	0x133121, // 'O'
	0x313121, // 'P'
	0x211331, // 'Q'
	0x231131, // 'R'
	0x213113, // 'S'
	0x213311, // 'T'
	0x213131, // 'U'
	0x311123, // 'V'
	0x311321, // 'W'
	0x331121, // 'X'
	0x312113, // 'Y'
	0x312311, // 'Z'
	0x332111, // '['
	0x314111, // '\\'
	0x221411, // ']'
	0x431111, // '^'
	0x111224, // '_'
	0x111422, // '`'
	0x121124, // 'a'
	0x121421, // 'b'
	0x141122, // 'c'
	0x141221, // 'd'
	0x112214, // 'e'
	0x112412, // 'f'
	0x122114, // 'g'
	0x122411, // 'h'
	0x142112, // 'i'
	0x142211, // 'j'
	0x241211, // 'k'
	0x221114, // 'l'
	0x413111, // 'm'
	0x241112, // 'n'
	0x134111, // 'o'
	0x111242, // 'p'
	0x121142, // 'q'
	0x121241, // 'r'
	0x114212, // 's'
	0x124112, // 't'
	0x124211, // 'u'
	0x411212, // 'v'
	0x421112, // 'w'
	0x421211, // 'x'
	0x212141, // 'y'
	0x214121, // 'z'
	0x412121, // '{'
	0x111143, // '|'
	0x111341, // '}'
	0x131141, // '~'
	0x114113,
	0x114311,
	0x411113,
	0x411311,
	0x113141,
	0x114131,
	0x311141,
	0x411131,
	0x211412,
	0x211214,
	0x211232,
	0x2331112,
}

