package parser

import (
	"strings"
	"unicode"
)

// vulgarFractions holds the single-rune fractions U+00BC–U+00BE and
// U+2150–U+215E.
var vulgarFractions = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00BC, Hi: 0x00BE, Stride: 1},
		{Lo: 0x2150, Hi: 0x215E, Stride: 1},
	},
	LatinOffset: 1,
}

var spaceLike = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A0, Hi: 0x00A0, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x180E, Hi: 0x180E, Stride: 1},
		{Lo: 0x2000, Hi: 0x200B, Stride: 1},
		{Lo: 0x202F, Hi: 0x202F, Stride: 1},
		{Lo: 0x205F, Hi: 0x205F, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1},
	},
	LatinOffset: 1,
}

var slashLike = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2044, Hi: 0x2044, Stride: 1},
		{Lo: 0x2215, Hi: 0x2215, Stride: 1},
		{Lo: 0x2571, Hi: 0x2571, Stride: 1},
		{Lo: 0x29F8, Hi: 0x29F8, Stride: 1},
		{Lo: 0xFF0F, Hi: 0xFF0F, Stride: 1},
	},
}

var dashLike = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x058A, Hi: 0x058A, Stride: 1},
		{Lo: 0x05BE, Hi: 0x05BE, Stride: 1},
		{Lo: 0x1400, Hi: 0x1400, Stride: 1},
		{Lo: 0x1806, Hi: 0x1806, Stride: 1},
		{Lo: 0x2010, Hi: 0x2015, Stride: 1},
		{Lo: 0x2053, Hi: 0x2053, Stride: 1},
		{Lo: 0x207B, Hi: 0x207B, Stride: 1},
		{Lo: 0x208B, Hi: 0x208B, Stride: 1},
		{Lo: 0x2212, Hi: 0x2212, Stride: 1},
		{Lo: 0x2E17, Hi: 0x2E17, Stride: 1},
		{Lo: 0x2E1A, Hi: 0x2E1A, Stride: 1},
		{Lo: 0x2E3A, Hi: 0x2E3B, Stride: 1},
		{Lo: 0x2E40, Hi: 0x2E40, Stride: 1},
		{Lo: 0x301C, Hi: 0x301C, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x30A0, Hi: 0x30A0, Stride: 1},
		{Lo: 0xFE31, Hi: 0xFE32, Stride: 1},
		{Lo: 0xFE58, Hi: 0xFE58, Stride: 1},
		{Lo: 0xFE63, Hi: 0xFE63, Stride: 1},
		{Lo: 0xFF0D, Hi: 0xFF0D, Stride: 1},
	},
}

// htmlEntities maps the entities found in scraped recipes to their text.
var htmlEntities = strings.NewReplacer(
	"&nbsp;", "\u00a0",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&apos;", "'",
	"&copy;", "©",
	"&reg;", "®",
	"&frac12;", "½",
	"&frac13;", "⅓",
	"&frac14;", "¼",
	"&frac15;", "⅕",
	"&frac16;", "⅙",
	"&frac18;", "⅛",
	"&frac23;", "⅔",
	"&frac25;", "⅖",
	"&frac34;", "¾",
	"&frac35;", "⅗",
	"&frac38;", "⅜",
	"&frac45;", "⅘",
	"&frac56;", "⅚",
	"&frac58;", "⅝",
	"&frac78;", "⅞",
)

// foldPunctuation maps space-, slash- and dash-like runes to their ASCII form.
func foldPunctuation(r rune) rune {
	switch {
	case unicode.Is(spaceLike, r):
		return ' '
	case unicode.Is(slashLike, r):
		return '/'
	case unicode.Is(dashLike, r):
		return '-'
	default:
		return r
	}
}
