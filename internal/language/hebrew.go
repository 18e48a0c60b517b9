package language

// Hebrew has five letters with a distinct word-final form. The grid holds
// the canonical (non-final) form only; Normalize folds final forms to
// canonical so a query word ending in ך still matches a cell holding כ,
// and Denormalize restores the final form when rendering the last
// grapheme of a completed word.

type hebrew struct{}

var hebrewLetters = []rune("אבגדהוזחטיכלמנסעפצקרשת")

// finalToCanonical maps the word-final letter forms to their canonical forms
var finalToCanonical = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// canonicalToFinal is the display-direction inverse of finalToCanonical
var canonicalToFinal = map[rune]rune{
	'כ': 'ך',
	'מ': 'ם',
	'נ': 'ן',
	'פ': 'ף',
	'צ': 'ץ',
}

func (h *hebrew) Language() Language { return Hebrew }

func (h *hebrew) Letters() []rune {
	return hebrewLetters
}

func (h *hebrew) Normalize(r rune) rune {
	if canonical, ok := finalToCanonical[r]; ok {
		return canonical
	}
	return r
}

func (h *hebrew) Denormalize(r rune, final bool) rune {
	if !final {
		return r
	}
	if f, ok := canonicalToFinal[r]; ok {
		return f
	}
	return r
}

func (h *hebrew) Compounds() []string { return nil }
