package language

import "unicode"

// Latin-script providers. Normalization is case folding to upper case so
// that submissions match grids regardless of input case; there are no
// positional letter-shape variants.

type english struct{}

var englishLetters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

func (e *english) Language() Language { return English }

func (e *english) Letters() []rune {
	return englishLetters
}

func (e *english) Normalize(r rune) rune {
	return unicode.ToUpper(r)
}

func (e *english) Denormalize(r rune, final bool) rune {
	return r
}

func (e *english) Compounds() []string { return nil }

type swedish struct{}

// The Swedish alphabet: A-Z plus Å, Ä, Ö as distinct letters
var swedishLetters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖ")

func (s *swedish) Language() Language { return Swedish }

func (s *swedish) Letters() []rune {
	return swedishLetters
}

func (s *swedish) Normalize(r rune) rune {
	return unicode.ToUpper(r)
}

func (s *swedish) Denormalize(r rune, final bool) rune {
	return r
}

func (s *swedish) Compounds() []string { return nil }
