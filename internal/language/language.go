package language

import (
	"errors"
	"fmt"
)

// Language tags the character inventory and normalization rules that
// apply to a grid and its submitted words
type Language string

const (
	English  Language = "en"
	Swedish  Language = "sv"
	Hebrew   Language = "he"
	Japanese Language = "ja"
)

// ErrUnsupportedLanguage is returned for an unrecognized language tag.
// It is the only hard error in the engine and must never be swallowed
// by a silent fallback to some default language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Provider supplies the per-language grapheme inventory and the
// normalization rules the rest of the engine is built on. Providers are
// stateless pure data; all comparison logic elsewhere goes through
// Normalize so that display variants never leak into matching.
type Provider interface {
	// Language returns the tag this provider serves
	Language() Language

	// Letters returns the ordered grapheme inventory used to fill grids
	Letters() []rune

	// Normalize collapses positional letter-shape variants (e.g. Hebrew
	// final forms) to one canonical grapheme. Idempotent; identity for
	// graphemes without variants.
	Normalize(r rune) rune

	// Denormalize re-applies the display variant of a grapheme. The
	// final flag marks the last grapheme of a completed word; it is the
	// only position where a final-form variant applies. Display only —
	// comparison logic must never depend on the result.
	Denormalize(r rune, final bool) rune

	// Compounds returns curated multi-grapheme words (2-3 graphemes)
	// for logographic languages whose single graphemes are not words on
	// their own. Empty for alphabetic languages.
	Compounds() []string
}

var providers = map[Language]Provider{
	English:  &english{},
	Swedish:  &swedish{},
	Hebrew:   &hebrew{},
	Japanese: &japanese{},
}

// For returns the provider for the given language tag
func For(lang Language) (Provider, error) {
	p, ok := providers[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return p, nil
}

// Supported returns true if the language tag is recognized
func Supported(lang Language) bool {
	_, ok := providers[lang]
	return ok
}

// All returns the supported language tags in stable order
func All() []Language {
	return []Language{English, Swedish, Hebrew, Japanese}
}

// NormalizeWord normalizes every grapheme of a word for comparison
func NormalizeWord(word string, lang Language) ([]rune, error) {
	p, err := For(lang)
	if err != nil {
		return nil, err
	}
	graphemes := []rune(word)
	for i, r := range graphemes {
		graphemes[i] = p.Normalize(r)
	}
	return graphemes, nil
}

// DenormalizeWord renders a canonical word for display, re-applying the
// word-final variant to the last grapheme only
func DenormalizeWord(word string, lang Language) (string, error) {
	p, err := For(lang)
	if err != nil {
		return "", err
	}
	graphemes := []rune(word)
	for i, r := range graphemes {
		graphemes[i] = p.Denormalize(r, i == len(graphemes)-1)
	}
	return string(graphemes), nil
}
