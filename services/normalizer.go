package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// unitRegexp matches quantity tokens such as "395g", "1 l" or "200ml".
	unitRegexp = regexp.MustCompile(`(?i)\b\d+\s?(g|gr|grama|gramas|ml|l|litro|litros|kg|kilo|kilos|mg)\b`)
	// packagingRegexp matches packaging words that do not identify a product.
	packagingRegexp = regexp.MustCompile(`(?i)\b(embalagem|caixa|pote|pacote|unidade|un|und|cx|pct|lata|vidro|tetra\s?pack|tetra|pack)\b`)
	// modifierRegexp matches generic marketing adjectives.
	modifierRegexp = regexp.MustCompile(`(?i)\b(tradicional|natural|original|especial|premium)\b`)
	digitsRegexp   = regexp.MustCompile(`[0-9%]`)
	punctRegexp    = regexp.MustCompile(`[^\w\s]`)
	spacesRegexp   = regexp.MustCompile(`\s+`)
)

// DefaultBrand is the brand token stripped from descriptions.
const DefaultBrand = "camponesa"

// Normalizer canonicalises free-text product descriptions into grouping keys.
// It is safe for concurrent use.
type Normalizer struct {
	brandRegexp *regexp.Regexp
}

// NewNormalizer creates a Normalizer that also removes the given brand name.
// An empty brand disables brand removal.
func NewNormalizer(brand string) *Normalizer {
	n := &Normalizer{}
	brand = strings.TrimSpace(foldAccents(strings.ToLower(brand)))
	if brand != "" {
		n.brandRegexp = regexp.MustCompile(`(?i)\b(` + regexp.QuoteMeta(brand) + `)\b`)
	}
	return n
}

// Normalize applies, in order: lower-casing, accent stripping, removal of
// quantity tokens, packaging words, marketing modifiers, the brand, digits and
// percent signs, punctuation, and finally whitespace collapsing.
func (n *Normalizer) Normalize(description string) string {
	s := strings.ToLower(description)
	s = foldAccents(s)
	s = unitRegexp.ReplaceAllString(s, "")
	s = packagingRegexp.ReplaceAllString(s, "")
	s = modifierRegexp.ReplaceAllString(s, "")
	if n.brandRegexp != nil {
		s = n.brandRegexp.ReplaceAllString(s, "")
	}
	s = digitsRegexp.ReplaceAllString(s, "")
	s = punctRegexp.ReplaceAllString(s, "")
	s = spacesRegexp.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// foldAccents decomposes s and drops combining marks ("ção" → "cao").
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
