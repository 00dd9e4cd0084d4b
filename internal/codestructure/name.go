package codestructure

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// NameStr is an entity name held in camelCase ("productItem") with the
// spellings the builders need.
type NameStr struct {
	value string
}

func NewNameStr(name string) NameStr {
	return NameStr{value: Camel(name)}
}

func (n NameStr) Raw() string {
	return n.value
}

func (n NameStr) String() string {
	return n.value
}

func (n NameStr) UcFirst() string {
	return ucFirst(n.value)
}

func (n NameStr) UcFirstSingular() string {
	return ucFirst(n.Singular())
}

func (n NameStr) Singular() string {
	return inflection.Singular(n.value)
}

func (n NameStr) Plural() string {
	return inflection.Plural(n.value)
}

func (n NameStr) Snake() string {
	return Snake(n.value)
}

func (n NameStr) SingularSnake() string {
	return Snake(n.Singular())
}

func (n NameStr) PluralSnake() string {
	return Snake(n.Plural())
}

func (n NameStr) PluralKebab() string {
	return strings.Join(words(n.Plural()), "-")
}

// Camel converts snake_case, kebab-case, spaced or PascalCase input to camelCase.
func Camel(s string) string {
	parts := words(s)
	for i := range parts {
		if i > 0 {
			parts[i] = ucFirst(parts[i])
		}
	}
	return strings.Join(parts, "")
}

func Snake(s string) string {
	return strings.Join(words(s), "_")
}

// words splits s on separators and lower-to-upper case boundaries and
// lowercases every part.
func words(s string) []string {
	var parts []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			parts = append(parts, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(strings.TrimSpace(s))
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return parts
}

func ucFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
