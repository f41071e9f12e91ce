// Package naming provides the identifier case transforms used when deriving
// generated names: lower-snake for module namespaces and upper-camel for enum
// variant identifiers.
package naming

import (
	"strings"
	"unicode"
)

// ToSnake converts an identifier or title to lower_snake_case.
// Examples:
//   - "My Model" -> "my_model"
//   - "dataModel" -> "data_model"
//   - "HTTPModel" -> "http_model"
func ToSnake(s string) string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// ToUpperCamel converts an identifier to UpperCamelCase.
// Examples:
//   - "some_value" -> "SomeValue"
//   - "alpha" -> "Alpha"
//   - "red-color" -> "RedColor"
func ToUpperCamel(s string) string {
	tokens := tokenize(s)

	var sb strings.Builder
	for _, t := range tokens {
		lower := strings.ToLower(t)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}

	return sb.String()
}

// tokenize splits a CamelCase, snake_case, kebab-case, or space separated
// identifier into its word tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Separators end the current token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if startsNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common word separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsNewToken determines if a new token should start at position i.
func startsNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}
