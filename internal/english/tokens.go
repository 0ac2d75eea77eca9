package english

import "strings"

// tokenPunct is stripped from a token to form its speech lookup.
const tokenPunct = ".,/#!$%^&*;:{}=-_`~()"

// Token is one whitespace-delimited span of an article. Text is the span as
// written; Lookup is the punctuation-stripped form handed to the speech
// engine when the reader taps the word.
type Token struct {
	Text   string
	Lookup string
}

// Tokenize splits article content into word tokens. A token whose Lookup is
// empty (pure punctuation) is kept for display but should not be spoken.
func Tokenize(content string) []Token {
	fields := strings.Fields(content)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, Token{Text: f, Lookup: stripPunct(f)})
	}
	return tokens
}

func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(tokenPunct, r) {
			return -1
		}
		return r
	}, s)
}
