package render

import "strings"

// QuoteWith wraps name in the given delimiters, doubling any closing
// delimiter inside it.
func QuoteWith(name, open, closing string) string {
	return open + strings.ReplaceAll(name, closing, closing+closing) + closing
}
