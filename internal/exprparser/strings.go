package exprparser

import "strings"

// interpretEscapes resolves the \n \t \" \' \\ escapes the lexer has
// already validated but left uninterpreted in a STRING token's raw
// body.
func interpretEscapes(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\'', '\\':
				b.WriteByte(raw[i])
			default:
				b.WriteByte(raw[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
