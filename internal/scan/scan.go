// Package scan provides delimiter matching over raw Java source text, used to
// isolate class, method, and initializer bodies without a full parser.
package scan

// NotFound is returned when no matching close delimiter exists in the span.
const NotFound = -1

// FindMatchingBrace returns the index just past the brace matching the
// opening brace at openIdx, or NotFound when the input is unbalanced or
// openIdx does not point at an opening brace. Braces inside string literals,
// character literals, line comments, and block comments are not counted; a
// line comment's suppression ends at the next newline.
//
// Callers must treat NotFound as "skip nested extraction for this span",
// never as fatal: truncated and malformed source is expected input.
func FindMatchingBrace(s string, openIdx int) int {
	if openIdx < 0 || openIdx >= len(s) || s[openIdx] != '{' {
		return NotFound
	}

	var (
		depth          int
		inString       bool
		inChar         bool
		inLineComment  bool
		inBlockComment bool
	)

	for i := openIdx; i < len(s); i++ {
		c := s[i]

		switch {
		case inLineComment:
			if c == '\n' {
				inLineComment = false
			}

		case inBlockComment:
			if c == '*' && i+1 < len(s) && s[i+1] == '/' {
				inBlockComment = false
				i++
			}

		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}

		case inChar:
			if c == '\\' {
				i++
			} else if c == '\'' {
				inChar = false
			}

		default:
			switch c {
			case '"':
				inString = true
			case '\'':
				inChar = true
			case '/':
				if i+1 < len(s) {
					switch s[i+1] {
					case '/':
						inLineComment = true
						i++
					case '*':
						inBlockComment = true
						i++
					}
				}
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return i + 1
				}
			}
		}
	}

	return NotFound
}
