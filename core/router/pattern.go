package router

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultFragment matches one or more non-slash characters, the default
// expression for a dynamic segment without a custom constraint.
const defaultFragment = `[^/]+`

// compilePattern builds the anchored matcher for a route pattern. Literal
// spans are escaped so regexp metacharacters match themselves; each {name}
// or {name:regex} token becomes a named capture group. Custom fragments may
// contain braces of their own ({id:\d{4}}); token scanning is balance-aware.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')

	seen := make(map[string]bool)
	for i := 0; i < len(pattern); {
		if pattern[i] != '{' {
			j := strings.IndexByte(pattern[i:], '{')
			if j < 0 {
				b.WriteString(regexp.QuoteMeta(pattern[i:]))
				break
			}
			b.WriteString(regexp.QuoteMeta(pattern[i : i+j]))
			i += j
			continue
		}

		end, ok := matchingBrace(pattern, i)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrParamDelimiter, pattern)
		}

		token := pattern[i+1 : end]
		name, frag := token, defaultFragment
		if k := strings.IndexByte(token, ':'); k >= 0 {
			name, frag = token[:k], token[k+1:]
		}
		if !isParamName(name) {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidParam, token)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateParam, name)
		}
		seen[name] = true

		b.WriteString("(?P<")
		b.WriteString(name)
		b.WriteString(">")
		b.WriteString(frag)
		b.WriteString(")")
		i = end + 1
	}

	b.WriteByte('$')

	rx, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegexp, err)
	}
	return rx, nil
}

// matchingBrace returns the index of the '}' closing the '{' at open,
// accounting for nested braces inside custom regexp fragments.
func matchingBrace(s string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// isParamName reports whether name is a valid capture group identifier.
func isParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
