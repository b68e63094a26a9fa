package render

import "strings"

// The standard's rules for what makes a valid tag or attribute name are
// complicated and give no easy answer, so we are conservative in what we
// allow. The output should then parse correctly in a wide range of
// circumstances while following the standard.

func isASCIIAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isASCIIAlphanumeric(c byte) bool {
	return isASCIIAlpha(c) || '0' <= c && c <= '9'
}

// isValidTagName reports whether name is safe to emit as a tag name:
// non-empty, leading ASCII letter, ASCII alphanumeric throughout.
// https://html.spec.whatwg.org/multipage/syntax.html#syntax-tag-name
func isValidTagName(name string) bool {
	if name == "" || !isASCIIAlpha(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isASCIIAlphanumeric(name[i]) {
			return false
		}
	}
	return true
}

// isValidAttributeName reports whether name is safe to emit as an
// attribute name: like a tag name, but '-' and '_' are also allowed
// after the leading letter.
// https://html.spec.whatwg.org/multipage/syntax.html#syntax-attribute-name
func isValidAttributeName(name string) bool {
	if name == "" || !isASCIIAlpha(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; !isASCIIAlphanumeric(c) && c != '-' && c != '_' {
			return false
		}
	}
	return true
}

// isValidRawText reports whether text may appear unescaped inside a raw
// text element named tagName. The text must not contain "</" followed by
// the tag name (ASCII case-insensitive) and one of tab, LF, FF, CR,
// space, '>' or '/'. A candidate that runs to the very end of the text
// has no trailing character and is accepted.
// https://html.spec.whatwg.org/multipage/syntax.html#cdata-rcdata-restrictions
//
// tagName must already have passed isValidTagName, which guarantees it
// is ASCII; the case-insensitive comparison relies on that.
func isValidRawText(tagName, text string) bool {
	n := len(tagName)
	for pos := 0; ; {
		i := strings.Index(text[pos:], "</")
		if i < 0 {
			return true
		}
		pos += i + 2
		rest := text[pos:]
		if len(rest) <= n {
			// Too short to match, or the candidate runs to the end
			// of the text with nothing after it.
			continue
		}
		if !strings.EqualFold(rest[:n], tagName) {
			continue
		}
		switch rest[n] {
		case '\t', '\n', '\f', '\r', ' ', '>', '/':
			return false
		}
	}
}
