package render

import "strings"

// escapeText escapes text for safe inclusion in HTML content. Escaping
// '&' and '<' is sufficient for the data and RCDATA parsing contexts the
// renderer emits text into; '>' is escaped too for symmetry.
// https://html.spec.whatwg.org/multipage/parsing.html#data-state
func escapeText(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttrValue escapes a double-quoted attribute value. Only '"' can
// terminate the quoting, so everything else passes through unchanged.
// https://html.spec.whatwg.org/multipage/syntax.html#attributes-2
func escapeAttrValue(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// mangleComment rewrites comment text so it cannot contain the
// substrings HTML forbids inside comments, then pads the ends that
// would collide with the comment delimiters.
// https://html.spec.whatwg.org/multipage/syntax.html#comments
//
// The replacements are lossy and not reversible. Their order is part of
// the output contract: sequential, exactly as written.
func mangleComment(s string) string {
	s = strings.ReplaceAll(s, "<!--", "<!==")
	s = strings.ReplaceAll(s, "-->", "==>")
	s = strings.ReplaceAll(s, "--!>", "==!>")

	if strings.HasPrefix(s, ">") || strings.HasPrefix(s, "->") {
		s = " " + s
	}
	if strings.HasSuffix(s, "<!-") {
		s += " "
	}
	return s
}
