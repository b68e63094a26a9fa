package dom

import "fmt"

// ContentKind is the content discriminator.
type ContentKind uint8

const (
	ContentRaw     ContentKind = iota // verbatim output, no escaping
	ContentText                       // escaped according to the containing element
	ContentComment                    // comment-safety mangled
	ContentElement                    // nested element
)

// String returns the string representation of the ContentKind.
func (k ContentKind) String() string {
	switch k {
	case ContentRaw:
		return "Raw"
	case ContentText:
		return "Text"
	case ContentComment:
		return "Comment"
	case ContentElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Content is one node of serializable material: passthrough text,
// escapable text, a comment, or a nested element.
type Content struct {
	Kind    ContentKind
	Text    string   // for ContentRaw, ContentText and ContentComment
	Element *Element // for ContentElement
}

// Text creates an escapable text node.
func Text(text string) Content {
	return Content{Kind: ContentText, Text: text}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) Content {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates unescaped passthrough content.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(text string) Content {
	return Content{Kind: ContentRaw, Text: text}
}

// Comment creates a comment node.
func Comment(text string) Content {
	return Content{Kind: ContentComment, Text: text}
}

// Doctype returns the HTML5 doctype annotation as raw content.
func Doctype() Content {
	return Raw("<!DOCTYPE html>")
}
