package dom

// Kind classifies an element per the HTML syntax rules
// (https://html.spec.whatwg.org/multipage/syntax.html#elements-2).
// It is fixed at construction and decides which children the element
// may have and how the tag closes when empty.
type Kind uint8

const (
	KindVoid             Kind = iota // no children, no closing tag (<br>, <input>)
	KindTemplate                     // <template>
	KindRawText                      // unparsed text content (<script>, <style>)
	KindEscapableRawText             // text with character references (<title>, <textarea>)
	KindForeign                      // non-HTML namespace (<svg>, <math>), casing preserved
	KindNormal                       // everything else
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "Void"
	case KindTemplate:
		return "Template"
	case KindRawText:
		return "RawText"
	case KindEscapableRawText:
		return "EscapableRawText"
	case KindForeign:
		return "Foreign"
	case KindNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}
