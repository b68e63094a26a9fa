package dom

import "fmt"

// Attr represents a single attribute. An empty Value renders as a bare
// boolean attribute (`checked` rather than `checked=""`).
type Attr struct {
	Key   string
	Value string
}

// Yes returns a boolean attribute: just the name, no value.
func Yes(key string) Attr {
	return Attr{Key: key}
}

// Appender is implemented by values that know how to attach themselves
// to an element under construction. It lets callers define their own
// composite shapes (option types, component structs) that expand into
// attributes and children.
type Appender interface {
	AppendTo(e *Element)
}

// Element is a single node of the markup tree. Attributes render in
// sorted key order; children render in insertion order.
type Element struct {
	Name       string
	Kind       Kind
	Attributes map[string]string
	Children   []Content
}

// New creates an element of the given kind and applies the constructor
// arguments. The tag name is ASCII-lowercased unless the kind is
// KindForeign, which preserves the given casing.
func New(name string, kind Kind, args ...any) *Element {
	if kind != KindForeign {
		name = lowerASCII(name)
	}
	e := &Element{
		Name:       name,
		Kind:       kind,
		Attributes: make(map[string]string),
	}
	return e.With(args...)
}

// Normal creates a KindNormal element.
func Normal(name string, args ...any) *Element {
	return New(name, KindNormal, args...)
}

// With applies constructor arguments to the element.
// Arguments can be: nil, Attr, []Attr, Content, []Content, *Element,
// string (shorthand for a text child), or any Appender.
func (e *Element) With(args ...any) *Element {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attr:
			e.Attr(v.Key, v.Value)

		case []Attr:
			for _, a := range v {
				e.Attr(a.Key, a.Value)
			}

		case Content:
			e.Children = append(e.Children, v)

		case []Content:
			e.Children = append(e.Children, v...)

		case *Element:
			if v != nil {
				e.Children = append(e.Children, Content{Kind: ContentElement, Element: v})
			}

		case string:
			// Shorthand for a text child
			e.Children = append(e.Children, Text(v))

		case Appender:
			v.AppendTo(e)

		default:
			panic(fmt.Sprintf("dom: cannot use %T as an element argument", arg))
		}
	}
	return e
}

// Attr sets (or replaces) an attribute. The name is ASCII-lowercased
// unless the element is Foreign. An empty value renders as a bare
// boolean attribute.
func (e *Element) Attr(name, value string) *Element {
	if e.Kind != KindForeign {
		name = lowerASCII(name)
	}
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[name] = value
	return e
}

// AttrTrue sets a boolean attribute.
func (e *Element) AttrTrue(name string) *Element {
	return e.Attr(name, "")
}

// Data sets a data-* attribute.
func (e *Element) Data(name, value string) *Element {
	return e.Attr("data-"+name, value)
}

// Child appends a single child.
func (e *Element) Child(c Content) *Element {
	e.Children = append(e.Children, c)
	return e
}

// Document wraps the element as a complete HTML document.
func (e *Element) Document() *Document {
	return &Document{Root: e}
}

// lowerASCII lowercases ASCII letters only. Names are validated as
// ASCII at render time, so folding non-ASCII runes here would only
// mask the eventual validation error.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if c := b[i]; 'A' <= c && c <= 'Z' {
					b[i] = c + 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
