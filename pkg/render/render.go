package render

import (
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/el-go/el/pkg/dom"
)

var (
	errNilDocument = errors.New("render: nil document")
	errNilElement  = errors.New("render: nil element")
)

// Document writes doc to w as a complete HTML page: the literal
// <!DOCTYPE html> annotation followed by the root element. Nothing is
// inserted between the two. A nil document or root is rejected before
// anything is written.
func Document(w io.Writer, doc *dom.Document) error {
	if doc == nil || doc.Root == nil {
		return errNilDocument
	}
	if err := Content(w, dom.Doctype()); err != nil {
		return err
	}
	return Element(w, doc.Root)
}

// Element writes el and its subtree to w. On failure the returned
// *Error identifies the offending node; whatever was already written to
// w is partial output and should be discarded.
func Element(w io.Writer, el *dom.Element) error {
	if el == nil {
		return errNilElement
	}

	// Checks
	if !isValidTagName(el.Name) {
		return newError(CauseInvalidTagName, el.Name)
	}
	keys := sortedKeys(el.Attributes)
	for _, name := range keys {
		if !isValidAttributeName(name) {
			return newError(CauseInvalidAttrName, name)
		}
	}

	// Opening tag
	if err := writeString(w, "<"+el.Name); err != nil {
		return err
	}
	for _, name := range keys {
		if err := writeString(w, " "+name); err != nil {
			return err
		}
		// An empty value renders as a bare boolean attribute.
		if value := el.Attributes[name]; value != "" {
			if err := writeString(w, `="`+escapeAttrValue(value)+`"`); err != nil {
				return err
			}
		}
	}

	if len(el.Children) == 0 {
		// Closing early
		switch el.Kind {
		case dom.KindVoid:
			return writeString(w, ">")
		case dom.KindForeign:
			return writeString(w, " />")
		default:
			return writeString(w, "></"+el.Name+">")
		}
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	// Children
	for i, child := range el.Children {
		if err := renderChild(w, el, child); err != nil {
			return err.at(i, child)
		}
	}

	// Closing tag
	if el.Kind != dom.KindVoid {
		return writeString(w, "</"+el.Name+">")
	}
	return nil
}

// Content writes a single content node to w using the generic rules:
// raw verbatim, text escaped, comment text mangled, elements recursed.
func Content(w io.Writer, c dom.Content) error {
	switch c.Kind {
	case dom.ContentRaw:
		return writeString(w, c.Text)
	case dom.ContentText:
		return writeString(w, escapeText(c.Text))
	case dom.ContentComment:
		return writeString(w, mangleComment(c.Text))
	case dom.ContentElement:
		if c.Element == nil {
			return newError(CauseInvalidChild, "")
		}
		return Element(w, c.Element)
	default:
		return newError(CauseInvalidChild, "")
	}
}

// DocumentString renders doc into a new string, discarding any partial
// output on error.
func DocumentString(doc *dom.Document) (string, error) {
	var sb strings.Builder
	if err := Document(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ElementString renders el into a new string, discarding any partial
// output on error.
func ElementString(el *dom.Element) (string, error) {
	var sb strings.Builder
	if err := Element(&sb, el); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ContentString renders c into a new string, discarding any partial
// output on error.
func ContentString(c dom.Content) (string, error) {
	var sb strings.Builder
	if err := Content(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// renderChild writes one child under parent, enforcing the parent
// kind's content model.
func renderChild(w io.Writer, parent *dom.Element, child dom.Content) *Error {
	switch parent.Kind {
	case dom.KindVoid:
		// Void elements must have no children at all.
		return newError(CauseInvalidChild, "")

	case dom.KindRawText:
		switch child.Kind {
		case dom.ContentRaw:
			return asRenderError(writeString(w, child.Text))
		case dom.ContentText:
			if !isValidRawText(parent.Name, child.Text) {
				return newError(CauseInvalidRawText, child.Text)
			}
			return asRenderError(writeString(w, child.Text))
		default:
			return newError(CauseInvalidChild, "")
		}

	case dom.KindEscapableRawText:
		switch child.Kind {
		case dom.ContentRaw:
			return asRenderError(writeString(w, child.Text))
		case dom.ContentText:
			return asRenderError(writeString(w, escapeText(child.Text)))
		default:
			return newError(CauseInvalidChild, "")
		}

	default:
		// Template, Foreign and Normal permit every content variant.
		return asRenderError(Content(w, child))
	}
}

// writeString writes s to w, wrapping a sink failure as a CauseWrite
// error. Rendering aborts on the first failed write.
func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return writeError(err)
	}
	return nil
}

// asRenderError coerces an error from a nested call into *Error,
// preserving any path segments it already carries.
func asRenderError(err error) *Error {
	if err == nil {
		return nil
	}
	if rerr, ok := err.(*Error); ok {
		return rerr
	}
	return writeError(err)
}

// sortedKeys returns the attribute names in sorted order for
// deterministic output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
