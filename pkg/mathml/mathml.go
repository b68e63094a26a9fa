// Package mathml provides constructors for all non-deprecated MathML
// elements. MathML elements are foreign: their casing is preserved and
// they self-close when empty.
// https://developer.mozilla.org/en-US/docs/Web/MathML/Element
package mathml

import "github.com/el-go/el/pkg/dom"

func foreign(tag string, args []any) *dom.Element {
	return dom.New(tag, dom.KindForeign, args...)
}

func Annotation(args ...any) *dom.Element    { return foreign("annotation", args) }
func AnnotationXML(args ...any) *dom.Element { return foreign("annotation-xml", args) }
func Math(args ...any) *dom.Element          { return foreign("math", args) }
func Merror(args ...any) *dom.Element        { return foreign("merror", args) }
func Mfrac(args ...any) *dom.Element         { return foreign("mfrac", args) }
func Mi(args ...any) *dom.Element            { return foreign("mi", args) }
func Mmultiscripts(args ...any) *dom.Element { return foreign("mmultiscripts", args) }
func Mn(args ...any) *dom.Element            { return foreign("mn", args) }
func Mo(args ...any) *dom.Element            { return foreign("mo", args) }
func Mover(args ...any) *dom.Element         { return foreign("mover", args) }
func Mpadded(args ...any) *dom.Element       { return foreign("mpadded", args) }
func Mphantom(args ...any) *dom.Element      { return foreign("mphantom", args) }
func Mprescripts(args ...any) *dom.Element   { return foreign("mprescripts", args) }
func Mroot(args ...any) *dom.Element         { return foreign("mroot", args) }
func Mrow(args ...any) *dom.Element          { return foreign("mrow", args) }
func Ms(args ...any) *dom.Element            { return foreign("ms", args) }
func Mspace(args ...any) *dom.Element        { return foreign("mspace", args) }
func Msqrt(args ...any) *dom.Element         { return foreign("msqrt", args) }
func Mstyle(args ...any) *dom.Element        { return foreign("mstyle", args) }
func Msub(args ...any) *dom.Element          { return foreign("msub", args) }
func Msubsup(args ...any) *dom.Element       { return foreign("msubsup", args) }
func Msup(args ...any) *dom.Element          { return foreign("msup", args) }
func Mtable(args ...any) *dom.Element        { return foreign("mtable", args) }
func Mtd(args ...any) *dom.Element           { return foreign("mtd", args) }
func Mtext(args ...any) *dom.Element         { return foreign("mtext", args) }
func Mtr(args ...any) *dom.Element           { return foreign("mtr", args) }
func Munder(args ...any) *dom.Element        { return foreign("munder", args) }
func Munderover(args ...any) *dom.Element    { return foreign("munderover", args) }
func Semantics(args ...any) *dom.Element     { return foreign("semantics", args) }

// Deprecated and non-standard elements are intentionally omitted.
