// Package svg provides constructors for all non-deprecated SVG
// elements. SVG elements are foreign: their casing is preserved and
// they self-close when empty.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Element
package svg

import "github.com/el-go/el/pkg/dom"

func foreign(tag string, args []any) *dom.Element {
	return dom.New(tag, dom.KindForeign, args...)
}

func A(args ...any) *dom.Element                   { return foreign("a", args) }
func Animate(args ...any) *dom.Element             { return foreign("animate", args) }
func AnimateMotion(args ...any) *dom.Element       { return foreign("animateMotion", args) }
func AnimateTransform(args ...any) *dom.Element    { return foreign("animateTransform", args) }
func Circle(args ...any) *dom.Element              { return foreign("circle", args) }
func ClipPath(args ...any) *dom.Element            { return foreign("clipPath", args) }
func Defs(args ...any) *dom.Element                { return foreign("defs", args) }
func Desc(args ...any) *dom.Element                { return foreign("desc", args) }
func Ellipse(args ...any) *dom.Element             { return foreign("ellipse", args) }
func FeBlend(args ...any) *dom.Element             { return foreign("feBlend", args) }
func FeColorMatrix(args ...any) *dom.Element       { return foreign("feColorMatrix", args) }
func FeComponentTransfer(args ...any) *dom.Element { return foreign("feComponentTransfer", args) }
func FeComposite(args ...any) *dom.Element         { return foreign("feComposite", args) }
func FeConvolveMatrix(args ...any) *dom.Element    { return foreign("feConvolveMatrix", args) }
func FeDiffuseLighting(args ...any) *dom.Element   { return foreign("feDiffuseLighting", args) }
func FeDisplacementMap(args ...any) *dom.Element   { return foreign("feDisplacementMap", args) }
func FeDistantLight(args ...any) *dom.Element      { return foreign("feDistantLight", args) }
func FeDropShadow(args ...any) *dom.Element        { return foreign("feDropShadow", args) }
func FeFlood(args ...any) *dom.Element             { return foreign("feFlood", args) }
func FeFuncA(args ...any) *dom.Element             { return foreign("feFuncA", args) }
func FeFuncB(args ...any) *dom.Element             { return foreign("feFuncB", args) }
func FeFuncG(args ...any) *dom.Element             { return foreign("feFuncG", args) }
func FeFuncR(args ...any) *dom.Element             { return foreign("feFuncR", args) }
func FeGaussianBlur(args ...any) *dom.Element      { return foreign("feGaussianBlur", args) }
func FeImage(args ...any) *dom.Element             { return foreign("feImage", args) }
func FeMerge(args ...any) *dom.Element             { return foreign("feMerge", args) }
func FeMergeNode(args ...any) *dom.Element         { return foreign("feMergeNode", args) }
func FeMorphology(args ...any) *dom.Element        { return foreign("feMorphology", args) }
func FeOffset(args ...any) *dom.Element            { return foreign("feOffset", args) }
func FePointLight(args ...any) *dom.Element        { return foreign("fePointLight", args) }
func FeSpecularLighting(args ...any) *dom.Element  { return foreign("feSpecularLighting", args) }
func FeSpotLight(args ...any) *dom.Element         { return foreign("feSpotLight", args) }
func FeTile(args ...any) *dom.Element              { return foreign("feTile", args) }
func FeTurbulence(args ...any) *dom.Element        { return foreign("feTurbulence", args) }
func Filter(args ...any) *dom.Element              { return foreign("filter", args) }
func ForeignObject(args ...any) *dom.Element       { return foreign("foreignObject", args) }
func G(args ...any) *dom.Element                   { return foreign("g", args) }
func Image(args ...any) *dom.Element               { return foreign("image", args) }
func Line(args ...any) *dom.Element                { return foreign("line", args) }
func LinearGradient(args ...any) *dom.Element      { return foreign("linearGradient", args) }
func Marker(args ...any) *dom.Element              { return foreign("marker", args) }
func Mask(args ...any) *dom.Element                { return foreign("mask", args) }
func Metadata(args ...any) *dom.Element            { return foreign("metadata", args) }
func Mpath(args ...any) *dom.Element               { return foreign("mpath", args) }
func Path(args ...any) *dom.Element                { return foreign("path", args) }
func Pattern(args ...any) *dom.Element             { return foreign("pattern", args) }
func Polygon(args ...any) *dom.Element             { return foreign("polygon", args) }
func Polyline(args ...any) *dom.Element            { return foreign("polyline", args) }
func RadialGradient(args ...any) *dom.Element      { return foreign("radialGradient", args) }
func Rect(args ...any) *dom.Element                { return foreign("rect", args) }
func Script(args ...any) *dom.Element              { return foreign("script", args) }
func Set(args ...any) *dom.Element                 { return foreign("set", args) }
func Stop(args ...any) *dom.Element                { return foreign("stop", args) }
func Style(args ...any) *dom.Element               { return foreign("style", args) }
func Svg(args ...any) *dom.Element                 { return foreign("svg", args) }
func Switch(args ...any) *dom.Element              { return foreign("switch", args) }
func Symbol(args ...any) *dom.Element              { return foreign("symbol", args) }
func Text(args ...any) *dom.Element                { return foreign("text", args) }
func TextPath(args ...any) *dom.Element            { return foreign("textPath", args) }
func Title(args ...any) *dom.Element               { return foreign("title", args) }
func Tspan(args ...any) *dom.Element               { return foreign("tspan", args) }
func Use(args ...any) *dom.Element                 { return foreign("use", args) }
func View(args ...any) *dom.Element                { return foreign("view", args) }

// Deprecated elements are intentionally omitted.
