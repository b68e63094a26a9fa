package html

import (
	"testing"

	"github.com/el-go/el/pkg/dom"
	"github.com/el-go/el/pkg/render"
)

func renderString(t *testing.T, el *dom.Element) string {
	t.Helper()
	html, err := render.ElementString(el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

func TestElementKinds(t *testing.T) {
	tests := []struct {
		name string
		el   *dom.Element
		want string
	}{
		{"void input", Input(), "<input>"},
		{"void br", Br(), "<br>"},
		{"void img", Img(), "<img>"},
		{"void meta", Meta(), "<meta>"},
		{"void hr", Hr(), "<hr>"},
		{"normal div", Div(), "<div></div>"},
		{"normal head", Head(), "<head></head>"},
		{"raw text script", Script(), "<script></script>"},
		{"raw text style", Style(), "<style></style>"},
		{"escapable title", Title(), "<title></title>"},
		{"escapable textarea", Textarea(), "<textarea></textarea>"},
		{"template", Template(), "<template></template>"},
		{"foreign svg", Svg(), "<svg />"},
		{"foreign math", Math(), "<math />"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderString(t, tt.el); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawTextKindsEnforced(t *testing.T) {
	if _, err := render.ElementString(Script("hello </script> world")); err == nil {
		t.Error("script containing its own closing tag should fail")
	}
	if got := renderString(t, Textarea("foo <p> & bar")); got != "<textarea>foo &lt;p&gt; &amp; bar</textarea>" {
		t.Errorf("got %q", got)
	}
}

func TestComposedPage(t *testing.T) {
	page := Html(
		Head(Title("Hello")),
		Body(
			H1("Hello"),
			P("Hello ", Em("world"), "!"),
		),
	).Document()

	got, err := render.DocumentString(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<!DOCTYPE html><html><head><title>Hello</title></head>" +
		"<body><h1>Hello</h1><p>Hello <em>world</em>!</p></body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name string
		attr dom.Attr
		want dom.Attr
	}{
		{"id", ID("x"), dom.Attr{Key: "id", Value: "x"}},
		{"class joins", Class("a", "b"), dom.Attr{Key: "class", Value: "a b"}},
		{"href", Href("/home"), dom.Attr{Key: "href", Value: "/home"}},
		{"data attr", DataAttr("id", "7"), dom.Attr{Key: "data-id", Value: "7"}},
		{"width", Width(640), dom.Attr{Key: "width", Value: "640"}},
		{"tabindex", TabIndex(-1), dom.Attr{Key: "tabindex", Value: "-1"}},
		{"aria hidden", AriaHidden(true), dom.Attr{Key: "aria-hidden", Value: "true"}},
		{"checked boolean", Checked(), dom.Attr{Key: "checked", Value: ""}},
		{"title attr", TitleAttr("tip"), dom.Attr{Key: "title", Value: "tip"}},
		{"custom", Attr("itemscope", ""), dom.Attr{Key: "itemscope", Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr != tt.want {
				t.Errorf("got %+v, want %+v", tt.attr, tt.want)
			}
		})
	}
}

func TestBooleanAttributeRendering(t *testing.T) {
	got := renderString(t, Input(Name("horns"), Checked()))
	if want := `<input checked name="horns">`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormExample(t *testing.T) {
	form := Form(Action("/submit"), Method("post"),
		Label(For("email"), "Email"),
		Input(Type("email"), ID("email"), Name("email"), Required()),
		Button(Type("submit"), "Send"),
	)
	got := renderString(t, form)
	want := `<form action="/submit" method="post">` +
		`<label for="email">Email</label>` +
		`<input id="email" name="email" required type="email">` +
		`<button type="submit">Send</button>` +
		`</form>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
