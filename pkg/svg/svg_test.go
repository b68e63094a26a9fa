package svg

import (
	"testing"

	"github.com/el-go/el/pkg/dom"
	"github.com/el-go/el/pkg/render"
)

func TestForeignCasingPreserved(t *testing.T) {
	tests := []struct {
		name string
		el   *dom.Element
		want string
	}{
		{"empty self-closes", Circle(), "<circle />"},
		{"mixed case tag", FeGaussianBlur(), "<feGaussianBlur />"},
		{"mixed case attribute", LinearGradient(dom.Attr{Key: "gradientUnits", Value: "userSpaceOnUse"}),
			`<linearGradient gradientUnits="userSpaceOnUse" />`},
		{"nested", Svg(Rect(dom.Attr{Key: "width", Value: "10"})),
			`<svg><rect width="10" /></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.ElementString(tt.el)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForeignKind(t *testing.T) {
	if got := Use().Kind; got != dom.KindForeign {
		t.Errorf("Kind = %v, want %v", got, dom.KindForeign)
	}
}
