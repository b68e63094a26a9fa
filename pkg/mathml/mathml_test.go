package mathml

import (
	"testing"

	"github.com/el-go/el/pkg/dom"
	"github.com/el-go/el/pkg/render"
)

func TestFraction(t *testing.T) {
	frac := Math(Mfrac(Mi("a"), Mn("2")))
	got, err := render.ElementString(frac)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<math><mfrac><mi>a</mi><mn>2</mn></mfrac></math>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForeignKind(t *testing.T) {
	if got := Msqrt().Kind; got != dom.KindForeign {
		t.Errorf("Kind = %v, want %v", got, dom.KindForeign)
	}
}
