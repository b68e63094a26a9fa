package render

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<p>", "&lt;p&gt;"},
		{"all three", "a<b>&c", "a&lt;b&gt;&amp;c"},
		{"quotes pass through", `"quoted" and 'single'`, `"quoted" and 'single'`},
		{"unicode passes through", "café", "café"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.input); got != tt.want {
				t.Errorf("escapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttrValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "button", "button"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"ampersand passes through", "a&b", "a&b"},
		{"angle brackets pass through", "<div>", "<div>"},
		{"single quote passes through", "it's", "it's"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttrValue(tt.input); got != tt.want {
				t.Errorf("escapeAttrValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMangleComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "a comment", "a comment"},
		{"comment open", "a <!-- b", "a <!== b"},
		{"comment close", "a --> b", "a ==> b"},
		{"bang close", "a --!> b", "a ==!> b"},
		{"leading gt padded", "> start", " > start"},
		{"leading arrow padded", "-> start", " -> start"},
		{"trailing open padded", "end <!-", "end <!- "},
		{"replaced close needs no padding", "--> x", "==> x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mangleComment(tt.input); got != tt.want {
				t.Errorf("mangleComment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
