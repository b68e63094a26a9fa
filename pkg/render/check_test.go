package render

import "testing"

func TestIsValidTagName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "div", true},
		{"with digit", "h1", true},
		{"uppercase", "DIV", true},
		{"mixed case", "ScRiPt", true},
		{"empty", "", false},
		{"leading digit", "1div", false},
		{"hyphen", "my-tag", false},
		{"underscore", "my_tag", false},
		{"space", "di v", false},
		{"angle bracket", "div>", false},
		{"non-ascii", "dïv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidTagName(tt.input); got != tt.want {
				t.Errorf("isValidTagName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidAttributeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "href", true},
		{"hyphen", "data-id", true},
		{"underscore", "my_attr", true},
		{"digit", "attr2", true},
		{"uppercase", "LANG", true},
		{"empty", "", false},
		{"leading digit", "2attr", false},
		{"leading hyphen", "-data", false},
		{"equals", "a=b", false},
		{"quote", `a"b`, false},
		{"space", "a b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidAttributeName(tt.input); got != tt.want {
				t.Errorf("isValidAttributeName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidRawText(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		text string
		want bool
	}{
		{"no markers", "script", "console.log(1 < 2)", true},
		{"other closing tag", "script", "foo </style> bar", true},
		{"own opening tag", "script", "foo <script> bar", true},
		{"closing tag with gt", "script", "hello </script> world", false},
		{"closing tag with space", "script", "hello </script world", false},
		{"closing tag with tab", "script", "hello </script\tworld", false},
		{"closing tag with lf", "script", "hello </script\nworld", false},
		{"closing tag with ff", "script", "hello </script\fworld", false},
		{"closing tag with cr", "script", "hello </script\rworld", false},
		{"closing tag with solidus", "script", "hello </script/ world", false},
		{"case insensitive", "script", "hello </ScRiPt ... world", false},
		{"uppercase tag", "SCRIPT", "hello </script> world", false},
		{"name continues", "script", "hello </scripting> world", true},
		{"partial name", "script", "hello </scrip> world", true},
		{"marker at end", "script", "hello </", true},
		{"candidate at end of text", "script", "hello </script", true},
		{"candidate at end case folded", "script", "hello </SCRIPT", true},
		{"second occurrence matches", "script", "a </x b </script> c", false},
		{"marker inside earlier candidate", "script", "</s</script>", false},
		{"style element", "style", "p { color: red } </style>", false},
		{"multibyte neighbour", "script", "é </scripté", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidRawText(tt.tag, tt.text); got != tt.want {
				t.Errorf("isValidRawText(%q, %q) = %v, want %v", tt.tag, tt.text, got, tt.want)
			}
		})
	}
}
