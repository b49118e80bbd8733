package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with trailing number",
			input:    "Hello World 2",
			expected: "hello-world-2",
		},
		{
			name:     "with special characters",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "with accents",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "with multiple spaces",
			input:    "Hello   World",
			expected: "hello-world",
		},
		{
			name:     "with surrounding punctuation",
			input:    "--Hello World--",
			expected: "hello-world",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	const input = "Some Longer Title, With Punctuation — and Dashes"
	first := Make(input)
	second := Make(input)
	if first != second {
		t.Errorf("Make is not deterministic: %q != %q", first, second)
	}
}

func TestMakeOutputAlphabet(t *testing.T) {
	got := Make("Mixed CASE & Symbols #42 ")
	for _, r := range got {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			t.Fatalf("Make produced invalid rune %q in %q", r, got)
		}
	}
	if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
		t.Fatalf("Make produced edge hyphen: %q", got)
	}
}
