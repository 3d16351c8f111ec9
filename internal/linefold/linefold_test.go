package linefold

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no continuation",
			input: "x = 1\ny = 2",
			want:  "x = 1\ny = 2",
		},
		{
			name:  "single continuation joins with no inserted space",
			input: "#define LONG! = \\\na + b #end",
			want:  "#define LONG! = a + b #end",
		},
		{
			name:  "multiple continuations in one body",
			input: "#define LONG! = \\\na + \\\nb #end",
			want:  "#define LONG! = a + b #end",
		},
		{
			name:  "carriage return before newline",
			input: "a \\\r\nb",
			want:  "a b",
		},
		{
			name:  "backslash not followed by newline is untouched",
			input: "path = \"a\\\\b\"",
			want:  "path = \"a\\\\b\"",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Fold(c.input); got != c.want {
				t.Errorf("Fold(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}
