package summarizer

import "testing"

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "field heading",
			text: "Main Heading: Sprint Planning\n\nExecutive Summary: ...",
			want: "Sprint Planning",
		},
		{
			name: "field heading with extra whitespace",
			text: "Main Heading:   Q3 Budget Review  \nExecutive Summary: ...",
			want: "Q3 Budget Review",
		},
		{
			name: "field heading not on first line",
			text: "Summary follows.\nMain Heading: Kickoff\n",
			want: "Kickoff",
		},
		{
			name: "markdown heading",
			text: "# Sprint Planning\n\nExecutive Summary: ...",
			want: "Sprint Planning",
		},
		{
			name: "field heading wins over markdown",
			text: "# Markdown Title\nMain Heading: Field Title\n",
			want: "Field Title",
		},
		{
			name: "double hash is not a title",
			text: "## Subheading only\nbody",
			want: DefaultTitle,
		},
		{
			name: "no heading at all",
			text: "Just a paragraph of text.",
			want: DefaultTitle,
		},
		{
			name: "empty text",
			text: "",
			want: DefaultTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.text); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitleDeterministic(t *testing.T) {
	text := "# One\nMain Heading: Two\n# Three\nMain Heading: Four\n"
	first := ExtractTitle(text)
	for i := 0; i < 10; i++ {
		if got := ExtractTitle(text); got != first {
			t.Fatalf("ExtractTitle() not deterministic: %q then %q", first, got)
		}
	}
	if first != "Two" {
		t.Errorf("ExtractTitle() = %q, want first field heading", first)
	}
}
