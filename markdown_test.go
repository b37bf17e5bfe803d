package main

import (
	"strings"
	"testing"
)

func TestMarkdownPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"animals.html", "animals.md"},
		{"out/page.htm", "out/page.md"},
		{"noext", "noext.md"},
		{"notes.md", "notes.md.md"},
	}
	for _, tt := range tests {
		if got := markdownPath(tt.in); got != tt.want {
			t.Errorf("markdownPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarkdownExporterConvert(t *testing.T) {
	html, err := NewRenderer("").Render(sampleRecords(), testTemplate)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	markdown, err := NewMarkdownExporter().Convert(html)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	for _, want := range []string{"Red Fox", "Green Iguana", "King Cobra", "**Skin type:** Fur"} {
		if !strings.Contains(markdown, want) {
			t.Errorf("markdown missing %q:\n%s", want, markdown)
		}
	}
	if strings.Contains(markdown, "<li") {
		t.Errorf("markdown still contains HTML:\n%s", markdown)
	}
}
