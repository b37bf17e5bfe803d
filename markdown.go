package main

import (
	"fmt"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// MarkdownExporter converts rendered pages to Markdown
type MarkdownExporter struct {
	converter *md.Converter
}

// NewMarkdownExporter creates an exporter with CommonMark output
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{converter: md.NewConverter("", true, nil)}
}

// Convert turns an HTML document into Markdown
func (e *MarkdownExporter) Convert(html string) (string, error) {
	markdown, err := e.converter.ConvertString(html)
	if err != nil {
		return "", newError("export markdown", KindTemplate, "", fmt.Errorf("converting HTML to markdown: %w", err))
	}
	return markdown, nil
}

// markdownPath returns the companion .md path for an HTML output path
func markdownPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	if strings.EqualFold(ext, ".md") {
		return outputPath + ".md"
	}
	return strings.TrimSuffix(outputPath, ext) + ".md"
}
