package export

import (
	"fmt"
	"html/template"
	"strings"

	"draftdeck/internal/domain/services"
)

// reportTemplate renders a heading+paragraph document: H1 title, one H2
// per section, paragraphs split on blank lines.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}<h2>{{.Title}}</h2>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{end}}</body>
</html>
`))

// slidesTemplate renders one slide per section: pandoc turns each H2
// into a new slide, the bullet list becomes the slide body.
var slidesTemplate = template.Must(template.New("slides").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{range .Sections}}<h2>{{.Title}}</h2>
<ul>
{{range .Lines}}<li>{{.}}</li>
{{end}}</ul>
{{end}}</body>
</html>
`))

type renderedSection struct {
	Title      string
	Paragraphs []string
	Lines      []string
}

type renderedDocument struct {
	Title    string
	Sections []renderedSection
}

// renderHTML templates the assembled document for the requested format.
func renderHTML(doc *services.ExportDocument, format services.ExportFormat) (string, error) {
	rendered := renderedDocument{
		Title:    doc.Title,
		Sections: make([]renderedSection, 0, len(doc.Sections)),
	}

	for _, section := range doc.Sections {
		rendered.Sections = append(rendered.Sections, renderedSection{
			Title:      section.Title,
			Paragraphs: splitParagraphs(section.Content),
			Lines:      splitLines(section.Content),
		})
	}

	tmpl := reportTemplate
	if format == services.ExportPPTX {
		tmpl = slidesTemplate
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, rendered); err != nil {
		return "", fmt.Errorf("render export html: %w", err)
	}

	return sb.String(), nil
}

// splitParagraphs splits content on blank lines, dropping empty chunks.
func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, chunk := range strings.Split(content, "\n\n") {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			paragraphs = append(paragraphs, chunk)
		}
	}
	return paragraphs
}

// splitLines splits content on newlines, dropping empty lines.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sanitizeFilename keeps alphanumerics, spaces, dashes and underscores.
func sanitizeFilename(title string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, title)

	mapped = strings.TrimSpace(mapped)
	if mapped == "" {
		return "document"
	}
	return mapped
}
